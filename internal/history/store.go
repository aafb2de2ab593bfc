// SPDX-License-Identifier: MIT

// Package history keeps a SQLite-backed log of computed rankings.
// Uses ncruces/go-sqlite3/driver, which provides a database/sql interface.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/katalvlaran/webrank/pagerank"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("history: store is closed")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    web_file TEXT NOT NULL,
    dimension INTEGER NOT NULL,
    method INTEGER NOT NULL,
    iterations INTEGER NOT NULL DEFAULT 0,
    ranks TEXT NOT NULL,
    elapsed_ns INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

// Run is one recorded ranking.
type Run struct {
	ID         string
	WebFile    string
	Dimension  int
	Method     pagerank.Method
	Iterations int
	Ranks      pagerank.RankVector
	Elapsed    time.Duration
	CreatedAt  time.Time
}

// Store is the SQLite-backed run log. Safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at dsn and applies the schema.
// Use MemoryDSN for a throwaway store.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// a single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection. Later calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// Record stores res under a fresh UUID and returns the stored row.
func (s *Store) Record(ctx context.Context, webFile string, res pagerank.Result) (Run, error) {
	ranks, err := json.Marshal([]float64(res.Ranks))
	if err != nil {
		return Run{}, fmt.Errorf("encode ranks: %w", err)
	}
	run := Run{
		ID:         uuid.NewString(),
		WebFile:    webFile,
		Dimension:  res.Ranks.Len(),
		Method:     res.Method,
		Iterations: res.Iterations,
		Ranks:      append(pagerank.RankVector(nil), res.Ranks...),
		Elapsed:    res.Elapsed,
		CreatedAt:  s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return Run{}, ErrClosed
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, web_file, dimension, method, iterations, ranks, elapsed_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.WebFile, run.Dimension, int(run.Method), run.Iterations,
		string(ranks), int64(run.Elapsed), run.CreatedAt.UnixNano())
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	return run, nil
}

// List returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, web_file, dimension, method, iterations, ranks, elapsed_ns, created_at
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			method    int
			ranks     string
			elapsedNS int64
			createdNS int64
		)
		if err = rows.Scan(&r.ID, &r.WebFile, &r.Dimension, &method, &r.Iterations, &ranks, &elapsedNS, &createdNS); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err = json.Unmarshal([]byte(ranks), &r.Ranks); err != nil {
			return nil, fmt.Errorf("decode ranks of run %s: %w", r.ID, err)
		}
		r.Method = pagerank.Method(method)
		r.Elapsed = time.Duration(elapsedNS)
		r.CreatedAt = time.Unix(0, createdNS).UTC()
		runs = append(runs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// Recorder binds a Store to one web file.
type Recorder struct {
	store   *Store
	webFile string
}

// Recorder returns a Recorder that stores every result under webFile.
func (s *Store) Recorder(webFile string) *Recorder {
	return &Recorder{store: s, webFile: webFile}
}

// Record stores res.
func (r *Recorder) Record(ctx context.Context, res pagerank.Result) error {
	_, err := r.store.Record(ctx, r.webFile, res)

	return err
}
