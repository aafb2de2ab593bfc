// SPDX-License-Identifier: MIT

// Package session runs the interactive method-selection loop: prompt for a
// method, rank, print, repeat until the operator enters 0.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/webrank/pagerank"
	"github.com/katalvlaran/webrank/report"
)

// Prompt is written before every selection.
const Prompt = "Enter the Configuration Type: (1 - 3, 0 to exit): "

// exitChoice ends the loop.
const exitChoice = 0

// Ranker computes a rank vector; *pagerank.Engine implements it.
type Ranker interface {
	Compute(method pagerank.Method) (pagerank.Result, error)
}

// Recorder receives every successful result.
type Recorder interface {
	Record(ctx context.Context, res pagerank.Result) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithRecorder hands each result to r after it is printed.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.rec = r }
}

// Session is one interactive loop over a fixed Ranker.
type Session struct {
	ranker Ranker
	in     *bufio.Scanner
	out    io.Writer
	log    zerolog.Logger
	rec    Recorder
}

// New returns a Session reading choices from in and writing to out.
func New(r Ranker, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		ranker: r,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run loops until the operator enters 0 or input ends, both returning nil.
// Any other failure stops the loop and is returned: a choice that is not
// 0..3 (pagerank.ErrInvalidMethod), a ranking error, a write error on out,
// or a Recorder error.
func (s *Session) Run(ctx context.Context) error {
	for {
		if _, err := io.WriteString(s.out, Prompt); err != nil {
			return fmt.Errorf("session: write prompt: %w", err)
		}
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("session: read choice: %w", err)
			}
			s.log.Debug().Msg("input closed")
			return nil
		}

		method, done, err := parseChoice(s.in.Text())
		if err != nil {
			return err
		}
		if done {
			s.log.Debug().Msg("exit requested")
			return nil
		}
		if err = s.rank(ctx, method); err != nil {
			return err
		}
	}
}

// parseChoice maps one input line to a method; done reports the exit choice.
func parseChoice(line string) (pagerank.Method, bool, error) {
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false, fmt.Errorf("session: choice %q: %w", line, pagerank.ErrInvalidMethod)
	}
	if n == exitChoice {
		return 0, true, nil
	}
	m := pagerank.Method(n)
	if !m.Valid() {
		return 0, false, fmt.Errorf("session: choice %d: %w", n, pagerank.ErrInvalidMethod)
	}

	return m, false, nil
}

func (s *Session) rank(ctx context.Context, method pagerank.Method) error {
	if err := report.Method(s.out, method); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	res, err := s.ranker.Compute(method)
	if err != nil {
		return err
	}
	if err = report.Banner(s.out, "PageRank Ready For Retrieval..."); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err = report.Ranks(s.out, res.Ranks); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.log.Info().
		Str("method", method.String()).
		Int("iterations", res.Iterations).
		Dur("elapsed", res.Elapsed).
		Msg("ranking printed")

	if s.rec != nil {
		if err = s.rec.Record(ctx, res); err != nil {
			return fmt.Errorf("session: record result: %w", err)
		}
	}

	return nil
}
