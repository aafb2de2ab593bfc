// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/webrank/internal/config"
	"github.com/katalvlaran/webrank/pagerank"
	"github.com/katalvlaran/webrank/webfile"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRank(t *testing.T) {
	web := writeFile(t, t.TempDir(), "web.txt", "0 1\n0 0\n")

	out, err := execute(t, "rank", "--web", web, "--method", "initial")
	require.NoError(t, err)
	assert.Contains(t, out, "Initial PageRank Approximation...")
	assert.Contains(t, out, "PAGE: 1 RANK: 0.6491\nPAGE: 2 RANK: 0.3509\n")
}

func TestRank_Errors(t *testing.T) {
	dir := t.TempDir()
	web := writeFile(t, dir, "web.txt", "0 1\n0 0\n")

	_, err := execute(t, "rank", "--web", web, "--method", "7")
	require.ErrorIs(t, err, pagerank.ErrInvalidMethod)

	_, err = execute(t, "rank", "--web", filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, webfile.ErrFormat)

	// dangling page with the literal teleport diverges; the heading is
	// already out when the computation fails
	out, err := execute(t, "rank", "--web", web, "--method", "power", "--max-iterations", "20")
	require.ErrorIs(t, err, pagerank.ErrNotConverged)
	assert.Contains(t, out, "Power Method Calculation...")
	assert.NotContains(t, out, "PAGE: ")

	_, err = execute(t, "rank", "--web", web, "--max-iterations", "0")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestRank_ConserveMass(t *testing.T) {
	web := writeFile(t, t.TempDir(), "web.txt", "0 1\n0 0\n")

	out, err := execute(t, "rank", "--web", web, "--method", "power", "--conserve-mass")
	require.NoError(t, err)
	assert.Contains(t, out, "Power Method Calculation...")
	assert.Equal(t, 2, strings.Count(out, "PAGE: "))
}

// TestRank_ConfigFile takes the web file from YAML and lets flags override it.
func TestRank_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	web := writeFile(t, dir, "cycle.txt", "0 0 1\n1 0 0\n0 1 0\n")
	cfg := writeFile(t, dir, "webrank.yaml", "web_file: "+web+"\nlog_level: warn\n")

	out, err := execute(t, "rank", "--config", cfg, "--method", "2")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "RANK: 0.3333"))

	other := writeFile(t, dir, "two.txt", "0 1\n0 0\n")
	out, err = execute(t, "rank", "--config", cfg, "--web", other)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "PAGE: "))
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseHistory(t *testing.T) {
	errClose := errors.New("disk gone")
	errRun := errors.New("list failed")

	var err error
	closeHistory(failingCloser{}, &err)
	require.NoError(t, err)

	closeHistory(failingCloser{err: errClose}, &err)
	require.ErrorIs(t, err, errClose)
	assert.Contains(t, err.Error(), "close history")

	err = errRun
	closeHistory(failingCloser{err: errClose}, &err)
	require.ErrorIs(t, err, errRun)
	require.ErrorIs(t, err, errClose)
}

func TestMultiply_Demo(t *testing.T) {
	out, err := execute(t, "multiply")
	require.NoError(t, err)
	assert.Contains(t, out, "Retrieve First Matrix")
	assert.Contains(t, out, "1.000000 2.000000 3.000000 \n")
	assert.Contains(t, out, "9.000000 8.000000 7.000000 \n")
	assert.Contains(t, out, "30.000000 24.000000 18.000000 \n84.000000 69.000000 54.000000 \n138.000000 114.000000 90.000000 \n")
}

func TestMultiply_Files(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "1 2\n3 4\n")
	b := writeFile(t, dir, "b.txt", "0 1\n1 0\n")

	out, err := execute(t, "multiply", "--a", a, "--b", b)
	require.NoError(t, err)
	assert.Contains(t, out, "2.000000 1.000000 \n4.000000 3.000000 \n")

	_, err = execute(t, "multiply", "--a", a)
	require.ErrorIs(t, err, errOneOperand)
}

func TestDemoOperands(t *testing.T) {
	a, b, err := demoOperands()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, a.RowsCopy())
	assert.Equal(t, [][]float64{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}, b.RowsCopy())
}

func TestHistory(t *testing.T) {
	dir := t.TempDir()
	web := writeFile(t, dir, "web.txt", "0 1\n0 0\n")
	db := filepath.Join(dir, "runs.db")

	_, err := execute(t, "history")
	require.ErrorIs(t, err, errNoHistory)

	_, err = execute(t, "rank", "--web", web, "--history-db", db, "--method", "1")
	require.NoError(t, err)
	_, err = execute(t, "rank", "--web", web, "--history-db", db, "--method", "power", "--conserve-mass")
	require.NoError(t, err)

	out, err := execute(t, "history", "--history-db", db)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "power-method")
	assert.Contains(t, lines[1], "initial-approximation")
	assert.Contains(t, lines[1], "ranks=[0.6491 0.3509]")

	out, err = execute(t, "history", "--history-db", db, "--limit", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
