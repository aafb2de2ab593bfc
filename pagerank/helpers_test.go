// SPDX-License-Identifier: MIT
package pagerank_test

import (
	"testing"

	"github.com/katalvlaran/webrank/matrix"
	"github.com/katalvlaran/webrank/pagerank"
	"github.com/stretchr/testify/require"
)

// sumTol bounds |Σx − 1| for every successful result.
const sumTol = 1e-9

// fixtures used across tests
var (
	twoPages = [][]float64{{0, 1}, {0, 0}} // page 1 is dangling
	cycle3   = [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
	web4     = [][]float64{
		{0, 0, 1, 1},
		{1, 0, 0, 0},
		{1, 1, 0, 1},
		{1, 1, 0, 0},
	}
)

// hide wraps a Matrix to force the interface paths.
type hide struct{ matrix.Matrix }

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func engine(t *testing.T, rows [][]float64, opts ...pagerank.Option) *pagerank.Engine {
	t.Helper()
	e, err := pagerank.NewEngine(dense(t, rows), opts...)
	require.NoError(t, err)

	return e
}
