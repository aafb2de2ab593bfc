// SPDX-License-Identifier: MIT
package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/webrank/matrix"
	"github.com/katalvlaran/webrank/pagerank"
	"github.com/katalvlaran/webrank/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSink = errors.New("sink closed")

// failAfter accepts n writes, then fails.
type failAfter struct{ n int }

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errSink
	}
	f.n--

	return len(p), nil
}

func TestMatrix(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {0.5, 0}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Matrix(&sb, m))
	assert.Equal(t, "\nMatrix Retrieved :\n\n0.000000 1.000000 \n0.500000 0.000000 \n", sb.String())

	require.ErrorIs(t, report.Matrix(&sb, nil), matrix.ErrNilMatrix)
}

func TestRanks(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, report.Ranks(&sb, pagerank.RankVector{0.649122807, 0.350877193}))
	assert.Equal(t, "\nPageRank Retrieved :\n\nPAGE: 1 RANK: 0.6491\nPAGE: 2 RANK: 0.3509\n\n", sb.String())
}

func TestBanner(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, report.Banner(&sb, "Hi"))
	assert.Equal(t, "______\n\nHi\n______\n", sb.String())
}

func TestMethod(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, report.Method(&sb, pagerank.PowerMethod))
	assert.Equal(t, "\nPower Method Calculation...\n", sb.String())

	require.ErrorIs(t, report.Method(&sb, 9), pagerank.ErrInvalidMethod)
}

func TestProduct(t *testing.T) {
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.Product(&sb, id, id, id))
	out := sb.String()
	assert.Equal(t, 3, strings.Count(out, "Matrix Retrieved :"))
	assert.Less(t, strings.Index(out, "First"), strings.Index(out, "Second"))
	assert.Less(t, strings.Index(out, "Second"), strings.Index(out, "Product"))
}

// TestWriteError checks the first write error is returned.
func TestWriteError(t *testing.T) {
	err := report.Ranks(&failAfter{n: 1}, pagerank.RankVector{0.5, 0.5})
	require.ErrorIs(t, err, errSink)

	id, err := matrix.Identity(2)
	require.NoError(t, err)
	require.ErrorIs(t, report.Product(&failAfter{n: 2}, id, id, id), errSink)
}
