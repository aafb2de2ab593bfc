// SPDX-License-Identifier: MIT
package pagerank_test

import (
	"testing"

	"github.com/katalvlaran/webrank/matrix"
	"github.com/katalvlaran/webrank/pagerank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitialApproximation_TwoPages: page 2 links to page 1, page 1 is dangling.
// (I − p·M·D)·x = e gives x = [1+p, 1].
func TestInitialApproximation_TwoPages(t *testing.T) {
	rv, err := engine(t, twoPages).Rank(pagerank.InitialApproximation)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.85 / 2.85, 1 / 2.85}, rv, 1e-12)
	assert.InDelta(t, 1.0, rv.Sum(), sumTol)
}

func TestInitialApproximation_Cycle(t *testing.T) {
	rv, err := engine(t, cycle3).Rank(pagerank.InitialApproximation)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, rv, 1e-12)
}

func TestInitialApproximation_SinglePage(t *testing.T) {
	rv, err := engine(t, [][]float64{{0}}).Rank(pagerank.InitialApproximation)
	require.NoError(t, err)
	assert.Equal(t, pagerank.RankVector{1}, rv)
}

// TestInitialApproximation_Singular uses M with p·M·D having eigenvalue 1.
func TestInitialApproximation_Singular(t *testing.T) {
	_, err := engine(t, [][]float64{{20, 0}, {-3, 1}}).Rank(pagerank.InitialApproximation)
	require.ErrorIs(t, err, pagerank.ErrSingularSystem)
	require.ErrorIs(t, err, matrix.ErrSingular)
}
