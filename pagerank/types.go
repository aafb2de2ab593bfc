// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/webrank/matrix"
)

const (
	// Damping is the damping factor p.
	Damping = 0.85

	// Tolerance is the stopping threshold of the power method, applied to
	// ‖(x_k − x_{k−1})/n‖₂.
	Tolerance = 0.01

	// DefaultMaxIterations caps the power method unless WithMaxIterations
	// says otherwise.
	DefaultMaxIterations = 1000
)

// Method selects a ranking algorithm.
type Method int

const (
	InitialApproximation Method = 1
	PowerMethod          Method = 2
	PrincipalEigenvector Method = 3
)

// Valid reports whether m is one of the three known methods.
func (m Method) Valid() bool {
	return m >= InitialApproximation && m <= PrincipalEigenvector
}

func (m Method) String() string {
	switch m {
	case InitialApproximation:
		return "initial-approximation"
	case PowerMethod:
		return "power-method"
	case PrincipalEigenvector:
		return "principal-eigenvector"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts a method number ("1".."3"), a short name ("initial",
// "power", "eigen") or the full String() form, case-insensitively.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "initial", InitialApproximation.String():
		return InitialApproximation, nil
	case "power", PowerMethod.String():
		return PowerMethod, nil
	case "eigen", "eigenvector", PrincipalEigenvector.String():
		return PrincipalEigenvector, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Method(n).Valid() {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidMethod)
	}

	return Method(n), nil
}

// RankVector holds one score per page; index i is page i+1.
type RankVector []float64

// PageRank is a single (1-based page, score) pair.
type PageRank struct {
	Page int
	Rank float64
}

// Len returns the number of pages.
func (rv RankVector) Len() int { return len(rv) }

// Sum returns the total score, 1 for every vector produced by an Engine.
func (rv RankVector) Sum() float64 { return matrix.VecSum(rv) }

// Page returns the score of the 1-based page p, and false when p is out of range.
func (rv RankVector) Page(p int) (float64, bool) {
	if p < 1 || p > len(rv) {
		return 0, false
	}

	return rv[p-1], true
}

// Pages returns the vector as 1-based (page, rank) pairs in page order.
func (rv RankVector) Pages() []PageRank {
	out := make([]PageRank, len(rv))
	for i, r := range rv {
		out[i] = PageRank{Page: i + 1, Rank: r}
	}

	return out
}

// Result is a rank vector with the metadata of the run that produced it.
type Result struct {
	Ranks      RankVector
	Method     Method
	Iterations int // power method only
	Elapsed    time.Duration
}

// Setup holds the per-call quantities shared by every method.
type Setup struct {
	ColSums  []float64     // colSums[j] = Σ_i M[i][j]
	NumLinks []int         // columns with a non-zero sum, ascending
	Dangling []int         // columns summing to zero, ascending
	D        *matrix.Dense // diagonal, 1/colSums[j] on linked columns, 0 elsewhere
	S        *matrix.Dense // M·D with every dangling column set to 1/n
}
