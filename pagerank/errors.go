// SPDX-License-Identifier: MIT

package pagerank

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularSystem is returned by InitialApproximation when I − p·M·D
	// cannot be solved. The matrix.ErrSingular cause stays in the chain.
	ErrSingularSystem = errors.New("pagerank: singular linear system")

	// ErrInvalidMethod indicates a method value outside 1..3.
	ErrInvalidMethod = errors.New("pagerank: invalid method")

	// ErrZeroSum is returned when the unnormalized vector sums to zero (or to
	// a non-finite value), e.g. when the leading eigenvalue is complex.
	ErrZeroSum = errors.New("pagerank: rank vector sums to zero")

	// ErrNotConverged is returned by PowerMethod when the iteration cap is
	// reached or an iterate stops being finite.
	ErrNotConverged = errors.New("pagerank: power iteration did not converge")

	// ErrEigenFailed indicates the eigen-decomposition did not complete.
	ErrEigenFailed = errors.New("pagerank: eigen decomposition failed")
)

// Operation tags for error wrapping.
const (
	opNewEngine = "NewEngine"
	opSetup     = "Setup"
	opRank      = "Rank"
	opInitial   = "InitialApproximation"
	opPower     = "PowerMethod"
	opEigen     = "PrincipalEigenvector"
)

// pagerankErrorf wraps err with an operation tag, preserving it via %w.
func pagerankErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
