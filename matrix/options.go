// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels.
//
// Only Solve consumes options today; the type follows the same shape as the
// options of the other packages in this module (Option setters applied on
// top of documented defaults by gatherOptions).
package matrix

import "math"

// DefaultPivotTolerance is the relative threshold below which a pivot is
// treated as zero: |pivot| ≤ tol · max|A[i,j]|.
const DefaultPivotTolerance = 1e-12

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance sets the relative singularity threshold used by Solve.
// A zero tolerance only rejects exact zero pivots.
// Panics when tol is negative, NaN or ±Inf (programmer error).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions applies user-provided setters on top of the defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
