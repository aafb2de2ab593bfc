// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Solve returns x with A·x = b using Gaussian elimination with partial pivoting.
// Implementation:
//   - Stage 1: Validate A (non-nil, square) and len(b) == n.
//   - Stage 2: Copy A and b into an augmented working buffer (A is not mutated).
//   - Stage 3: Forward elimination: for each column k pick the row with the
//     largest |A[i,k]| (i ≥ k, lowest index on ties), swap it into place and
//     eliminate below it.
//   - Stage 4: Back substitution from the last row up.
//
// Behavior highlights:
//   - A pivot with |p| ≤ tol·max|A| is treated as zero and reported as
//     ErrSingular (tol from WithPivotTolerance, default DefaultPivotTolerance).
//     An all-zero A is always singular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (wrapped with "Solve").
//
// Determinism:
//   - Fixed pivot search and elimination order.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	// Working copy: n×n coefficients plus the right-hand side.
	work := make([]float64, n*n)
	if d, ok := a.(*Dense); ok {
		copy(work, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, matrixErrorf(opSolve, err)
				}
				work[i*n+j] = v
			}
		}
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	// Absolute threshold derived from the largest magnitude in A.
	scale := 0.0
	for _, v := range work {
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	threshold := o.pivotTol * scale

	var (
		i, j, k, p int
		pivot, f   float64
		best, cand float64
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below row k.
		p, best = k, math.Abs(work[k*n+k])
		for i = k + 1; i < n; i++ {
			if cand = math.Abs(work[i*n+k]); cand > best {
				p, best = i, cand
			}
		}
		if best == 0 || best <= threshold {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				work[k*n+j], work[p*n+j] = work[p*n+j], work[k*n+j]
			}
			rhs[k], rhs[p] = rhs[p], rhs[k]
		}

		pivot = work[k*n+k]
		for i = k + 1; i < n; i++ {
			f = work[i*n+k] / pivot
			if f == 0 {
				continue
			}
			work[i*n+k] = 0
			for j = k + 1; j < n; j++ {
				work[i*n+j] -= f * work[k*n+j]
			}
			rhs[i] -= f * rhs[k]
		}
	}

	// Back substitution: U·x = rhs.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = rhs[i]
		for j = i + 1; j < n; j++ {
			sum -= work[i*n+j] * x[j]
		}
		x[i] = sum / work[i*n+i]
	}

	return x, nil
}
