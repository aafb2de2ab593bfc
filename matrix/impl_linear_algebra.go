// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// scalar scaling, outer products and column reductions. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Each kernel has a *Dense fast-path over the flat buffer and an
//     interface fallback with the same fixed loop order.
//   - Results are freshly allocated *Dense values; operands are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial sum value for accumulations and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opOuter     = "Outer"
	opColSums   = "ColSums"
	opSolve     = "Solve"
	opEigen     = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Determinism:
//   - Fast-path: single flat slice walk 0..(r*c−1).
//   - Fallback: fixed nested loops i=0..r−1, j=0..c−1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range res.data {
				res.data[k] = da.data[k] + sign*db.data[k]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C.
//   - Multiplying by a diagonal matrix D yields exactly C[i][j] = A[i][j]·D[j][j]
//     (every other term adds an exact zero), so column scaling via Mul is lossless.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
		current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for k := range res.data {
			res.data[k] = dm.data[k] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Outer returns the outer product u·vᵀ as a len(u)×len(v) Dense.
//
// Errors:
//   - ErrInvalidDimensions when either vector is empty.
//
// Complexity: O(len(u)*len(v)).
func Outer(u, v []float64) (*Dense, error) {
	res, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	cols := len(v)
	for i, ui := range u {
		for j, vj := range v {
			res.data[i*cols+j] = ui * vj
		}
	}

	return res, nil
}

// ColSums returns s[j] = Σ_i m[i][j] for every column j.
// Summation runs top to bottom (i ascending) for every column.
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	sums := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				sums[j] += d.data[base+j]
			}
		}

		return sums, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			sums[j] += v
		}
	}

	return sums, nil
}
