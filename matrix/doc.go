// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernel used by webrank.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Elementwise and structural kernels: Add, Sub, Scale, Outer.
//   - Products: Mul (matrix × matrix) and MatVec (matrix × vector).
//   - Column reductions (ColSums) and constructors (Identity, Diagonal,
//     NewDenseFromRows).
//   - Solve, a Gaussian elimination with partial pivoting for A·x = b.
//   - Eigen, a general real eigen-decomposition (possibly complex spectrum)
//     returning eigenpairs in decomposition order.
//
// Every kernel validates its inputs up front, never mutates its operands and
// returns package sentinels (ErrNilMatrix, ErrDimensionMismatch, ErrSingular,
// ...) wrapped with the operation name, so callers match them with errors.Is.
//
// Matrices here are small and dense (a webgraph of a few dozen pages), so
// O(n²) memory and O(n³) factorizations are acceptable by construction.
package matrix
