// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics
// on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) so the
// final text reads "Mul: ValidateMulCompatible: matrix: dimension mismatch".

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals that a row-slice literal has rows of different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (Set, NewDenseFromRows).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when elimination meets a pivot that is zero
	// within the configured pivot tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates that the eigen-decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
