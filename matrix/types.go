// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any implementation and take a flat fast-path when the
// dynamic type is *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid and ErrNaNInf for
	// non-finite values.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// EigenPair is one eigenvalue together with its right eigenvector.
// Vector has unit Euclidean norm; for a real eigenvalue every component has
// a zero imaginary part.
type EigenPair struct {
	Value  complex128   // eigenvalue λ
	Vector []complex128 // v with M·v = λ·v
}

// IsReal reports whether the eigenvalue has an exactly zero imaginary part.
func (p EigenPair) IsReal() bool { return imag(p.Value) == 0 }

// RealVector returns the real parts of the eigenvector components.
func (p EigenPair) RealVector() []float64 {
	out := make([]float64, len(p.Vector))
	for i, v := range p.Vector {
		out[i] = real(v)
	}

	return out
}
