// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Eigen computes all eigenvalues and right eigenvectors of a general real
// square matrix (not necessarily symmetric; the spectrum may be complex).
// Implementation:
//   - Stage 1: Validate m (non-nil, square).
//   - Stage 2: Copy m into a gonum mat.Dense and factorize with mat.Eigen
//     (LAPACK Dgeev: balancing, Hessenberg reduction, shifted QR).
//   - Stage 3: Pair each eigenvalue with its column of the eigenvector matrix.
//
// Behavior highlights:
//   - Pairs are returned in decomposition order; no sorting is applied, so
//     index 0 is whatever eigenvalue the factorization produces first.
//   - Eigenvectors have unit Euclidean norm. Complex eigenvalues come in
//     conjugate pairs with conjugate eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrEigenFailed (wrapped with "Eigen").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Eigen(m Matrix) ([]EigenPair, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n := m.Rows()

	data := make([]float64, n*n)
	if d, ok := m.(*Dense); ok {
		copy(data, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opEigen, err)
				}
				data[i*n+j] = v
			}
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, data), mat.EigenRight); !ok {
		return nil, matrixErrorf(opEigen, ErrEigenFailed)
	}
	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	pairs := make([]EigenPair, n)
	var i, j int
	for j = 0; j < n; j++ {
		vec := make([]complex128, n)
		for i = 0; i < n; i++ {
			vec[i] = vectors.At(i, j)
		}
		pairs[j] = EigenPair{Value: values[j], Vector: vec}
	}

	return pairs, nil
}
