// SPDX-License-Identifier: MIT

package pagerank

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/webrank/matrix"
)

// principalEigenvector decomposes M and uses the first returned eigenpair.
// A complex first eigenvalue yields the zero vector, which normalize turns
// into ErrZeroSum.
func (e *Engine) principalEigenvector() ([]float64, error) {
	pairs, err := matrix.Eigen(e.m)
	if errors.Is(err, matrix.ErrEigenFailed) {
		return nil, pagerankErrorf(opEigen, fmt.Errorf("%w: %w", ErrEigenFailed, err))
	}
	if err != nil {
		return nil, pagerankErrorf(opEigen, err)
	}

	x := make([]float64, e.n)
	if first := pairs[0]; first.IsReal() {
		x = first.RealVector()
	}

	if x, err = normalize(x); err != nil {
		return nil, pagerankErrorf(opEigen, err)
	}

	return x, nil
}
