// SPDX-License-Identifier: MIT

package pagerank

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/webrank/matrix"
)

// initialApproximation solves (I − p·M·D)·x = e and normalizes x.
// Dangling columns of M·D stay zero here; S is not used.
func (e *Engine) initialApproximation(setup Setup) ([]float64, error) {
	md, err := matrix.Mul(e.m, setup.D)
	if err != nil {
		return nil, pagerankErrorf(opInitial, err)
	}
	pmd, err := matrix.Scale(md, Damping)
	if err != nil {
		return nil, pagerankErrorf(opInitial, err)
	}
	id, err := matrix.Identity(e.n)
	if err != nil {
		return nil, pagerankErrorf(opInitial, err)
	}
	a, err := matrix.Sub(id, pmd)
	if err != nil {
		return nil, pagerankErrorf(opInitial, err)
	}

	x, err := matrix.Solve(a, matrix.VecFill(e.n, 1))
	if errors.Is(err, matrix.ErrSingular) {
		return nil, pagerankErrorf(opInitial, fmt.Errorf("%w: %w", ErrSingularSystem, err))
	}
	if err != nil {
		return nil, pagerankErrorf(opInitial, err)
	}

	if x, err = normalize(x); err != nil {
		return nil, pagerankErrorf(opInitial, err)
	}

	return x, nil
}
