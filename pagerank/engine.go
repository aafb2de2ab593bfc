// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/webrank/matrix"
)

// Engine ranks the pages of one connectivity matrix.
type Engine struct {
	m    *matrix.Dense // private copy, never mutated
	n    int
	opts Options
}

// NewEngine validates m (non-nil, square) and keeps a private copy of it.
// Later changes to m do not affect the engine.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (wrapped with "NewEngine").
func NewEngine(m matrix.Matrix, opts ...Option) (*Engine, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, pagerankErrorf(opNewEngine, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, pagerankErrorf(opNewEngine, err)
	}

	return &Engine{m: d, n: d.Rows(), opts: gatherOptions(opts...)}, nil
}

// toDense returns an independent *Dense copy of any Matrix.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Dimension returns the number of pages n.
func (e *Engine) Dimension() int { return e.n }

// Matrix returns a copy of the connectivity matrix.
func (e *Engine) Matrix() *matrix.Dense { return e.m.Clone().(*matrix.Dense) }

// Rank computes the rank vector with the given method.
// See Compute for errors.
func (e *Engine) Rank(method Method) (RankVector, error) {
	res, err := e.Compute(method)
	if err != nil {
		return nil, err
	}

	return res.Ranks, nil
}

// Compute runs method and returns the rank vector with run metadata.
//
// Errors:
//   - ErrInvalidMethod for values outside 1..3.
//   - ErrSingularSystem (InitialApproximation), ErrNotConverged
//     (PowerMethod), ErrEigenFailed (PrincipalEigenvector), ErrZeroSum (any).
func (e *Engine) Compute(method Method) (Result, error) {
	if !method.Valid() {
		return Result{}, pagerankErrorf(opRank, fmt.Errorf("%d: %w", int(method), ErrInvalidMethod))
	}
	start := time.Now()

	var (
		x          []float64
		iterations int
		setup      Setup
		err        error
	)
	// The eigenvector method works on M directly and skips Setup.
	if method != PrincipalEigenvector {
		if setup, err = e.Setup(); err != nil {
			return Result{}, err
		}
	}
	switch method {
	case InitialApproximation:
		x, err = e.initialApproximation(setup)
	case PowerMethod:
		x, iterations, err = e.powerMethod(setup)
	case PrincipalEigenvector:
		x, err = e.principalEigenvector()
	}
	if err != nil {
		e.opts.logger.Debug().Err(err).Str("method", method.String()).Int("pages", e.n).Msg("rank failed")
		return Result{}, err
	}

	res := Result{
		Ranks:      RankVector(x),
		Method:     method,
		Iterations: iterations,
		Elapsed:    time.Since(start),
	}
	e.opts.logger.Debug().
		Str("method", method.String()).
		Int("pages", e.n).
		Int("iterations", iterations).
		Dur("elapsed", res.Elapsed).
		Msg("rank computed")

	return res, nil
}

// normalize returns x / Σx, or ErrZeroSum when Σx is zero or non-finite.
func normalize(x []float64) ([]float64, error) {
	s := matrix.VecSum(x)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("sum %g: %w", s, ErrZeroSum)
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / s
	}

	return out, nil
}
