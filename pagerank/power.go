// SPDX-License-Identifier: MIT

package pagerank

import (
	"fmt"

	"github.com/katalvlaran/webrank/matrix"
)

// powerMethod iterates x ← A·x with A = p·S + e·zᵗ.
// Implementation:
//   - Stage 1: z[j] = (1−p)/n on linked columns, 1/n on dangling ones
//     ((1−p)/n everywhere under WithMassConservingTeleport).
//   - Stage 2: A = p·S + outer(e, z).
//   - Stage 3: x_prev = 0, x_curr = e; while ‖(x_curr − x_prev)/n‖₂ > Tolerance,
//     step x_prev ← x_curr, x_curr ← A·x_curr.
//   - Stage 4: normalize x_curr.
//
// The default dangling teleport 1/n gives such columns a sum of 1+p, so Σx
// grows without bound on graphs with dangling pages; the iteration cap turns
// that into ErrNotConverged.
//
// Returns the normalized vector and the number of steps taken.
func (e *Engine) powerMethod(setup Setup) ([]float64, int, error) {
	n := e.n
	fn := float64(n)

	z := make([]float64, n)
	for j, s := range setup.ColSums {
		if s != 0 || e.opts.conserveMass {
			z[j] = (1 - Damping) / fn
		} else {
			z[j] = 1 / fn
		}
	}

	ps, err := matrix.Scale(setup.S, Damping)
	if err != nil {
		return nil, 0, pagerankErrorf(opPower, err)
	}
	ez, err := matrix.Outer(matrix.VecFill(n, 1), z)
	if err != nil {
		return nil, 0, pagerankErrorf(opPower, err)
	}
	a, err := matrix.Add(ps, ez)
	if err != nil {
		return nil, 0, pagerankErrorf(opPower, err)
	}

	prev := make([]float64, n)
	curr := matrix.VecFill(n, 1)
	iterations := 0
	for stepNorm(curr, prev, fn) > Tolerance {
		if iterations == e.opts.maxIter {
			return nil, iterations, pagerankErrorf(opPower,
				fmt.Errorf("stopped after %d iterations: %w", iterations, ErrNotConverged))
		}
		prev = curr
		if curr, err = matrix.MatVec(a, prev); err != nil {
			return nil, iterations, pagerankErrorf(opPower, err)
		}
		iterations++
		if !matrix.VecIsFinite(curr) {
			return nil, iterations, pagerankErrorf(opPower,
				fmt.Errorf("non-finite iterate at step %d: %w", iterations, ErrNotConverged))
		}
	}

	x, err := normalize(curr)
	if err != nil {
		return nil, iterations, pagerankErrorf(opPower, err)
	}

	return x, iterations, nil
}

// stepNorm returns ‖(curr − prev)/n‖₂, dividing before taking the norm.
func stepNorm(curr, prev []float64, n float64) float64 {
	d := make([]float64, len(curr))
	for i := range curr {
		d[i] = (curr[i] - prev[i]) / n
	}

	return matrix.VecNorm2(d)
}
