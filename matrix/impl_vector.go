// SPDX-License-Identifier: MIT

package matrix

import "math"

// Vector helpers used by iterative algorithms. They operate on plain
// []float64 values and never retain their arguments.

// VecSum returns Σ x[i], summed left to right.
func VecSum(x []float64) float64 {
	s := ZeroSum
	for _, v := range x {
		s += v
	}

	return s
}

// VecNorm2 returns the Euclidean norm ‖x‖₂.
func VecNorm2(x []float64) float64 {
	s := ZeroSum
	for _, v := range x {
		s += v * v
	}

	return math.Sqrt(s)
}

// VecScale returns a new vector alpha·x.
func VecScale(x []float64, alpha float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = alpha * v
	}

	return out
}

// VecFill returns a vector of length n with every entry set to v.
func VecFill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// VecIsFinite reports whether every entry is neither NaN nor ±Inf.
func VecIsFinite(x []float64) bool {
	for _, v := range x {
		if isNonFinite(v) {
			return false
		}
	}

	return true
}
