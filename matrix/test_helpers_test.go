// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/webrank/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the interface (non-*Dense) fallback paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows builds a *Dense from a row literal or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most tol.
func AllClose(a, b matrix.Matrix, tol float64) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false
			}
			if math.Abs(av-bv) > tol {
				return false
			}
		}
	}

	return true
}

// residual returns ‖M·v − λ·v‖₂ for a complex eigenpair of a real matrix.
func residual(t *testing.T, m *matrix.Dense, p matrix.EigenPair) float64 {
	t.Helper()
	n := m.Rows()
	var s float64
	for i := 0; i < n; i++ {
		var acc complex128
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			acc += complex(v, 0) * p.Vector[j]
		}
		d := acc - p.Value*p.Vector[i]
		s += real(d)*real(d) + imag(d)*imag(d)
	}

	return math.Sqrt(s)
}
