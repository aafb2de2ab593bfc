// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SetCol: O(r).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a row-slice literal into a new Dense.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures, parsers and tests.
//
// Implementation:
//   - Stage 1: validate non-empty, rectangular input.
//   - Stage 2: copy each row into the flat buffer; reject NaN/±Inf.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrRaggedRows (rows of different lengths).
//   - ErrNaNInf (non-finite value, wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			if isNonFinite(rows[i][j]) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// Diagonal returns the square matrix with d on its main diagonal.
// Errors: ErrInvalidDimensions on empty d, ErrNaNInf on non-finite entries.
// Complexity: O(n²).
func Diagonal(d []float64) (*Dense, error) {
	n := len(d)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if isNonFinite(v) {
			return nil, denseErrorf(ctxSet, i, i, ErrNaNInf)
		}
		m.data[i*n+i] = v
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange sentinel; At/Set add the method context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf values.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// SetCol overwrites column j with the constant v.
// Errors: ErrOutOfRange, ErrNaNInf. Complexity: O(r).
func (m *Dense) SetCol(j int, v float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	if isNonFinite(v) {
		return denseErrorf(ctxCol, 0, j, ErrNaNInf)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v
	}

	return nil
}

// RowsCopy returns the matrix as a freshly allocated [][]float64.
// Complexity: O(r*c).
func (m *Dense) RowsCopy() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders each row as "[a, b, c]" on its own line.
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Equal reports whether other has the same shape and bitwise-equal values.
func (m *Dense) Equal(other Matrix) bool {
	if other == nil || m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	if o, ok := other.(*Dense); ok {
		for k := range m.data {
			if m.data[k] != o.data[k] {
				return false
			}
		}

		return true
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}
