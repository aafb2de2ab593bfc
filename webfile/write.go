// SPDX-License-Identifier: MIT

package webfile

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/katalvlaran/webrank/matrix"
)

// filePerm is the permission used by WriteFile for new files.
const filePerm = 0o644

// Write serializes m in the connectivity file format: one line per row,
// values separated by single spaces, each line terminated by "\n".
//
// Every entry must be an integral value in 0..9; anything else is ErrFormat
// (wrapped with "Write" and the offending coordinates). Nothing is written
// to w when validation fails.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return webfileErrorf(opWrite, err)
	}
	n := m.Rows()

	// Encode into memory first so a bad entry leaves w untouched.
	var buf bytes.Buffer
	buf.Grow(n * 2 * n)
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return webfileErrorf(opWrite, err)
			}
			d := int(v)
			if float64(d) != v || d < 0 || d > 9 {
				return webfileErrorf(opWrite, formatErrorf("entry (%d,%d) = %g is not a digit", i, j, v))
			}
			if j > 0 {
				buf.WriteByte(separator)
			}
			buf.WriteByte(byte(digitZero + d))
		}
		buf.WriteByte('\n')
	}

	bw := bufio.NewWriter(w)
	if _, err = bw.Write(buf.Bytes()); err != nil {
		return webfileErrorf(opWrite, err)
	}
	if err = bw.Flush(); err != nil {
		return webfileErrorf(opWrite, err)
	}

	return nil
}

// WriteFile writes m to path (created or truncated) using Write.
func WriteFile(path string, m matrix.Matrix) error {
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		return webfileErrorf(opWriteFile, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return webfileErrorf(opWriteFile, err)
	}

	return nil
}
