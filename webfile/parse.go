// SPDX-License-Identifier: MIT

package webfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/webrank/matrix"
)

const (
	digitZero = '0'
	separator = ' '
)

// Dimension returns the matrix dimension implied by the first line of a
// connectivity file. The line terminator ("\n" or "\r\n") is ignored.
// An empty line yields 0.
func Dimension(line string) int {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return (len(line) + 1) / 2
}

// Parse reads the connectivity matrix stored at path.
// The file is read into memory once and closed before parsing starts.
//
// Errors:
//   - ErrFormat (wrapped with "Parse") for unreadable, empty or short input;
//     the OS error is kept in the chain for unreadable files.
func Parse(path string) (*matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, webfileErrorf(opParse, fmtWrap(err))
	}

	return parseBytes(data)
}

// ParseReader reads a connectivity matrix from r. See Parse.
func ParseReader(r io.Reader) (*matrix.Dense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, webfileErrorf(opParse, fmtWrap(err))
	}

	return parseBytes(data)
}

// fmtWrap joins a read error with ErrFormat so both match with errors.Is.
func fmtWrap(err error) error {
	return fmt.Errorf("read: %w: %w", err, ErrFormat)
}

// parseBytes implements the parsing contract on an in-memory buffer.
// Implementation:
//   - Stage 1: split into lines, stripping "\r" before "\n"; the empty piece
//     after a final "\n" is not a line.
//   - Stage 2: n = Dimension(first line); n == 0 or fewer than n lines is ErrFormat.
//   - Stage 3: scan the first n lines, rejecting the first short one.
//   - Stage 4: copy the rows into an n×n Dense.
//
// Memory stays proportional to the input: the n×n result is allocated only
// after every row has supplied its n values.
func parseBytes(data []byte) (*matrix.Dense, error) {
	if len(data) == 0 {
		return nil, webfileErrorf(opParse, formatErrorf("empty input"))
	}
	lines := bytes.Split(data, []byte{'\n'})
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = bytes.TrimSuffix(lines[i], []byte{'\r'})
	}

	n := Dimension(string(lines[0]))
	if n == 0 {
		return nil, webfileErrorf(opParse, formatErrorf("line 1: empty first line"))
	}
	if len(lines) < n {
		return nil, webfileErrorf(opParse, formatErrorf("line %d: missing row, want %d rows", len(lines)+1, n))
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = parseRow(lines[i], n)
		if len(rows[i]) < n {
			return nil, webfileErrorf(opParse, formatErrorf("line %d: got %d values, want %d", i+1, len(rows[i]), n))
		}
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, webfileErrorf(opParse, err)
	}

	return m, nil
}

// parseRow scans one line left to right, skipping spaces, until n values
// are collected. Each other byte contributes byte−'0'. A short line yields
// fewer than n values.
func parseRow(line []byte, n int) []float64 {
	row := make([]float64, 0, min(n, len(line)))
	for _, c := range line {
		if c == separator {
			continue
		}
		row = append(row, float64(int(c)-digitZero))
		if len(row) == n {
			break
		}
	}

	return row
}
