// SPDX-License-Identifier: MIT

// Package report renders matrices and rank vectors for the console.
//
// Every function writes to an io.Writer and returns the first write error.
// Matrices print row by row with "%f " per value; rank vectors print one
// "PAGE: <i> RANK: <v>" line per page with four decimals.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/webrank/matrix"
	"github.com/katalvlaran/webrank/pagerank"
)

const (
	headMatrix = "Matrix Retrieved :"
	headRanks  = "PageRank Retrieved :"
	ruleRune   = "_"
)

// errWriter remembers the first error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Banner writes title between two rules of underscores.
func Banner(w io.Writer, title string) error {
	ew := &errWriter{w: w}
	rule := strings.Repeat(ruleRune, len(title)+4)
	ew.printf("%s\n\n%s\n%s\n", rule, title, rule)

	return ew.err
}

// Matrix writes a heading followed by m, one line per row.
func Matrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("report.Matrix: %w", err)
	}
	ew := &errWriter{w: w}
	ew.printf("\n%s\n\n", headMatrix)
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("report.Matrix: %w", err)
			}
			ew.printf("%f ", v)
		}
		ew.printf("\n")
	}

	return ew.err
}

// Method writes the progress line announcing method.
func Method(w io.Writer, method pagerank.Method) error {
	var line string
	switch method {
	case pagerank.InitialApproximation:
		line = "Initial PageRank Approximation..."
	case pagerank.PowerMethod:
		line = "Power Method Calculation..."
	case pagerank.PrincipalEigenvector:
		line = "Principal EigenVector Calculation..."
	default:
		return fmt.Errorf("report.Method: %w", pagerank.ErrInvalidMethod)
	}
	ew := &errWriter{w: w}
	ew.printf("\n%s\n", line)

	return ew.err
}

// Ranks writes a heading followed by one "PAGE: i RANK: v" line per page.
func Ranks(w io.Writer, rv pagerank.RankVector) error {
	ew := &errWriter{w: w}
	ew.printf("\n%s\n\n", headRanks)
	for _, pr := range rv.Pages() {
		ew.printf("PAGE: %d RANK: %.4f\n", pr.Page, pr.Rank)
	}
	ew.printf("\n")

	return ew.err
}

// Product writes both operands of a multiplication and its result.
func Product(w io.Writer, a, b, c matrix.Matrix) error {
	sections := []struct {
		title string
		m     matrix.Matrix
	}{
		{"Retrieve First Matrix", a},
		{"Retrieve Second Matrix", b},
		{"Retrieve Matrix Product", c},
	}
	for _, s := range sections {
		if err := Banner(w, s.title); err != nil {
			return err
		}
		if err := Matrix(w, s.m); err != nil {
			return err
		}
	}

	return nil
}
