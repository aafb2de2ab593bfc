// SPDX-License-Identifier: MIT

// Package webfile reads and writes connectivity matrices in the plain
// digit-and-space text format used for small webgraphs.
//
// A file holds n lines of n single-digit values separated by single spaces:
//
//	0 1 1
//	1 0 0
//	0 1 0
//
// Entry (i, j) is the weight of the link from page j+1 to page i+1 (row =
// destination, column = source). The dimension n is taken from the length of
// the first line: n = (len(line)+1)/2 once the line terminator is stripped.
//
// Parsing is permissive: every non-space byte contributes its value minus
// '0' to the next column, and scanning of a row stops as soon as n entries
// are collected. Missing rows or short rows are reported as ErrFormat.
// Lines after the n-th are ignored.
package webfile
