// SPDX-License-Identifier: MIT

package webfile

import (
	"errors"
	"fmt"
)

// ErrFormat reports a connectivity file that is empty, unreadable, short of
// rows or columns, or (on write) a matrix that has no digit representation.
var ErrFormat = errors.New("webfile: malformed connectivity file")

// Operation tags for error wrapping.
const (
	opParse     = "Parse"
	opWrite     = "Write"
	opWriteFile = "WriteFile"
)

// webfileErrorf wraps err with an operation tag, preserving it via %w.
func webfileErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// formatErrorf builds an ErrFormat with a formatted detail message.
func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFormat)
}
