// SPDX-License-Identifier: MIT
// Package mtx: sentinel error set.
// Every failure of a read is reported through one of these sentinels, wrapped
// with positional context ("line N: ...: %w"). Callers match with errors.Is.
// A read never returns a partially populated matrix alongside an error.

package mtx

import (
	"errors"
	"fmt"
)

var (
	// ErrFileOpen is returned when the input path cannot be opened.
	// The underlying *fs.PathError is wrapped too, so errors.Is(err, fs.ErrNotExist) works.
	ErrFileOpen = errors.New("mtx: could not open file")

	// ErrMalformedHeader signals a banner or size line with the wrong shape or literal.
	ErrMalformedHeader = errors.New("mtx: malformed header")

	// ErrUnknownValueFormat signals a value-format token other than real|integer|pattern.
	ErrUnknownValueFormat = errors.New("mtx: unknown value format")

	// ErrUnknownSymmetry signals a symmetry token other than general|symmetric.
	ErrUnknownSymmetry = errors.New("mtx: unknown symmetry")

	// ErrMalformedDataLine signals a data line whose field count disagrees with the value format.
	ErrMalformedDataLine = errors.New("mtx: malformed data line")

	// ErrOutOfBounds signals a 1-based coordinate outside [1, rows] or [1, cols].
	ErrOutOfBounds = errors.New("mtx: coordinate out of bounds")

	// ErrUnexpectedEOF signals that input ended before the declared number of data lines.
	ErrUnexpectedEOF = errors.New("mtx: unexpected end of input")

	// ErrInvalidNumber signals a token that is not a valid number of the requested type.
	ErrInvalidNumber = errors.New("mtx: invalid numeric token")

	// ErrOverflow signals a size or entry count that does not fit the coordinate type.
	ErrOverflow = errors.New("mtx: coordinate type overflow")

	// ErrLineTooLong signals a line longer than the configured maximum (WithMaxLineBytes).
	ErrLineTooLong = errors.New("mtx: line too long")
)

// lineErrorf attaches a 1-based line number and a detail message to a sentinel.
func lineErrorf(line int, err error, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), err)
}
