// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// %w) and tests MUST check them via errors.Is. Panics are reserved for the
// gonum mat.Matrix contract (At on an out-of-range index).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Context is attached with fmt.Errorf("ctx: %w", ErrX); callers use errors.Is.
//
// ERROR PRIORITY (enforced by validators):
// nil -> shape -> offsets -> indices -> ordering.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadShape is returned when a shape cannot be materialized
	// (e.g. a dense copy of a matrix with zero rows or columns).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec with len(x) != Cols or a slice length that disagrees with the header.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadOffsets signals an offsets array that does not start at 0, decreases,
	// or does not end at the stored entry count.
	ErrBadOffsets = errors.New("matrix: malformed offsets")

	// ErrUnsortedSegment signals a compressed segment whose indices are not ascending.
	ErrUnsortedSegment = errors.New("matrix: segment indices not ascending")
)
