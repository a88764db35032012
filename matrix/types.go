// SPDX-License-Identifier: MIT

// Package matrix: domain types for compressed sparse storage.
// This file contains ONLY the numeric constraints and the CSR/CSC containers.
// Errors, validators and algorithms live in dedicated files.
package matrix

// Coord is the set of integer types usable as row/column coordinates and
// offsets. Named types over the built-in integers are accepted.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Value is the set of numeric types usable as stored entry values.
type Value interface {
	Coord | ~float32 | ~float64
}

// CSR is a compressed sparse row matrix.
//
// Layout:
//   - RowOffsets has NumRows+1 entries, RowOffsets[0]==0, non-decreasing,
//     RowOffsets[NumRows]==NumNonzeros.
//   - ColIndices[RowOffsets[i]:RowOffsets[i+1]] are the columns of row i in
//     ascending order; Values is parallel to ColIndices.
//
// Duplicate (row, col) pairs are legal and kept as separate entries; At sums them.
// A CSR exclusively owns its three slices.
type CSR[I Coord, V Value] struct {
	NumRows     I
	NumCols     I
	NumNonzeros I // stored entries, after any symmetric expansion

	RowOffsets []I // len == NumRows+1
	ColIndices []I // len == NumNonzeros
	Values     []V // len == NumNonzeros
}

// CSC is a compressed sparse column matrix; the mirror image of CSR with
// columns as the primary axis.
type CSC[I Coord, V Value] struct {
	NumRows     I
	NumCols     I
	NumNonzeros I

	ColOffsets []I // len == NumCols+1
	RowIndices []I // len == NumNonzeros
	Values     []V // len == NumNonzeros
}
