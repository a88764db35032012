// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks on
//    compressed matrices.
//  - Keep algorithms minimal by delegating nil/shape/offset checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Compressed validation runs O(primary + nnz).
//
// Note:
//  - Each composite validator follows a fixed sequence
//    (NotNil → Shape → Offsets → Indices → Ordering).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateCSR checks every structural invariant of a CSR matrix.
//
// Implementation:
//   - Stage 1: reject nil.
//   - Stage 2: delegate to validateCompressed with rows as the primary axis.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch, ErrBadOffsets,
// ErrOutOfRange, ErrUnsortedSegment.
// Complexity: O(rows + nnz).
func ValidateCSR[I Coord, V Value](m *CSR[I, V]) error {
	if m == nil {
		return validatorErrorf("ValidateCSR", ErrNilMatrix)
	}
	if err := validateCompressed(m.NumRows, m.NumCols, m.NumNonzeros, m.RowOffsets, m.ColIndices, len(m.Values)); err != nil {
		return validatorErrorf("ValidateCSR", err)
	}

	return nil
}

// ValidateCSC checks every structural invariant of a CSC matrix.
// Same sequence as ValidateCSR with columns as the primary axis.
// Complexity: O(cols + nnz).
func ValidateCSC[I Coord, V Value](m *CSC[I, V]) error {
	if m == nil {
		return validatorErrorf("ValidateCSC", ErrNilMatrix)
	}
	if err := validateCompressed(m.NumCols, m.NumRows, m.NumNonzeros, m.ColOffsets, m.RowIndices, len(m.Values)); err != nil {
		return validatorErrorf("ValidateCSC", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors unless the required size is zero.
	if x == nil && n != 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateCompressed is the layout-agnostic core of ValidateCSR/ValidateCSC.
// primary is the compressed axis, secondary the axis stored in indices.
func validateCompressed[I Coord](primary, secondary, nnz I, offsets, indices []I, nValues int) error {
	// Shape: dimensions and counts are non-negative.
	if primary < 0 || secondary < 0 || nnz < 0 {
		return ErrBadShape
	}
	nPrimary, nStored := int(primary), int(nnz)

	// Slice lengths agree with the header.
	if len(offsets) != nPrimary+1 {
		return fmt.Errorf("offsets length %d, want %d: %w", len(offsets), nPrimary+1, ErrDimensionMismatch)
	}
	if len(indices) != nStored || nValues != nStored {
		return fmt.Errorf("indices/values length %d/%d, want %d: %w", len(indices), nValues, nStored, ErrDimensionMismatch)
	}

	// Offsets start at zero and end at nnz.
	if offsets[0] != 0 {
		return fmt.Errorf("offsets[0]=%d: %w", offsets[0], ErrBadOffsets)
	}
	if offsets[nPrimary] != nnz {
		return fmt.Errorf("offsets[%d]=%d, want %d: %w", nPrimary, offsets[nPrimary], nnz, ErrBadOffsets)
	}

	// Per segment: monotone offsets, in-range and ascending indices.
	var p, k int
	for p = 0; p < nPrimary; p++ {
		lo, hi := offsets[p], offsets[p+1]
		if hi < lo || int(hi) > nStored {
			return fmt.Errorf("segment %d [%d,%d): %w", p, lo, hi, ErrBadOffsets)
		}
		for k = int(lo); k < int(hi); k++ {
			idx := indices[k]
			if idx < 0 || idx >= secondary {
				return fmt.Errorf("segment %d index %d: %w", p, idx, ErrOutOfRange)
			}
			if k > int(lo) && indices[k-1] > idx {
				return fmt.Errorf("segment %d at %d: %w", p, k, ErrUnsortedSegment)
			}
		}
	}

	return nil
}
