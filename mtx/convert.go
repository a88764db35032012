// SPDX-License-Identifier: MIT

package mtx

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/matrixmarket/matrix"
)

// axis selects which coordinate of a Nonzero is compressed (primary) and
// which is stored in the index array (secondary).
type axis uint8

const (
	byRow axis = iota // CSR: primary=row, secondary=col
	byCol             // CSC: primary=col, secondary=row
)

// String names the layout produced along a.
func (a axis) String() string {
	if a == byCol {
		return "csc"
	}

	return "csr"
}

// split returns (primary, secondary) of nz under a.
func split[I matrix.Coord, V matrix.Value](a axis, nz Nonzero[I, V]) (I, I) {
	if a == byCol {
		return nz.Col, nz.Row
	}

	return nz.Row, nz.Col
}

// compress sorts entries by (primary, secondary) and builds the compressed
// offsets/indices/values arrays in a single scan.
//
// Implementation:
//   - Stage 1: stable sort ascending by (primary, secondary); duplicates keep
//     their file order, so identical input always yields identical output.
//   - Stage 2: offsets=[0]; for each entry, while the cursor is below its
//     primary, append len(indices) and advance, which repeats the offset for
//     every empty segment skipped.
//   - Stage 3: append secondary and value.
//   - Stage 4: pad offsets with len(indices) up to primaryDim+1 (trailing
//     empty segments).
//
// entries is reordered in place. Every entry must satisfy primary < primaryDim.
// Complexity: O(nnz log nnz + primaryDim).
func compress[I matrix.Coord, V matrix.Value](entries []Nonzero[I, V], a axis, primaryDim I) ([]I, []I, []V) {
	slices.SortStableFunc(entries, func(x, y Nonzero[I, V]) int {
		xp, xs := split(a, x)
		yp, ys := split(a, y)
		if c := cmp.Compare(xp, yp); c != 0 {
			return c
		}
		return cmp.Compare(xs, ys)
	})

	n := int(primaryDim) + 1
	offsets := make([]I, 1, n)
	indices := make([]I, 0, len(entries))
	values := make([]V, 0, len(entries))

	var cursor I
	for _, nz := range entries {
		p, s := split(a, nz)
		for cursor < p {
			offsets = append(offsets, I(len(indices)))
			cursor++
		}
		indices = append(indices, s)
		values = append(values, nz.Value)
	}
	for len(offsets) < n {
		offsets = append(offsets, I(len(indices)))
	}

	return offsets, indices, values
}
