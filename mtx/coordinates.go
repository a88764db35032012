// SPDX-License-Identifier: MIT

package mtx

import (
	"fmt"

	"github.com/katalvlaran/matrixmarket/matrix"
)

// maxPrealloc caps the up-front COO capacity so a lying size line cannot force
// a huge allocation before any data line has been read.
const maxPrealloc = 1 << 20

// readCoordinates consumes exactly h.NumNonzeros data lines into a COO list.
//
// Implementation:
//   - Stage 1: each line must carry h.dataFields() fields (2 for pattern, else 3).
//   - Stage 2: row, col parse as I and must lie in [1, rows] / [1, cols];
//     the value parses as V, or is V(1) for pattern files.
//   - Stage 3: shift to 0-based, append, and for symmetric files append the
//     mirrored entry unless it lies on the diagonal.
//   - Stage 4: the post-expansion count must fit I.
//
// Comment lines are NOT skipped here. Duplicate coordinates are kept as
// separate entries. The first failure aborts the whole read.
func readCoordinates[I matrix.Coord, V matrix.Value](lr *lineReader, h Header[I], sep byte, coord, value numType) ([]Nonzero[I, V], error) {
	declared := int(h.NumNonzeros)
	fields := h.dataFields()
	mirror := h.Symmetry == Symmetric

	hint := min(declared, maxPrealloc)
	if mirror {
		hint *= 2
	}
	entries := make([]Nonzero[I, V], 0, hint)

	var n int
	for n = 0; n < declared; n++ {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("read %d of %d data lines: %w", n, declared, ErrUnexpectedEOF)
		}

		tk := tokenize(line, sep)
		if tk.remaining() != fields {
			return nil, lineErrorf(lr.line, ErrMalformedDataLine, "%d fields, want %d for %s format", tk.remaining(), fields, h.Format)
		}

		row, err := parseIndex(coord, lr.line, "row", tk.next(), h.NumRows)
		if err != nil {
			return nil, err
		}
		col, err := parseIndex(coord, lr.line, "col", tk.next(), h.NumCols)
		if err != nil {
			return nil, err
		}

		v := V(1)
		if h.Format != Pattern {
			tok := tk.next()
			if v, err = parseNumber[V](value, tok); err != nil {
				return nil, lineErrorf(lr.line, fmt.Errorf("%w: %w", ErrInvalidNumber, err), "value %q", tok)
			}
		}

		// Fix the 1-indexing.
		row--
		col--

		entries = append(entries, Nonzero[I, V]{Row: row, Col: col, Value: v})
		if mirror && row != col {
			entries = append(entries, Nonzero[I, V]{Row: col, Col: row, Value: v})
		}
	}

	if !fitsCoord[I](len(entries)) {
		return nil, fmt.Errorf("%d stored entries: %w", len(entries), ErrOverflow)
	}

	return entries, nil
}
