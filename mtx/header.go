// SPDX-License-Identifier: MIT

package mtx

import "github.com/katalvlaran/matrixmarket/matrix"

// Banner and size-line literals.
const (
	bannerKeyword    = "%%MatrixMarket"
	bannerObject     = "matrix"
	bannerLayout     = "coordinate"
	bannerFieldCount = 5
	sizeFieldCount   = 3
	commentPrefix    = '%'
)

// readHeader consumes the banner, any comment lines and the size line.
//
// Implementation:
//   - Stage 1: banner must have exactly 5 fields; the first three are literals.
//   - Stage 2: value format and symmetry tokens are mapped (dedicated sentinels).
//   - Stage 3: skip lines starting with '%'; the first other line is the size line.
//   - Stage 4: the size line has exactly 3 non-negative integers that fit I.
//
// Errors: ErrMalformedHeader, ErrUnknownValueFormat, ErrUnknownSymmetry,
// ErrOverflow, ErrLineTooLong, or a wrapped read error.
func readHeader[I matrix.Coord](lr *lineReader, sep byte, coord numType) (Header[I], error) {
	var h Header[I]

	line, ok, err := lr.next()
	if err != nil {
		return h, err
	}
	if !ok {
		return h, lineErrorf(1, ErrMalformedHeader, "empty input")
	}

	banner := tokenize(line, sep)
	if banner.remaining() != bannerFieldCount {
		return h, lineErrorf(lr.line, ErrMalformedHeader, "banner has %d fields, want %d", banner.remaining(), bannerFieldCount)
	}
	if tok := banner.next(); tok != bannerKeyword {
		return h, lineErrorf(lr.line, ErrMalformedHeader, "missing %s, got %q", bannerKeyword, tok)
	}
	if tok := banner.next(); tok != bannerObject {
		return h, lineErrorf(lr.line, ErrMalformedHeader, "only %q objects supported, got %q", bannerObject, tok)
	}
	if tok := banner.next(); tok != bannerLayout {
		return h, lineErrorf(lr.line, ErrMalformedHeader, "only %q layout supported, got %q", bannerLayout, tok)
	}
	if h.Format, err = ParseValueFormat(banner.next()); err != nil {
		return h, lineErrorf(lr.line, err, "banner")
	}
	if h.Symmetry, err = ParseSymmetry(banner.next()); err != nil {
		return h, lineErrorf(lr.line, err, "banner")
	}

	for {
		line, ok, err = lr.next()
		if err != nil {
			return h, err
		}
		if !ok {
			return h, lineErrorf(lr.line+1, ErrMalformedHeader, "missing size line")
		}
		if len(line) == 0 || line[0] != commentPrefix {
			break
		}
	}

	size := tokenize(line, sep)
	if size.remaining() != sizeFieldCount {
		return h, lineErrorf(lr.line, ErrMalformedHeader, "size line has %d fields, want %d", size.remaining(), sizeFieldCount)
	}
	if h.NumRows, err = parseSize[I](coord, lr.line, "rows", size.next()); err != nil {
		return h, err
	}
	if h.NumCols, err = parseSize[I](coord, lr.line, "cols", size.next()); err != nil {
		return h, err
	}
	if h.NumNonzeros, err = parseSize[I](coord, lr.line, "nonzeros", size.next()); err != nil {
		return h, err
	}

	return h, nil
}
