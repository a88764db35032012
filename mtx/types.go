// SPDX-License-Identifier: MIT

package mtx

import (
	"fmt"

	"github.com/katalvlaran/matrixmarket/matrix"
)

// Symmetry is the symmetry class declared in the banner line.
type Symmetry uint8

const (
	// General stores every entry explicitly.
	General Symmetry = iota
	// Symmetric stores one triangle; off-diagonal entries are mirrored on read.
	Symmetric
)

// String returns the banner token for s.
func (s Symmetry) String() string {
	switch s {
	case General:
		return "general"
	case Symmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("Symmetry(%d)", uint8(s))
	}
}

// ParseSymmetry maps a banner token to a Symmetry.
// Errors: ErrUnknownSymmetry for anything but "general" or "symmetric".
func ParseSymmetry(tok string) (Symmetry, error) {
	switch tok {
	case "general":
		return General, nil
	case "symmetric":
		return Symmetric, nil
	default:
		return 0, fmt.Errorf("%q: %w", tok, ErrUnknownSymmetry)
	}
}

// ValueFormat is the value kind declared in the banner line.
type ValueFormat uint8

const (
	// Real data lines carry a floating-point value.
	Real ValueFormat = iota
	// Integer data lines carry an integer value.
	Integer
	// Pattern data lines carry no value; every stored value is one.
	Pattern
)

// String returns the banner token for f.
func (f ValueFormat) String() string {
	switch f {
	case Real:
		return "real"
	case Integer:
		return "integer"
	case Pattern:
		return "pattern"
	default:
		return fmt.Sprintf("ValueFormat(%d)", uint8(f))
	}
}

// ParseValueFormat maps a banner token to a ValueFormat.
// Errors: ErrUnknownValueFormat for anything but "real", "integer" or "pattern".
func ParseValueFormat(tok string) (ValueFormat, error) {
	switch tok {
	case "real":
		return Real, nil
	case "integer":
		return Integer, nil
	case "pattern":
		return Pattern, nil
	default:
		return 0, fmt.Errorf("%q: %w", tok, ErrUnknownValueFormat)
	}
}

// Header is the validated banner and size line of a coordinate file.
// NumNonzeros is the declared count, before symmetric expansion.
type Header[I matrix.Coord] struct {
	Symmetry    Symmetry
	Format      ValueFormat
	NumRows     I
	NumCols     I
	NumNonzeros I
}

// dataFields is the number of fields every data line must carry under h.Format.
func (h Header[I]) dataFields() int {
	if h.Format == Pattern {
		return 2
	}

	return 3
}

// Nonzero is one COO entry with 0-based coordinates.
type Nonzero[I matrix.Coord, V matrix.Value] struct {
	Row   I
	Col   I
	Value V
}
