// SPDX-License-Identifier: MIT

package mtx

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixmarket/matrix"
)

// numKind selects the strconv routine used for a type parameter.
type numKind uint8

const (
	kindSigned numKind = iota
	kindUnsigned
	kindFloat
)

// numType describes how tokens are parsed into a concrete numeric type:
// the strconv family and the bit size that bounds the accepted range.
type numType struct {
	kind numKind
	bits int
}

// numTypeOf resolves T's underlying kind once per read.
func numTypeOf[T matrix.Value]() numType {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numType{kind: kindSigned, bits: t.Bits()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return numType{kind: kindUnsigned, bits: t.Bits()}
	default:
		return numType{kind: kindFloat, bits: t.Bits()}
	}
}

// parseNumber parses tok as T. It never substitutes a default: any syntax or
// range failure is returned as the strconv error.
//
// Integer types accept only base-10 integer text ("4.0" is rejected) with an
// optional sign; a leading '+' is accepted for signed and unsigned kinds alike.
// Float types accept everything strconv.ParseFloat does.
func parseNumber[T matrix.Value](nt numType, tok string) (T, error) {
	switch nt.kind {
	case kindSigned:
		v, err := strconv.ParseInt(tok, 10, nt.bits)
		return T(v), err
	case kindUnsigned:
		v, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, nt.bits)
		return T(v), err
	default:
		v, err := strconv.ParseFloat(tok, nt.bits)
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}
}

// parseSize parses one size-line field as a coordinate.
// Syntax errors are ErrMalformedHeader+ErrInvalidNumber, range errors ErrOverflow,
// negative values ErrMalformedHeader.
func parseSize[I matrix.Coord](nt numType, line int, name, tok string) (I, error) {
	v, err := parseNumber[I](nt, tok)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, lineErrorf(line, ErrOverflow, "%s %q", name, tok)
	case isNegativeInteger(nt, tok):
		return 0, lineErrorf(line, ErrMalformedHeader, "%s %q is negative", name, tok)
	case err != nil:
		return 0, lineErrorf(line, fmt.Errorf("%w: %w", ErrMalformedHeader, ErrInvalidNumber), "%s %q", name, tok)
	case v < 0:
		return 0, lineErrorf(line, ErrMalformedHeader, "%s %q is negative", name, tok)
	case !fitsInt(v):
		return 0, lineErrorf(line, ErrOverflow, "%s %q exceeds the platform int", name, tok)
	}

	return v, nil
}

// parseIndex parses one 1-based data-line coordinate and checks 1 <= v <= limit.
// A value outside the range of I is necessarily outside [1, limit]; that
// includes negative integers read into an unsigned I.
func parseIndex[I matrix.Coord](nt numType, line int, name, tok string, limit I) (I, error) {
	v, err := parseNumber[I](nt, tok)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, lineErrorf(line, ErrOutOfBounds, "%s %q not in [1, %d]", name, tok, limit)
	case isNegativeInteger(nt, tok):
		return 0, lineErrorf(line, ErrOutOfBounds, "%s %q not in [1, %d]", name, tok, limit)
	case err != nil:
		return 0, lineErrorf(line, ErrInvalidNumber, "%s %q", name, tok)
	case v < 1 || v > limit:
		return 0, lineErrorf(line, ErrOutOfBounds, "%s %d not in [1, %d]", name, v, limit)
	}

	return v, nil
}

// isNegativeInteger reports whether tok is well-formed negative integer text
// that an unsigned kind rejected only for its sign.
func isNegativeInteger(nt numType, tok string) bool {
	if nt.kind != kindUnsigned || !strings.HasPrefix(tok, "-") {
		return false
	}
	_, err := strconv.ParseInt(tok, 10, 64)

	return err == nil || errors.Is(err, strconv.ErrRange)
}

// fitsInt reports whether a non-negative coordinate converts to int without
// wrapping and leaves room for the +1 of an offsets array.
func fitsInt[I matrix.Coord](v I) bool {
	n := int(v)

	return n >= 0 && uint64(n) == uint64(v) && n < math.MaxInt
}

// fitsCoord reports whether the non-negative count n is representable in I.
func fitsCoord[I matrix.Coord](n int) bool {
	c := I(n)

	return c >= 0 && int(c) == n
}
