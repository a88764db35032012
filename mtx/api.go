// SPDX-License-Identifier: MIT

package mtx

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matrixmarket/matrix"
)

// stage names a step of the read pipeline for logs and error context.
type stage string

const (
	stageHeader      stage = "header"
	stageCoordinates stage = "coordinates"
)

// ReadCSR reads a coordinate file at path into a CSR matrix.
// On any failure it returns a nil matrix and an error matching one of the
// package sentinels; see DecodeCSR for the pipeline.
func ReadCSR[I matrix.Coord, V matrix.Value](path string, opts ...Option) (*matrix.CSR[I, V], error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := DecodeCSR[I, V](f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// ReadCSC reads a coordinate file at path into a CSC matrix.
func ReadCSC[I matrix.Coord, V matrix.Value](path string, opts ...Option) (*matrix.CSC[I, V], error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := DecodeCSC[I, V](f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// ReadHeader reads only the banner, comments and size line of the file at path.
func ReadHeader[I matrix.Coord](path string, opts ...Option) (Header[I], error) {
	f, err := openFile(path)
	if err != nil {
		return Header[I]{}, err
	}
	defer f.Close()

	h, err := DecodeHeader[I](f, opts...)
	if err != nil {
		return Header[I]{}, fmt.Errorf("%s: %w", path, err)
	}

	return h, nil
}

// ReadCOO reads the file at path once and returns its header together with
// the expanded, 0-based COO entries; see DecodeCOO.
func ReadCOO[I matrix.Coord, V matrix.Value](path string, opts ...Option) (Header[I], []Nonzero[I, V], error) {
	f, err := openFile(path)
	if err != nil {
		return Header[I]{}, nil, err
	}
	defer f.Close()

	h, entries, err := DecodeCOO[I, V](f, opts...)
	if err != nil {
		return Header[I]{}, nil, fmt.Errorf("%s: %w", path, err)
	}

	return h, entries, nil
}

// DecodeCSR parses r into a CSR matrix.
//
// Pipeline: header → coordinates (COO) → sort by (row, col) → compress.
// The result's NumNonzeros counts stored entries after symmetric expansion and
// may exceed the declared count.
func DecodeCSR[I matrix.Coord, V matrix.Value](r io.Reader, opts ...Option) (*matrix.CSR[I, V], error) {
	o := gatherOptions(opts...)
	h, entries, err := decodeCOO[I, V](r, o)
	if err != nil {
		return nil, err
	}

	offsets, indices, values := compress(entries, byRow, h.NumRows)
	o.logger.Debug("mtx.converted", "layout", byRow.String(), "nnz", len(values))

	return &matrix.CSR[I, V]{
		NumRows:     h.NumRows,
		NumCols:     h.NumCols,
		NumNonzeros: I(len(values)),
		RowOffsets:  offsets,
		ColIndices:  indices,
		Values:      values,
	}, nil
}

// DecodeCSC parses r into a CSC matrix: the DecodeCSR pipeline sorted by
// (col, row) and compressed along columns.
func DecodeCSC[I matrix.Coord, V matrix.Value](r io.Reader, opts ...Option) (*matrix.CSC[I, V], error) {
	o := gatherOptions(opts...)
	h, entries, err := decodeCOO[I, V](r, o)
	if err != nil {
		return nil, err
	}

	offsets, indices, values := compress(entries, byCol, h.NumCols)
	o.logger.Debug("mtx.converted", "layout", byCol.String(), "nnz", len(values))

	return &matrix.CSC[I, V]{
		NumRows:     h.NumRows,
		NumCols:     h.NumCols,
		NumNonzeros: I(len(values)),
		ColOffsets:  offsets,
		RowIndices:  indices,
		Values:      values,
	}, nil
}

// DecodeHeader parses only the header of r; the data lines are left unread.
func DecodeHeader[I matrix.Coord](r io.Reader, opts ...Option) (Header[I], error) {
	o := gatherOptions(opts...)
	lr := newLineReader(r, o.maxLineBytes)

	h, err := readHeader[I](lr, o.separator, numTypeOf[I]())
	if err != nil {
		return Header[I]{}, o.fail(stageHeader, err)
	}

	return h, nil
}

// DecodeCOO parses r into its header and the expanded, 0-based COO entries in
// file order (mirrored entries directly follow their source entry).
func DecodeCOO[I matrix.Coord, V matrix.Value](r io.Reader, opts ...Option) (Header[I], []Nonzero[I, V], error) {
	return decodeCOO[I, V](r, gatherOptions(opts...))
}

// decodeCOO runs the header and coordinate stages with resolved options.
func decodeCOO[I matrix.Coord, V matrix.Value](r io.Reader, o Options) (Header[I], []Nonzero[I, V], error) {
	lr := newLineReader(r, o.maxLineBytes)
	coord := numTypeOf[I]()

	h, err := readHeader[I](lr, o.separator, coord)
	if err != nil {
		return Header[I]{}, nil, o.fail(stageHeader, err)
	}
	o.logger.Debug("mtx.header_parsed",
		"format", h.Format.String(),
		"symmetry", h.Symmetry.String(),
		"rows", h.NumRows,
		"cols", h.NumCols,
		"declared_nnz", h.NumNonzeros,
	)

	entries, err := readCoordinates[I, V](lr, h, o.separator, coord, numTypeOf[V]())
	if err != nil {
		return Header[I]{}, nil, o.fail(stageCoordinates, err)
	}
	o.logger.Debug("mtx.coordinates_ingested", "entries", len(entries), "lines", lr.line)

	return h, entries, nil
}

// openFile opens path for reading; failures wrap both ErrFileOpen and the OS error.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}

	return f, nil
}

// fail logs a failed stage and returns err unchanged.
func (o Options) fail(st stage, err error) error {
	o.logger.Debug("mtx.failed", "stage", string(st), "err", err)

	return err
}
