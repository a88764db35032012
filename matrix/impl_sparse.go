// SPDX-License-Identifier: MIT

// Package matrix - compressed storage accessors, products and layout switches.
//
// Purpose:
//   - Safe accessors at the public surface: Get returns errors instead of panicking.
//   - gonum interop: Dims/At/T make *CSR and *CSC satisfy mat.Matrix.
//   - One layout-agnostic kernel per operation; CSR and CSC only choose the axis.
//
// Complexity quicksheet:
//   - Get/At: O(log segment + duplicates); Row/Col: O(1);
//     MulVec: O(primary + nnz); ToCSC/ToCSR: O(rows + cols + nnz);
//     ToDense: O(rows*cols + nnz).

package matrix

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxGet     = "Get"
	ctxRow     = "Row"
	ctxCol     = "Col"
	ctxMulVec  = "MulVec"
	ctxToDense = "ToDense"
)

// Compile-time assertions for gonum conformance.
var (
	_ mat.Matrix = (*CSR[int, float64])(nil)
	_ mat.Matrix = (*CSC[int32, float32])(nil)
)

// sparseErrorf wraps an error with a uniform "<Kind>.<method>(row,col)" context.
func sparseErrorf(kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}

// ---------- CSR ----------

// Dims returns the number of rows and columns.
func (m *CSR[I, V]) Dims() (r, c int) {
	return int(m.NumRows), int(m.NumCols)
}

// Get returns the value at (i, j), summing duplicate entries.
// Returns ErrOutOfRange for indices outside the matrix.
// Complexity: O(log len(row i)).
func (m *CSR[I, V]) Get(i, j int) (V, error) {
	if i < 0 || i >= int(m.NumRows) || j < 0 || j >= int(m.NumCols) {
		return 0, sparseErrorf("CSR", ctxGet, i, j, ErrOutOfRange)
	}

	return segmentSum(m.RowOffsets, m.ColIndices, m.Values, i, I(j)), nil
}

// At implements mat.Matrix. It panics with mat.ErrIndexOutOfRange on
// out-of-range indices, as the gonum contract requires; use Get for an error.
func (m *CSR[I, V]) At(i, j int) float64 {
	v, err := m.Get(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return float64(v)
}

// T implements mat.Matrix with an implicit transpose.
func (m *CSR[I, V]) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Row returns the column indices and values stored in row i.
// The slices alias the matrix storage and must be treated as read-only.
func (m *CSR[I, V]) Row(i int) ([]I, []V, error) {
	if i < 0 || i >= int(m.NumRows) {
		return nil, nil, sparseErrorf("CSR", ctxRow, i, 0, ErrOutOfRange)
	}
	lo, hi := int(m.RowOffsets[i]), int(m.RowOffsets[i+1])

	return m.ColIndices[lo:hi], m.Values[lo:hi], nil
}

// MulVec computes dst = m * x.
// Errors: ErrDimensionMismatch (wrapped) when len(x) != cols or len(dst) != rows.
func (m *CSR[I, V]) MulVec(dst, x []float64) error {
	rows, cols := m.Dims()
	if err := ValidateVecLen(x, cols); err != nil {
		return sparseErrorf("CSR", ctxMulVec, rows, cols, err)
	}
	if err := ValidateVecLen(dst, rows); err != nil {
		return sparseErrorf("CSR", ctxMulVec, rows, cols, err)
	}

	var i, k int
	for i = 0; i < rows; i++ {
		var sum float64
		for k = int(m.RowOffsets[i]); k < int(m.RowOffsets[i+1]); k++ {
			sum += float64(m.Values[k]) * x[int(m.ColIndices[k])]
		}
		dst[i] = sum
	}

	return nil
}

// ToCSC returns the same matrix in compressed sparse column layout.
// The result owns fresh slices; m is not modified.
func (m *CSR[I, V]) ToCSC() *CSC[I, V] {
	offsets, indices, values := switchLayout(int(m.NumRows), int(m.NumCols), m.RowOffsets, m.ColIndices, m.Values)

	return &CSC[I, V]{
		NumRows:     m.NumRows,
		NumCols:     m.NumCols,
		NumNonzeros: m.NumNonzeros,
		ColOffsets:  offsets,
		RowIndices:  indices,
		Values:      values,
	}
}

// ToDense copies m into a new *mat.Dense, summing duplicates.
// Errors: ErrBadShape when m has zero rows or columns (gonum forbids them).
func (m *CSR[I, V]) ToDense() (*mat.Dense, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, sparseErrorf("CSR", ctxToDense, rows, cols, ErrBadShape)
	}
	d := mat.NewDense(rows, cols, nil)
	scatter(rows, m.RowOffsets, m.ColIndices, m.Values, func(i, j int, v float64) {
		d.Set(i, j, d.At(i, j)+v)
	})

	return d, nil
}

// ---------- CSC ----------

// Dims returns the number of rows and columns.
func (m *CSC[I, V]) Dims() (r, c int) {
	return int(m.NumRows), int(m.NumCols)
}

// Get returns the value at (i, j), summing duplicate entries.
// Returns ErrOutOfRange for indices outside the matrix.
func (m *CSC[I, V]) Get(i, j int) (V, error) {
	if i < 0 || i >= int(m.NumRows) || j < 0 || j >= int(m.NumCols) {
		return 0, sparseErrorf("CSC", ctxGet, i, j, ErrOutOfRange)
	}

	return segmentSum(m.ColOffsets, m.RowIndices, m.Values, j, I(i)), nil
}

// At implements mat.Matrix; see CSR.At.
func (m *CSC[I, V]) At(i, j int) float64 {
	v, err := m.Get(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return float64(v)
}

// T implements mat.Matrix with an implicit transpose.
func (m *CSC[I, V]) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Col returns the row indices and values stored in column j.
// The slices alias the matrix storage and must be treated as read-only.
func (m *CSC[I, V]) Col(j int) ([]I, []V, error) {
	if j < 0 || j >= int(m.NumCols) {
		return nil, nil, sparseErrorf("CSC", ctxCol, 0, j, ErrOutOfRange)
	}
	lo, hi := int(m.ColOffsets[j]), int(m.ColOffsets[j+1])

	return m.RowIndices[lo:hi], m.Values[lo:hi], nil
}

// MulVec computes dst = m * x by scattering each column.
func (m *CSC[I, V]) MulVec(dst, x []float64) error {
	rows, cols := m.Dims()
	if err := ValidateVecLen(x, cols); err != nil {
		return sparseErrorf("CSC", ctxMulVec, rows, cols, err)
	}
	if err := ValidateVecLen(dst, rows); err != nil {
		return sparseErrorf("CSC", ctxMulVec, rows, cols, err)
	}

	clear(dst)
	scatter(cols, m.ColOffsets, m.RowIndices, m.Values, func(j, i int, v float64) {
		dst[i] += v * x[j]
	})

	return nil
}

// ToCSR returns the same matrix in compressed sparse row layout.
func (m *CSC[I, V]) ToCSR() *CSR[I, V] {
	offsets, indices, values := switchLayout(int(m.NumCols), int(m.NumRows), m.ColOffsets, m.RowIndices, m.Values)

	return &CSR[I, V]{
		NumRows:     m.NumRows,
		NumCols:     m.NumCols,
		NumNonzeros: m.NumNonzeros,
		RowOffsets:  offsets,
		ColIndices:  indices,
		Values:      values,
	}
}

// ToDense copies m into a new *mat.Dense, summing duplicates.
func (m *CSC[I, V]) ToDense() (*mat.Dense, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, sparseErrorf("CSC", ctxToDense, rows, cols, ErrBadShape)
	}
	d := mat.NewDense(rows, cols, nil)
	scatter(cols, m.ColOffsets, m.RowIndices, m.Values, func(j, i int, v float64) {
		d.Set(i, j, d.At(i, j)+v)
	})

	return d, nil
}

// ---------- layout-agnostic kernels ----------

// segmentSum sums the values stored at secondary index s within primary segment p.
// Relies on ascending indices inside the segment.
func segmentSum[I Coord, V Value](offsets, indices []I, values []V, p int, s I) V {
	lo, hi := int(offsets[p]), int(offsets[p+1])
	k, _ := slices.BinarySearch(indices[lo:hi], s)

	var sum V
	for k += lo; k < hi && indices[k] == s; k++ {
		sum += values[k]
	}

	return sum
}

// scatter visits every stored entry in storage order as (primary, secondary, value).
func scatter[I Coord, V Value](nPrimary int, offsets, indices []I, values []V, visit func(p, s int, v float64)) {
	var p, k int
	for p = 0; p < nPrimary; p++ {
		for k = int(offsets[p]); k < int(offsets[p+1]); k++ {
			visit(p, int(indices[k]), float64(values[k]))
		}
	}
}

// switchLayout re-compresses storage along the other axis by counting sort.
//
// Implementation:
//   - Stage 1: count entries per secondary index into offsets[s+1].
//   - Stage 2: prefix-sum the counts into the new offsets array.
//   - Stage 3: walk primaries in ascending order and place each entry at the
//     next free slot of its secondary; ascending primaries keep every new
//     segment sorted.
//
// Complexity: O(nPrimary + nSecondary + nnz) time and memory.
func switchLayout[I Coord, V Value](nPrimary, nSecondary int, offsets, indices []I, values []V) ([]I, []I, []V) {
	outOffsets := make([]I, nSecondary+1)
	for _, s := range indices {
		outOffsets[int(s)+1]++
	}
	var s int
	for s = 0; s < nSecondary; s++ {
		outOffsets[s+1] += outOffsets[s]
	}

	next := make([]I, nSecondary)
	copy(next, outOffsets[:nSecondary])
	outIndices := make([]I, len(indices))
	outValues := make([]V, len(values))

	var p, k int
	for p = 0; p < nPrimary; p++ {
		for k = int(offsets[p]); k < int(offsets[p+1]); k++ {
			s = int(indices[k])
			dst := int(next[s])
			outIndices[dst] = I(p)
			outValues[dst] = values[k]
			next[s]++
		}
	}

	return outOffsets, outIndices, outValues
}
