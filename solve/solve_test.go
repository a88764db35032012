// SPDX-License-Identifier: MIT
package solve_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/matrixmarket/matrix"
	"github.com/katalvlaran/matrixmarket/mtx"
	"github.com/katalvlaran/matrixmarket/solve"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// system3 is [[4 1 0] [1 3 0] [0 0 2]] with the (1,1) entry split across two duplicate lines.
const system3 = `%%MatrixMarket matrix coordinate real general
3 3 6
1 1 3
1 1 1
1 2 1
2 1 1
2 2 3
3 3 2
`

func TestSolve_Diagonal(t *testing.T) {
	t.Parallel()

	a := &matrix.CSR[int, float64]{
		NumRows: 2, NumCols: 2, NumNonzeros: 2,
		RowOffsets: []int{0, 1, 2},
		ColIndices: []int{0, 1},
		Values:     []float64{2, 4},
	}
	x, err := solve.Solve(a, []float64{2, 8})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2}, x, tol)
}

func TestSolve_DecodedSystem(t *testing.T) {
	t.Parallel()

	a, err := mtx.DecodeCSR[int32, float64](strings.NewReader(system3))
	require.NoError(t, err)

	b := []float64{6, 7, 6} // A·(1,2,3)
	x, err := solve.Solve(a, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2, 3}, x, tol)

	res, err := solve.Residual(a, x, b)
	require.NoError(t, err)
	require.Less(t, res, tol)
}

func TestSolve_SymmetricIntegerValues(t *testing.T) {
	t.Parallel()

	doc := "%%MatrixMarket matrix coordinate integer symmetric\n2 2 3\n1 1 2\n2 1 1\n2 2 2\n"
	a, err := mtx.DecodeCSR[uint16, int64](strings.NewReader(doc))
	require.NoError(t, err)

	// [[2 1] [1 2]]·(1,1) = (3,3)
	x, err := solve.Solve(a, []float64{3, 3})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1}, x, tol)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	rect := &matrix.CSR[int, float64]{
		NumRows: 2, NumCols: 3, NumNonzeros: 1,
		RowOffsets: []int{0, 1, 1},
		ColIndices: []int{2},
		Values:     []float64{1},
	}
	_, err := solve.Solve(rect, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sq := &matrix.CSR[int, float64]{
		NumRows: 1, NumCols: 1, NumNonzeros: 1,
		RowOffsets: []int{0, 1},
		ColIndices: []int{0},
		Values:     []float64{5},
	}
	_, err = solve.Solve(sq, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var nilCSR *matrix.CSR[int, float64]
	_, err = solve.Solve(nilCSR, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	broken := &matrix.CSR[int, float64]{NumRows: 1, NumCols: 1, RowOffsets: []int{1, 0}}
	_, err = solve.Solve(broken, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadOffsets)
}

func TestSolve_Empty(t *testing.T) {
	t.Parallel()

	a := &matrix.CSR[int, float64]{RowOffsets: []int{0}}
	x, err := solve.Solve(a, nil)
	require.NoError(t, err)
	require.Empty(t, x)
}

func TestResidual_Errors(t *testing.T) {
	t.Parallel()

	var nilCSR *matrix.CSR[int, float64]
	_, err := solve.Residual(nilCSR, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	a := &matrix.CSR[int, float64]{
		NumRows: 1, NumCols: 1, NumNonzeros: 1,
		RowOffsets: []int{0, 1},
		ColIndices: []int{0},
		Values:     []float64{2},
	}
	_, err = solve.Residual(a, []float64{1, 2}, []float64{2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = solve.Residual(a, []float64{1}, []float64{2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	res, err := solve.Residual(a, []float64{1}, []float64{2})
	require.NoError(t, err)
	require.Zero(t, res)
}
