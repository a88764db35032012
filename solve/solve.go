// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"

	"github.com/edp1096/sparse"
	"github.com/katalvlaran/matrixmarket/matrix"
)

// newConfig returns the real-valued, expandable configuration used for every system.
func newConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// Solve returns x with A·x = b.
//
// Errors:
//   - matrix.ErrNilMatrix / structural errors from matrix.ValidateCSR;
//   - matrix.ErrNonSquare when A is not n×n;
//   - matrix.ErrDimensionMismatch when len(b) != n;
//   - ErrFactor / ErrSolve wrapping the sparse package error.
//
// A 0×0 system has the empty solution.
func Solve[I matrix.Coord, V matrix.Value](a *matrix.CSR[I, V], b []float64) ([]float64, error) {
	if err := matrix.ValidateCSR(a); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	n := int(a.NumRows)
	if n != int(a.NumCols) {
		return nil, fmt.Errorf("solve: %d×%d: %w", a.NumRows, a.NumCols, matrix.ErrNonSquare)
	}
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("solve: rhs: %w", err)
	}
	if n == 0 {
		return []float64{}, nil
	}

	sm, err := sparse.Create(int64(n), newConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFactor, err)
	}

	// Stage 1: load entries; GetElement creates the cell on first touch.
	for i := 0; i < n; i++ {
		for k := int(a.RowOffsets[i]); k < int(a.RowOffsets[i+1]); k++ {
			j := int(a.ColIndices[k])
			sm.GetElement(int64(i+1), int64(j+1)).Real += float64(a.Values[k])
		}
	}

	// Stage 2: factor.
	if err = sm.Factor(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFactor, err)
	}

	// Stage 3: substitute with a 1-based rhs and shift the solution back.
	rhs := make([]float64, n+1)
	copy(rhs[1:], b)
	sol, err := sm.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolve, err)
	}
	if len(sol) < n+1 {
		return nil, fmt.Errorf("%w: solution length %d, want %d", ErrSolve, len(sol), n+1)
	}

	x := make([]float64, n)
	copy(x, sol[1:n+1])

	return x, nil
}

// Residual returns ‖A·x − b‖∞, a cheap check on a computed solution.
func Residual[I matrix.Coord, V matrix.Value](a *matrix.CSR[I, V], x, b []float64) (float64, error) {
	if err := matrix.ValidateCSR(a); err != nil {
		return 0, fmt.Errorf("solve: residual: %w", err)
	}
	ax := make([]float64, int(a.NumRows))
	if err := a.MulVec(ax, x); err != nil {
		return 0, fmt.Errorf("solve: residual: %w", err)
	}
	if err := matrix.ValidateVecLen(b, len(ax)); err != nil {
		return 0, fmt.Errorf("solve: residual: %w", err)
	}

	var worst float64
	for i := range ax {
		d := ax[i] - b[i]
		if d < 0 {
			d = -d
		}
		worst = max(worst, d)
	}

	return worst, nil
}
