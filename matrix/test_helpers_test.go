// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for compressed-matrix tests.

package matrix_test

import "github.com/katalvlaran/matrixmarket/matrix"

// sampleCSR BUILDS the 3×4 fixture
//
//	[ 4  0  0  2 ]
//	[ 0  0  0  0 ]
//	[ 0 -1  0  2+3 ]
//
// with an empty middle row and a duplicated (2,3) entry stored twice.
func sampleCSR() *matrix.CSR[int, float64] {
	return &matrix.CSR[int, float64]{
		NumRows:     3,
		NumCols:     4,
		NumNonzeros: 5,
		RowOffsets:  []int{0, 2, 2, 5},
		ColIndices:  []int{0, 3, 1, 3, 3},
		Values:      []float64{4, 2, -1, 2, 3},
	}
}
