// Package matrixmarket reads MatrixMarket coordinate files into compressed
// sparse matrices, from the banner line down to CSR/CSC offsets.
//
// What is in the module?
//
//	A small generic toolkit around one file format:
//		• mtx/    : header parsing, coordinate ingestion, CSR/CSC conversion
//		• matrix/ : CSR/CSC types, validators, gonum mat.Matrix interop
//		• solve/  : sparse LU solve of square CSR systems
//		• spy/    : sparsity-pattern plots with gonum/plot
//		• cmd/mtx : dump, info, spy and solve from the command line
//
// Every reader is generic over the coordinate type I (any integer kind) and the
// value type V (integers or floats), so a 2³¹-entry file can be read into
// int64 offsets while a small one fits uint16.
//
// Quick example, a 3×3 symmetric file:
//
//	%%MatrixMarket matrix coordinate real symmetric
//	3 3 2
//	1 1 4.5
//	3 1 2
//
//	m, err := mtx.DecodeCSR[int, float64](r)
//	// m.RowOffsets = [0 2 2 3], m.ColIndices = [0 2 0], m.Values = [4.5 2 2]
//
//	go install github.com/katalvlaran/matrixmarket/cmd/mtx@latest
package matrixmarket
