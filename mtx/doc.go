// Package mtx reads MatrixMarket coordinate files into compressed sparse
// row (CSR) and compressed sparse column (CSC) matrices.
//
// Accepted input:
//
//	%%MatrixMarket matrix coordinate <real|integer|pattern> <general|symmetric>
//	% zero or more comment lines
//	<rows> <cols> <nonzeros>
//	<row> <col> [<value>]      (exactly <nonzeros> lines, 1-based)
//
// Fields are separated by a single space (see WithSeparator). Pattern files
// carry no value column and every stored value is one. Symmetric files store
// one triangle; each off-diagonal entry is mirrored on read, so the stored
// count is 2*declared - diagonal. Duplicate coordinates are kept, never summed.
//
// Every read is a single forward pass:
//
//	header → coordinates (COO) → sort → compress
//
// and is atomic: either a fully valid matrix is returned, or an error that
// matches one of the package sentinels via errors.Is and a nil matrix.
//
// Coordinates and values are type parameters; any integer type may serve as
// coordinate and any integer or float type as value. Sizes and the expanded
// entry count are checked against the coordinate type (ErrOverflow), and
// numeric tokens are parsed strictly (ErrInvalidNumber) rather than coerced.
//
// Reads share no state and may run concurrently on different inputs.
package mtx
