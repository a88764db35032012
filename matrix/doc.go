// Package matrix provides compressed sparse matrix containers and helpers.
//
// The matrix package provides:
//
//   - CSR and CSC, generic over the coordinate type and the value type, as
//     produced by the mtx reader.
//   - Structural validators (ValidateCSR, ValidateCSC) that check the offset
//     and ordering invariants in O(nnz).
//   - Layout switches (CSR.ToCSC, CSC.ToCSR) by counting sort.
//   - gonum interop: both types satisfy mat.Matrix and can be copied into a
//     *mat.Dense with ToDense.
//   - Sparse matrix-vector products (MulVec).
//
// Duplicate coordinates are stored as separate entries; every numeric view
// (At, ToDense, MulVec) treats them as summed.
package matrix
