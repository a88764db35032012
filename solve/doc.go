// SPDX-License-Identifier: MIT

// Package solve factors square CSR systems with a sparse LU decomposition and
// solves A·x = b.
//
// The CSR entries are loaded into a github.com/edp1096/sparse matrix, where
// duplicate entries accumulate just as they do for At/Get. Indices are
// translated between the 0-based CSR storage and the 1-based sparse package.
package solve
