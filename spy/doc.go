// SPDX-License-Identifier: MIT

// Package spy renders the sparsity pattern of a compressed matrix with
// gonum.org/v1/plot: one marker per stored entry, column on X, row on Y with
// row 0 at the top (the usual "spy" orientation).
package spy
