// SPDX-License-Identifier: MIT

package mtx

// Test bridge (white-box) for private helpers.
// Compiled only with the package tests; exposes the tokenizer cursor and the
// compression kernel to mtx_test without widening the production API.

// TokenCursor wraps the private tokens cursor.
type TokenCursor struct{ t tokens }

// Tokenize exposes tokenize.
func Tokenize(line string, sep byte) *TokenCursor {
	return &TokenCursor{t: tokenize(line, sep)}
}

// Remaining exposes tokens.remaining.
func (c *TokenCursor) Remaining() int { return c.t.remaining() }

// Next exposes tokens.next.
func (c *TokenCursor) Next() string { return c.t.next() }

// Peek exposes tokens.peek.
func (c *TokenCursor) Peek() string { return c.t.peek() }

// CompressRows exposes compress along rows (CSR).
func CompressRows(entries []Nonzero[int, float64], rows int) ([]int, []int, []float64) {
	return compress(entries, byRow, rows)
}

// CompressCols exposes compress along columns (CSC).
func CompressCols(entries []Nonzero[int, float64], cols int) ([]int, []int, []float64) {
	return compress(entries, byCol, cols)
}
