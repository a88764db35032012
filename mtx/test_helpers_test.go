// SPDX-License-Identifier: MIT
// Package mtx_test contains shared fixtures for the reader tests.
//
// Purpose:
//   - Small, literal MatrixMarket documents reused across tests.
//   - Deterministic generators for property tests.

package mtx_test

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Literal documents (worked scenarios and common shapes).
const (
	// docGeneralReal: 3x3, entries (1,1)=4 and (2,3)=5.
	docGeneralReal = "%%MatrixMarket matrix coordinate real general\n" +
		"3 3 2\n" +
		"1 1 4.0\n" +
		"2 3 5.0\n"

	// docSymmetric: 3x3, one off-diagonal entry mirrored.
	docSymmetric = "%%MatrixMarket matrix coordinate real symmetric\n" +
		"3 3 1\n" +
		"1 2 2.0\n"

	// docPattern: 2x2, one pattern entry.
	docPattern = "%%MatrixMarket matrix coordinate pattern general\n" +
		"2 2 1\n" +
		"1 2\n"

	// docTruncated declares two entries but provides one.
	docTruncated = "%%MatrixMarket matrix coordinate real general\n" +
		"2 2 2\n" +
		"1 1 1.0\n"

	// docWithComments has comment lines between banner and size line.
	docWithComments = "%%MatrixMarket matrix coordinate integer general\n" +
		"% generated by hand\n" +
		"%\n" +
		"%% another comment\n" +
		"2 3 3\n" +
		"2 3 7\n" +
		"1 2 -3\n" +
		"2 1 9\n"
)

// writeTemp WRITES content into a fresh file under t.TempDir and returns its path.
func writeTemp(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}

// triple is one 1-based declared entry used by generators.
type triple struct {
	row, col int
	value    float64
}

// randomDoc BUILDS a deterministic coordinate document by seed.
// For symmetric documents only the lower triangle (row >= col) is emitted.
// Duplicates may occur and are intentional.
func randomDoc(seed int64, rows, cols, nnz int, format, symmetry string) (string, []triple) {
	rng := rand.New(rand.NewSource(seed))
	var b strings.Builder
	fmt.Fprintf(&b, "%%%%MatrixMarket matrix coordinate %s %s\n", format, symmetry)
	fmt.Fprintf(&b, "%d %d %d\n", rows, cols, nnz)

	declared := make([]triple, 0, nnz)
	var k int
	for k = 0; k < nnz; k++ {
		r := rng.Intn(rows) + 1
		c := rng.Intn(cols) + 1
		if symmetry == "symmetric" && c > r {
			r, c = c, r
		}
		v := float64(rng.Intn(19) - 9)
		switch format {
		case "pattern":
			fmt.Fprintf(&b, "%d %d\n", r, c)
			v = 1
		case "integer":
			fmt.Fprintf(&b, "%d %d %d\n", r, c, int(v))
		default:
			fmt.Fprintf(&b, "%d %d %g\n", r, c, v)
		}
		declared = append(declared, triple{row: r, col: c, value: v})
	}

	return b.String(), declared
}
