// Package matrix_test provides benchmarks for the compressed-matrix kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrixmarket/matrix"
)

// benchSizes are the square matrix sizes to benchmark; each row holds benchRowFill entries.
var benchSizes = []int{1_000, 10_000, 100_000}

const benchRowFill = 8

// sinks to defeat dead-code elimination
var (
	sinkCSC *matrix.CSC[int32, float64]
	sinkF   float64
)

// randomCSR builds an n×n CSR matrix with benchRowFill ascending columns per row.
func randomCSR(n int, seed int64) *matrix.CSR[int32, float64] {
	rng := rand.New(rand.NewSource(seed))
	offsets := make([]int32, n+1)
	cols := make([]int32, 0, n*benchRowFill)
	vals := make([]float64, 0, n*benchRowFill)

	stride := max(n/benchRowFill, 1)
	for i := 0; i < n; i++ {
		for k := 0; k < benchRowFill && k*stride < n; k++ {
			cols = append(cols, int32(k*stride+rng.Intn(stride)))
			vals = append(vals, rng.Float64())
		}
		offsets[i+1] = int32(len(cols))
	}

	return &matrix.CSR[int32, float64]{
		NumRows: int32(n), NumCols: int32(n), NumNonzeros: int32(len(cols)),
		RowOffsets: offsets, ColIndices: cols, Values: vals,
	}
}

func BenchmarkMulVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomCSR(n, 1337)
			x := make([]float64, n)
			dst := make([]float64, n)
			for i := range x {
				x[i] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := m.MulVec(dst, x); err != nil {
					b.Fatal(err)
				}
			}
			sinkF = dst[0]
		})
	}
}

func BenchmarkToCSC(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomCSR(n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkCSC = m.ToCSC()
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	m := randomCSR(10_000, 7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF += m.At(i%10_000, (i*31)%10_000)
	}
}
