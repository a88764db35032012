// SPDX-License-Identifier: MIT
package spy_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/matrixmarket/matrix"
	"github.com/katalvlaran/matrixmarket/mtx"
	"github.com/katalvlaran/matrixmarket/spy"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

const doc = `%%MatrixMarket matrix coordinate pattern general
3 4 3
1 1
3 2
3 4
`

func decode(t *testing.T) *matrix.CSR[int, float64] {
	t.Helper()
	m, err := mtx.DecodeCSR[int, float64](strings.NewReader(doc))
	require.NoError(t, err)
	return m
}

func TestPoints(t *testing.T) {
	t.Parallel()

	pts := spy.Points(decode(t))
	require.Equal(t, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: -2}, {X: 3, Y: -2}}, pts)
}

func TestPlot(t *testing.T) {
	t.Parallel()

	p, err := spy.Plot(decode(t))
	require.NoError(t, err)
	require.Equal(t, "3×4, nnz=3", p.Title.Text)
	require.Equal(t, -0.5, p.X.Min)
	require.Equal(t, 3.5, p.X.Max)
	require.Equal(t, -2.5, p.Y.Min)
	require.Equal(t, 0.5, p.Y.Max)

	p, err = spy.Plot(decode(t), spy.WithTitle("west0067"), spy.WithMarkerRadius(2))
	require.NoError(t, err)
	require.Equal(t, "west0067", p.Title.Text)
}

func TestPlot_Invalid(t *testing.T) {
	t.Parallel()

	var nilCSR *matrix.CSR[int, float64]
	_, err := spy.Plot(nilCSR)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Panics(t, func() { spy.WithMarkerRadius(0) })
}

func TestRowTickLabels(t *testing.T) {
	t.Parallel()

	p, err := spy.Plot(decode(t))
	require.NoError(t, err)
	for _, tk := range p.Y.Tick.Marker.Ticks(-10, 0) {
		require.NotContains(t, tk.Label, "-")
	}
}

func TestSave(t *testing.T) {
	t.Parallel()

	p, err := spy.Plot(decode(t))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, spy.Save(p, path, 2, 2))
		st, err := os.Stat(path)
		require.NoError(t, err)
		require.Positive(t, st.Size())
	}

	require.ErrorIs(t, spy.Save(p, filepath.Join(dir, "out.txt"), 2, 2), spy.ErrUnsupportedFormat)
	require.ErrorIs(t, spy.Save(p, filepath.Join(dir, "out.png"), 0, 2), spy.ErrBadSize)
}

func TestPlot_Empty(t *testing.T) {
	t.Parallel()

	m, err := mtx.DecodeCSR[int, float64](strings.NewReader("%%MatrixMarket matrix coordinate real general\n2 2 0\n"))
	require.NoError(t, err)
	p, err := spy.Plot(m)
	require.NoError(t, err)
	require.NoError(t, spy.Save(p, filepath.Join(t.TempDir(), "empty.png"), 1, 1))
}
