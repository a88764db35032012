// SPDX-License-Identifier: MIT

package spy

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixmarket/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// formats lists the extensions Save hands to plot.Save.
var formats = map[string]bool{
	".png": true, ".svg": true, ".pdf": true, ".eps": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
}

// Points returns the stored positions of m as (col, -row) pairs, in storage order.
// Duplicates yield repeated points.
func Points[I matrix.Coord, V matrix.Value](m *matrix.CSR[I, V]) plotter.XYs {
	pts := make(plotter.XYs, 0, int(m.NumNonzeros))
	for i := 0; i < int(m.NumRows); i++ {
		for k := int(m.RowOffsets[i]); k < int(m.RowOffsets[i+1]); k++ {
			pts = append(pts, plotter.XY{X: float64(m.ColIndices[k]), Y: -float64(i)})
		}
	}

	return pts
}

// Plot builds a sparsity plot of m. The matrix is validated first; structural
// errors from matrix.ValidateCSR are returned wrapped.
func Plot[I matrix.Coord, V matrix.Value](m *matrix.CSR[I, V], opts ...Option) (*plot.Plot, error) {
	if err := matrix.ValidateCSR(m); err != nil {
		return nil, fmt.Errorf("spy: %w", err)
	}
	o := gatherOptions(opts...)
	rows, cols := m.Dims()

	p := plot.New()
	p.Title.Text = o.title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("%d×%d, nnz=%d", rows, cols, int(m.NumNonzeros))
	}
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Y.Tick.Marker = rowTicker{}

	if m.NumNonzeros > 0 {
		sc, err := plotter.NewScatter(Points(m))
		if err != nil {
			return nil, fmt.Errorf("spy: scatter: %w", err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = o.radius
		p.Add(sc)
	}

	// Fixed ranges so empty rows/cols at the edges stay visible.
	p.X.Min, p.X.Max = -0.5, float64(max(cols, 1))-0.5
	p.Y.Min, p.Y.Max = -float64(max(rows, 1))+0.5, 0.5

	return p, nil
}

// Save writes p to path; the format follows the file extension.
// w and h are in inches.
func Save(p *plot.Plot, path string, w, h float64) error {
	if w <= 0 || h <= 0 {
		return ErrBadSize
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !formats[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path); err != nil {
		return fmt.Errorf("spy: save %s: %w", path, err)
	}

	return nil
}

// rowTicker labels the negated Y axis with non-negative row numbers.
type rowTicker struct{}

// Ticks implements plot.Ticker.
func (rowTicker) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		row := -ticks[i].Value
		if row == 0 {
			row = 0 // drop the sign of -0
		}
		ticks[i].Label = strconv.FormatFloat(row, 'g', -1, 64)
	}

	return ticks
}
