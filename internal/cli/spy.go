// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixmarket/spy"
)

func spyCmd(a *app) *cobra.Command {
	var (
		out           string
		title         string
		width, height float64
		marker        float64
	)

	c := &cobra.Command{
		Use:   "spy FILE",
		Short: "Write a sparsity-pattern plot (png, svg, pdf, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = a.cfg.Spy.Width
			}
			if !cmd.Flags().Changed("height") {
				height = a.cfg.Spy.Height
			}
			if !cmd.Flags().Changed("marker") {
				marker = a.cfg.Spy.Marker
			}

			m, err := a.readCSR(args[0])
			if err != nil {
				return err
			}
			if marker <= 0 {
				return fmt.Errorf("marker radius %v must be positive", marker)
			}
			p, err := spy.Plot(m, spy.WithTitle(title), spy.WithMarkerRadius(marker))
			if err != nil {
				return err
			}
			if err = spy.Save(p, out, width, height); err != nil {
				return err
			}
			a.log.Info("spy.saved", "path", out, "nnz", m.NumNonzeros)

			return nil
		},
	}

	c.Flags().StringVarP(&out, "output", "o", "spy.png", "output image; the extension selects the format")
	c.Flags().StringVar(&title, "title", "", "plot title (default: shape and nnz)")
	c.Flags().Float64Var(&width, "width", spy.DefaultSize, "image width in inches")
	c.Flags().Float64Var(&height, "height", spy.DefaultSize, "image height in inches")
	c.Flags().Float64Var(&marker, "marker", spy.DefaultMarkerRadius, "marker radius in points")
	return c
}
