// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixmarket/internal/config"
	"github.com/katalvlaran/matrixmarket/mtx"
)

func dumpCmd(a *app) *cobra.Command {
	var layout string

	c := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every stored entry as 'i j value' (0-indexed) in layout order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("layout") {
				layout = a.cfg.Layout
			}

			switch layout {
			case config.LayoutCSR:
				m, err := a.readCSR(args[0])
				if err != nil {
					return err
				}
				for i := 0; i < m.NumRows; i++ {
					for k := m.RowOffsets[i]; k < m.RowOffsets[i+1]; k++ {
						printf(cmd, "%d %d %v\n", i, m.ColIndices[k], m.Values[k])
					}
				}
			case config.LayoutCSC:
				m, err := mtx.ReadCSC[int, float64](args[0], a.readOptions()...)
				if err != nil {
					return err
				}
				for j := 0; j < m.NumCols; j++ {
					for k := m.ColOffsets[j]; k < m.ColOffsets[j+1]; k++ {
						printf(cmd, "%d %d %v\n", m.RowIndices[k], j, m.Values[k])
					}
				}
			default:
				return fmt.Errorf("unknown layout %q, want %q or %q", layout, config.LayoutCSR, config.LayoutCSC)
			}

			return nil
		},
	}

	c.Flags().StringVarP(&layout, "layout", "l", config.LayoutCSR, "compressed layout: csr or csc")
	return c
}
