// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixmarket/mtx"
)

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the header and storage statistics of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, entries, err := mtx.ReadCOO[int, float64](args[0], a.readOptions()...)
			if err != nil {
				return err
			}
			emptyRows, emptyCols := emptyLines(h, entries)

			printf(cmd, "format: %s\n", h.Format)
			printf(cmd, "symmetry: %s\n", h.Symmetry)
			printf(cmd, "rows: %d\n", h.NumRows)
			printf(cmd, "cols: %d\n", h.NumCols)
			printf(cmd, "declared nonzeros: %d\n", h.NumNonzeros)
			printf(cmd, "stored nonzeros: %d\n", len(entries))
			printf(cmd, "empty rows: %d\n", emptyRows)
			printf(cmd, "empty cols: %d\n", emptyCols)

			return nil
		},
	}
}

// emptyLines counts the rows and columns of h that hold no stored entry.
func emptyLines(h mtx.Header[int], entries []mtx.Nonzero[int, float64]) (rows, cols int) {
	usedRow := make([]bool, h.NumRows)
	usedCol := make([]bool, h.NumCols)
	for _, nz := range entries {
		usedRow[nz.Row] = true
		usedCol[nz.Col] = true
	}

	return countFalse(usedRow), countFalse(usedCol)
}

func countFalse(used []bool) int {
	var n int
	for _, u := range used {
		if !u {
			n++
		}
	}

	return n
}
