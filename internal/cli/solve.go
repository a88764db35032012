// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixmarket/solve"
)

func solveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve A·x = 1 for a square matrix and print 'i x_i' (0-indexed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.readCSR(args[0])
			if err != nil {
				return err
			}

			b := make([]float64, m.NumRows)
			for i := range b {
				b[i] = 1
			}
			x, err := solve.Solve(m, b)
			if err != nil {
				return err
			}
			if res, rerr := solve.Residual(m, x, b); rerr == nil {
				a.log.Debug("solve.residual", "max_abs", res)
			}

			for i, v := range x {
				printf(cmd, "%d %v\n", i, v)
			}

			return nil
		},
	}
}
