// SPDX-License-Identifier: MIT

// Package cli implements the mtx command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixmarket/internal/config"
	"github.com/katalvlaran/matrixmarket/internal/logger"
	"github.com/katalvlaran/matrixmarket/matrix"
	"github.com/katalvlaran/matrixmarket/mtx"
)

// app carries state shared by all subcommands once the root pre-run has resolved it.
type app struct {
	cfgPath string
	debug   bool

	cfg config.Config
	log *slog.Logger
}

// Execute runs the command with the process arguments and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

// run executes the command tree; errors are printed in red to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logger.Discard()}

	cmd := &cobra.Command{
		Use:           "mtx",
		Short:         "mtx reads MatrixMarket coordinate files into compressed sparse matrices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = a.debug
			}
			a.cfg = cfg
			a.log = logger.New(cmd.ErrOrStderr(), cfg.Debug)
			a.log.Debug("cli.config_loaded", "path", a.cfgPath, "layout", cfg.Layout)

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log reader stages to stderr")
	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML settings file")

	cmd.AddCommand(
		dumpCmd(a),
		infoCmd(a),
		spyCmd(a),
		solveCmd(a),
	)

	return cmd
}

// readOptions maps the resolved settings onto reader options.
func (a *app) readOptions() []mtx.Option {
	return []mtx.Option{
		mtx.WithLogger(a.log),
		mtx.WithMaxLineBytes(a.cfg.MaxLineBytes),
	}
}

// readCSR reads path with the command's reader options.
func (a *app) readCSR(path string) (*matrix.CSR[int, float64], error) {
	return mtx.ReadCSR[int, float64](path, a.readOptions()...)
}

// printf writes to the command's stdout.
func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
