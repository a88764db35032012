// SPDX-License-Identifier: MIT

// Command mtx inspects, dumps, plots and solves MatrixMarket coordinate files.
package main

import (
	"os"

	"github.com/katalvlaran/matrixmarket/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
