// Command hmatrix computes a pairwise string-similarity/distance
// matrix over a line-oriented corpus and writes it in a chosen output
// format. It is a thin demonstration harness over the core packages
// (strval, xhash, measure, matrix, compute), kept deliberately outside
// the core packages' own test surface.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hmatrix/cmd/hmatrix/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
