// Package cli wires the hmatrix command-line surface: cobra for
// command structure, pflag-backed flags bound through viper, and the
// core pipeline (config.Load -> measure.Lookup -> strval symbolization
// -> matrix.ParseRange/ParseSplit -> matrix.Alloc -> compute.Fill ->
// ioformat.Write*) driving reporting.Bar/reporting.Logger as the
// compute progress/log hooks.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var v = viper.New()

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hmatrix",
		Short: "Compute a pairwise string-similarity/distance matrix",
		RunE:  runFill,
	}

	flags := cmd.Flags()
	flags.String("input", "-", "corpus file ('-' for stdin): label[\\tsrc]\\tdata per line")
	flags.String("config", "", "measure config file (yaml/json/toml/ini), see config.Load")
	flags.String("measure", "levenshtein", "registered measure name, see measure.Names")
	flags.String("delim", "", "delimiter spec (literal bytes and %HH escapes); empty means byte-wise")
	flags.String("range", "", "x/y range spec \"a:b\"; applied to both axes unless --yrange is set")
	flags.String("yrange", "", "y-only range spec, overrides --range for the y axis")
	flags.String("split", "", "shard spec \"B:k\" applied to the y range after ranging")
	flags.Int("workers", 0, "worker count for compute.Fill; 0 means GOMAXPROCS")
	flags.String("output", "-", "output file ('-' for stdout)")
	flags.String("format", "plain", "output format: plain or libsvm")
	flags.Bool("progress", true, "render a terminal progress bar while filling")

	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("cli: BindPFlags: %v", err))
	}
	v.AutomaticEnv()

	return cmd
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
