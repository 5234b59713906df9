package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/hmatrix/compute"
	hconfig "github.com/katalvlaran/hmatrix/config"
	"github.com/katalvlaran/hmatrix/ioformat"
	"github.com/katalvlaran/hmatrix/matrix"
	"github.com/katalvlaran/hmatrix/measure"
	"github.com/katalvlaran/hmatrix/reporting"
	"github.com/katalvlaran/hmatrix/strval"
	"github.com/spf13/cobra"
)

func runFill(cmd *cobra.Command, _ []string) error {
	log := newLogger()

	in, closeIn, err := openInput(v.GetString("input"))
	if err != nil {
		return err
	}
	defer closeIn()

	var delim strval.DelimTable
	delim.Configure(v.GetString("delim"))

	strs, err := ioformat.ReadCorpus(in, &delim)
	if err != nil {
		return err
	}
	num := len(strs)
	if num == 0 {
		return fmt.Errorf("hmatrix: empty corpus from --input=%q", v.GetString("input"))
	}

	cfg := measure.Config{}
	if path := v.GetString("config"); path != "" {
		loaded, err := hconfig.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	measureName := v.GetString("measure")
	meas, ok := measure.Lookup(measureName)
	if !ok {
		log.Warn().Str("measure", measureName).Msg("unknown measure, falling back to levenshtein")
		meas, _ = measure.Lookup("levenshtein")
	}
	if err := meas.Configure(cfg); err != nil {
		return fmt.Errorf("hmatrix: configuring %q: %w", measureName, err)
	}

	labels := make([]float64, num)
	srcs := make([]*string, num)
	for i, s := range strs {
		labels[i] = s.Label
		srcs[i] = s.Src
	}

	var opts []matrix.Option
	xr, yr, err := resolveRanges(num)
	if err != nil {
		log.Warn().Err(err).Msg("bad --range/--yrange, using full range")
	} else {
		opts = append(opts, matrix.WithRanges(xr, yr))
	}

	m, err := matrix.New(num, labels, srcs, opts...)
	if err != nil {
		return err
	}

	if split := v.GetString("split"); split != "" {
		_, y, _ := m.ActiveRanges()
		sy, err := matrix.ParseSplit(split, y)
		if err != nil {
			return err // split errors are fatal
		}
		x, _, _ := m.ActiveRanges()
		m.SetRanges(x, sy)
	}

	if err := m.Alloc(); err != nil {
		return err
	}

	var fillOpts []compute.Option
	if w := v.GetInt("workers"); w > 0 {
		fillOpts = append(fillOpts, compute.WithWorkers(w))
	}
	if v.GetBool("progress") {
		_, _, size := m.Dims()
		fillOpts = append(fillOpts, compute.WithProgress(reporting.Bar(uint64(size))))
	}
	fillOpts = append(fillOpts, compute.WithLog(reporting.Logger(log)))

	if err := compute.Fill(m, strs, meas.Compare, fillOpts...); err != nil {
		return err
	}

	out, closeOut, err := openOutput(v.GetString("output"))
	if err != nil {
		return err
	}
	defer closeOut()

	switch v.GetString("format") {
	case "libsvm":
		return ioformat.WriteLibSVM(out, m)
	default:
		return ioformat.WritePlain(out, m)
	}
}

func resolveRanges(num int) (x, y matrix.Range, err error) {
	x = matrix.Range{I: 0, N: num}
	y = x

	if spec := v.GetString("range"); spec != "" {
		r, err := matrix.ParseRange(spec, num)
		if err != nil {
			return x, y, err
		}
		x, y = r, r
	}
	if spec := v.GetString("yrange"); spec != "" {
		r, err := matrix.ParseRange(spec, num)
		if err != nil {
			return x, y, err
		}
		y = r
	}

	return x, y, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("hmatrix: --input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("hmatrix: --output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
