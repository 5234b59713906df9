package reporting

import (
	"github.com/katalvlaran/hmatrix/compute"
	"github.com/schollz/progressbar/v3"
)

// Bar returns a compute.OnProgressFunc backed by a terminal progress
// bar sized to total. compute calls it already throttled to its own
// ~100ms/~1%-of-work contract, so Bar itself does no further
// throttling — it only renders whatever it is handed.
func Bar(total uint64) compute.OnProgressFunc {
	bar := progressbar.NewOptions64(int64(total),
		progressbar.OptionSetDescription("filling matrix"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWidth(40),
	)

	return func(done, _ uint64) {
		_ = bar.Set64(int64(done))
	}
}
