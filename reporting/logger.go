package reporting

import (
	"time"

	"github.com/katalvlaran/hmatrix/compute"
	"github.com/rs/zerolog"
)

// Logger returns a compute.OnLogFunc that emits one structured Info
// line per invocation via l. compute already throttles calls to at
// most once per 60 seconds, so Logger never rate-limits on its own.
func Logger(l zerolog.Logger) compute.OnLogFunc {
	return func(done, total uint64, elapsed time.Duration) {
		l.Info().
			Uint64("done", done).
			Uint64("total", total).
			Dur("elapsed", elapsed).
			Msg("matrix fill progress")
	}
}
