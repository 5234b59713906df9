package compute

import (
	"runtime"
	"time"
)

// OnProgressFunc is called with the number of completed and total
// cells, throttled so it fires no more than once per ~100ms AND no
// more than once per ~1% of total work.
type OnProgressFunc func(done, total uint64)

// OnLogFunc is called with the number of completed/total cells and
// the elapsed time since Fill started, throttled to at most once per
// 60 seconds.
type OnLogFunc func(done, total uint64, elapsed time.Duration)

// Option configures a Fill invocation.
type Option func(*options)

type options struct {
	workers    int
	onProgress OnProgressFunc
	onLog      OnLogFunc
}

// WithWorkers bounds the number of concurrent measure evaluations.
// n <= 0 means "sequential fallback".
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithProgress installs a progress-bar consumer of the shared
// completed-cell counter.
func WithProgress(f OnProgressFunc) Option {
	return func(o *options) { o.onProgress = f }
}

// WithLog installs a structured-log consumer of the shared
// completed-cell counter.
func WithLog(f OnLogFunc) Option {
	return func(o *options) { o.onLog = f }
}

func gatherOptions(opts ...Option) options {
	o := options{workers: runtime.GOMAXPROCS(0)} // parallel-across-cells is the preferred model
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1 // sequential fallback, identical observable results
	}
	return o
}
