package compute

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/hmatrix/matrix"
	"github.com/katalvlaran/hmatrix/strval"
	"golang.org/x/sync/errgroup"
)

// Sentinel errors for the compute package.
var errNotAllocated = fmt.Errorf("compute: %w", matrix.ErrNotAllocated)

// CompareFunc is a measure's pure, thread-safe comparison over two
// string values. Every cell of the active
// sub-rectangle invokes it at most once.
type CompareFunc func(a, b *strval.Value) float32

const (
	progressInterval = 100 * time.Millisecond
	progressStep     = 0.01 // ~1% of total work
	logInterval      = 60 * time.Second
)

// cell is one (X, Y) coordinate pair in the active sub-rectangle.
type cell struct{ X, Y int }

// Fill populates every cell of m's active sub-rectangle by invoking f
// over the corresponding pair of strs.
//
// When m is triangular, cells with Y > X are skipped — their value is
// defined by symmetry and recovered through Get. Distinct (X, Y) pairs
// map to distinct storage indices in both layouts, so concurrent
// workers never contend on the same cell; Fill is safe to run with
// WithWorkers greater than 1.
//
// f must be pure and thread-safe; a result of NaN or ±Inf is accepted
// verbatim and never retried. Fill
// returns an error only if m was not yet Alloc'd.
func Fill(m *matrix.Matrix, strs []*strval.Value, f CompareFunc, opts ...Option) error {
	if !m.Allocated() {
		return errNotAllocated
	}

	o := gatherOptions(opts...)
	cells := activeCells(m)
	total := uint64(len(cells))

	var done uint64
	start := time.Now()
	progress := newThrottle(progressInterval, total)
	logs := newThrottle(logInterval, total)
	var reportMu sync.Mutex

	report := func() {
		d := atomic.LoadUint64(&done)
		reportMu.Lock()
		defer reportMu.Unlock()
		if o.onProgress != nil && progress.allow(d) {
			o.onProgress(d, total)
		}
		if o.onLog != nil && logs.allowTimeOnly() {
			o.onLog(d, total, time.Since(start))
		}
	}

	var g errgroup.Group
	g.SetLimit(o.workers)

	for _, c := range cells {
		c := c
		g.Go(func() error {
			v := f(strs[c.X], strs[c.Y])
			// Distinct (X,Y) map to distinct indices in both layouts,
			// so Set never races across workers.
			if err := m.Set(c.X, c.Y, v); err != nil {
				return err
			}
			atomic.AddUint64(&done, 1)
			report()

			return nil
		})
	}

	return g.Wait()
}

// activeCells enumerates the active sub-rectangle's cells, already
// filtered to the lower triangle (including the diagonal) when m is
// triangular.
func activeCells(m *matrix.Matrix) []cell {
	x, y, triangular := m.ActiveRanges()

	cells := make([]cell, 0, x.Len()*y.Len())
	for X := x.I; X < x.N; X++ {
		for Y := y.I; Y < y.N; Y++ {
			if triangular && Y > X {
				continue
			}
			cells = append(cells, cell{X: X, Y: Y})
		}
	}

	return cells
}

// throttle enforces the "no more often than" contracts for the two
// progress consumers: a minimum wall-clock interval, and for the
// progress-bar consumer, a minimum fraction of total work.
type throttle struct {
	interval  time.Duration
	minStep   uint64
	lastTime  time.Time
	lastCount uint64
	mu        sync.Mutex
}

func newThrottle(interval time.Duration, total uint64) *throttle {
	step := uint64(float64(total) * progressStep)
	if step < 1 {
		step = 1
	}
	return &throttle{interval: interval, minStep: step}
}

// allow reports whether both the time and work-fraction thresholds
// have elapsed since the last allowed call (progress-bar contract).
func (t *throttle) allow(done uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if !t.lastTime.IsZero() && (now.Sub(t.lastTime) < t.interval || done-t.lastCount < t.minStep) {
		return false
	}
	t.lastTime = now
	t.lastCount = done

	return true
}

// allowTimeOnly reports whether the time threshold alone has elapsed
// (the structured-log contract has no work-fraction component).
func (t *throttle) allowTimeOnly() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	if !t.lastTime.IsZero() && now.Sub(t.lastTime) < t.interval {
		return false
	}
	t.lastTime = now

	return true
}
