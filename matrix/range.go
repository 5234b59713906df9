package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a half-open interval [I, N) of row or column indices into
// the original collection.
type Range struct {
	I, N int
}

// Len returns the number of indices covered by r.
func (r Range) Len() int {
	return r.N - r.I
}

// ParseRange parses "a:b", "a:", ":b", or ":" against a collection of
// size N. Missing a defaults to 0, missing b defaults to
// N; a negative a or b is interpreted relative to N ("N + value"),
// a "negative-from-end" convention.
//
// On success the returned error is nil. On a malformed spec or a
// result violating 0 <= a < b <= N, ParseRange returns the full range
// (0, N) together with a non-nil, non-fatal warning error — a range
// parse failure is meant to warn and reset to the full range rather
// than abort, so callers should log the error but proceed using the
// returned Range.
func ParseRange(spec string, N int) (Range, error) {
	full := Range{I: 0, N: N}
	if N <= 0 {
		return Range{}, ErrInvalidDimensions
	}

	a, b, err := parseRangeBounds(spec, N)
	if err != nil {
		return full, fmt.Errorf("matrix: ParseRange(%q): %w: %v", spec, ErrBadRangeSpec, err)
	}
	if !(0 <= a && a < b && b <= N) {
		return full, fmt.Errorf("matrix: ParseRange(%q): %w: resolved (%d,%d) against N=%d",
			spec, ErrBadRangeSpec, a, b, N)
	}

	return Range{I: a, N: b}, nil
}

// parseRangeBounds resolves the raw "a:b" textual spec into concrete
// (a, b) bounds, applying negative-from-end substitution, without
// validating the 0 <= a < b <= N invariant — that's ParseRange's job.
func parseRangeBounds(spec string, N int) (a, b int, err error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("missing ':' separator")
	}

	a = 0
	if parts[0] != "" {
		if a, err = strconv.Atoi(parts[0]); err != nil {
			return 0, 0, err
		}
		if a < 0 {
			a = N + a
		}
	}

	b = N
	if parts[1] != "" {
		if b, err = strconv.Atoi(parts[1]); err != nil {
			return 0, 0, err
		}
		if b < 0 {
			b = N + b
		}
	}

	return a, b, nil
}

// ParseSplit shards y into B equal-height blocks (the last block may
// be shorter) and narrows it to block k. Splitting is
// always applied after the caller has already narrowed y via
// ParseRange; the textual form is "B:k".
//
// Unlike ParseRange, a violated precondition here is fatal: it
// requires 1 <= B <= y.Len() and 0 <= k < B, and a violation aborts.
// Callers must treat a non-nil error as unrecoverable.
func ParseSplit(spec string, y Range) (Range, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("matrix: ParseSplit(%q): %w: missing ':' separator", spec, ErrBadSplitSpec)
	}

	blocks, err := strconv.Atoi(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("matrix: ParseSplit(%q): %w: %v", spec, ErrBadSplitSpec, err)
	}
	k, err := strconv.Atoi(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("matrix: ParseSplit(%q): %w: %v", spec, ErrBadSplitSpec, err)
	}

	height := y.Len()
	if blocks < 1 || blocks > height {
		return Range{}, fmt.Errorf("matrix: ParseSplit(%q): %w: B=%d out of [1,%d]", spec, ErrBadSplitSpec, blocks, height)
	}
	if k < 0 || k >= blocks {
		return Range{}, fmt.Errorf("matrix: ParseSplit(%q): %w: k=%d out of [0,%d)", spec, ErrBadSplitSpec, k, blocks)
	}

	blockHeight := (height + blocks - 1) / blocks // ceil(height/blocks)
	start := y.I + k*blockHeight
	end := start + blockHeight
	if end > y.N {
		end = y.N
	}

	return Range{I: start, N: end}, nil
}
