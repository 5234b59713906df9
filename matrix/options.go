// SPDX-License-Identifier: MIT
// Package matrix: functional configuration for Matrix construction.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: no panics; New reports a non-positive N as an error.
//   - Reusability: Options fields are unexported; New accepts ...Option.
package matrix

// Option mutates internal construction options.
type Option func(*options)

type options struct {
	x, y *Range // nil means "default to the full [0,num) range"
}

// WithRanges pins the initial active sub-rectangle at construction
// time instead of defaulting to the full (0, num) square. Equivalent
// to calling SetRanges immediately after New.
func WithRanges(x, y Range) Option {
	return func(o *options) {
		xc, yc := x, y
		o.x, o.y = &xc, &yc
	}
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
