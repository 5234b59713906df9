// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every error returned across this package's public surface is one of
// these sentinels (or wraps one with fmt.Errorf("%w", ...) at a call
// boundary); tests and callers compare with errors.Is.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive collection size N,
	// or a range/split request that could not be normalized.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside the active
	// sub-rectangle on Get/Set.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNotAllocated indicates Get/Set/Fill was attempted before Alloc.
	ErrNotAllocated = errors.New("matrix: values not allocated")

	// ErrAsymmetricTriangular indicates a triangular matrix was
	// requested with x != y; the design only supports x == y
	// triangular matrices.
	ErrAsymmetricTriangular = errors.New("matrix: triangular matrix requires x == y")

	// ErrBadRangeSpec indicates a malformed "a:b" range specification.
	ErrBadRangeSpec = errors.New("matrix: malformed range specification")

	// ErrBadSplitSpec indicates a malformed or out-of-bounds "B:k"
	// split specification; split errors are always fatal.
	ErrBadSplitSpec = errors.New("matrix: invalid split specification")
)
