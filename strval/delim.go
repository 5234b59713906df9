package strval

import (
	"strconv"

	"github.com/katalvlaran/hmatrix/xhash"
)

// hashSeed is the fixed symbolization seed required:
// "hashed by the 64-bit hash with seed 0xc0ffee".
const hashSeed uint64 = 0xc0ffee

// DelimTable is the process-wide delimiter table. Its zero value is the
// "uninitialized" sentinel: no symbolization occurs until Configure is
// called with a (possibly empty) specification.
//
// DelimTable is read-only once configured; Configure must happen-before
// the first Tokenize call. It carries no internal locking of its own —
// callers that configure it concurrently with compute must synchronize
// externally; this is a "set once before use" contract, documented
// rather than enforced.
type DelimTable struct {
	marks       [256]bool
	initialized bool
	first       byte // lowest byte index marked as delimiter, once any is set
}

// Uninitialized reports whether the table has never been Configure'd.
func (d *DelimTable) Uninitialized() bool {
	return d == nil || !d.initialized
}

// Configure parses spec, a sequence of literal bytes and %HH two-hex
// escapes, and marks each decoded byte as a delimiter.
//
// An empty spec resets the table to the uninitialized sentinel (no
// symbolization will occur). A malformed trailing escape — a '%' with
// fewer than two following hex digits — is silently truncated rather
// than treated as an error.
func (d *DelimTable) Configure(spec string) {
	var marks [256]bool
	var any bool

	for i := 0; i < len(spec); i++ {
		c := spec[i]
		if c == '%' {
			if i+3 <= len(spec) {
				if b, ok := decodeHex(spec[i+1 : i+3]); ok {
					marks[b] = true
					any = true
					i += 2
					continue
				}
			}
			// Malformed trailing escape: fewer than two hex digits
			// remain, or they aren't valid hex. Silently truncate.
			break
		}
		marks[c] = true
		any = true
	}

	if !any {
		*d = DelimTable{}
		return
	}

	d.marks = marks
	d.initialized = true
	d.first = firstMarked(marks)
}

// decodeHex parses exactly two hex digits into a byte.
func decodeHex(s string) (byte, bool) {
	if len(s) != 2 {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(n), true
}

// firstMarked returns the lowest byte value marked as a delimiter.
func firstMarked(marks [256]bool) byte {
	for b := 0; b < 256; b++ {
		if marks[b] {
			return byte(b)
		}
	}
	return 0
}

// IsDelim reports whether b is marked as a delimiter.
func (d *DelimTable) IsDelim(b byte) bool {
	return d.initialized && d.marks[b]
}

// Tokenize splits data at every run of delimiter bytes in a single
// pass (the same spans that canonicalizing each run to the table's
// first delimiter byte and splitting on it would give), hashes each
// non-empty span with the fixed seed, and returns the resulting token
// ids.
//
// An input of length L yields at most L/2+1 tokens; Tokenize allocates
// that capacity up front, and the returned slice's length is the
// number of tokens found.
func (d *DelimTable) Tokenize(data []byte) []uint64 {
	if !d.initialized {
		return nil
	}

	maxToks := len(data)/2 + 1
	toks := make([]uint64, 0, maxToks)

	start := -1
	flush := func(end int) {
		if start < 0 || end <= start {
			return
		}
		toks = append(toks, xhash.Hash64Seeded(data[start:end], hashSeed))
	}

	for i := 0; i < len(data); i++ {
		if d.marks[data[i]] {
			flush(i)
			start = -1
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(data))

	return toks
}
