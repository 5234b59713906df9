package measure

import (
	"math"
	"sort"

	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	Register("ngram-kernel", func() Measure { return &NGramKernel{} })
}

// NGramKernel is a normalized overlap kernel over sliding windows of
// Config "ngram_len" elements:
//
//	K(a,b) = sum over shared n-grams of count_a(g) * count_b(g)
//	sim    = K(a,b) / sqrt(K(a,a) * K(b,b))
//
// Compare canonicalizes argument order and sums contributions in
// ascending n-gram-key order, so floating-point summation order can
// never make Compare(a,b) != Compare(b,a) — Go map iteration order is
// unspecified, so summing directly over a map would not be bit-stable.
type NGramKernel struct {
	n int
}

func (m *NGramKernel) Configure(cfg Config) error {
	m.n = cfg.Int("ngram_len", 3)
	if m.n < 1 {
		m.n = 1
	}
	return nil
}

func (m *NGramKernel) Compare(a, b *strval.Value) float32 {
	x, y := canonical(a, b)
	ca := ngramCounts(elements(x), m.n)
	cb := ngramCounts(elements(y), m.n)

	cross := ngramDot(ca, cb)
	selfA := ngramDot(ca, ca)
	selfB := ngramDot(cb, cb)

	denom := math.Sqrt(selfA * selfB)
	if denom == 0 {
		return 1 // both sides have no n-grams: defined as identical
	}

	return float32(cross / denom)
}

// ngramKey folds an n-gram's element ids into a single uint64 key via
// a simple polynomial rolling hash.
func ngramKey(window []uint64) uint64 {
	var key uint64
	for _, e := range window {
		key = key*1099511628211 + e // FNV-1a-style prime multiplier
	}
	return key
}

func ngramCounts(elems []uint64, n int) map[uint64]int {
	counts := make(map[uint64]int)
	if len(elems) < n {
		return counts
	}
	for i := 0; i+n <= len(elems); i++ {
		counts[ngramKey(elems[i:i+n])]++
	}
	return counts
}

// ngramDot computes sum_g ca[g]*cb[g] over the keys of ca that also
// occur in cb, sorted ascending, so the summation order is fixed regardless of Go's
// unspecified map-iteration order.
func ngramDot(ca, cb map[uint64]int) float64 {
	keys := make([]uint64, 0, len(ca))
	for g := range ca {
		if cb[g] != 0 {
			keys = append(keys, g)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var sum float64
	for _, g := range keys {
		sum += float64(ca[g]) * float64(cb[g])
	}

	return sum
}
