package measure

import (
	"math"

	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	Register("hamming", func() Measure { return &Hamming{} })
}

// Hamming counts mismatched positions over the shared prefix of a and
// b. Unequal-length inputs are not an error (see DESIGN.md): each
// length position beyond the shorter sequence counts as an additional
// mismatch, so Hamming degrades gracefully to a distance rather than
// requiring callers to pre-pad their strings.
type Hamming struct {
	normalize string
}

func (m *Hamming) Configure(cfg Config) error {
	m.normalize = cfg.String("normalize", "none")
	return nil
}

func (m *Hamming) Compare(a, b *strval.Value) float32 {
	ea, eb := elements(a), elements(b)
	minLen := len(ea)
	if len(eb) < minLen {
		minLen = len(eb)
	}

	mismatches := 0
	for i := 0; i < minLen; i++ {
		if ea[i] != eb[i] {
			mismatches++
		}
	}
	mismatches += abs(len(ea) - len(eb))

	dist := float64(mismatches)
	if m.normalize == "maxlen" {
		maxLen := math.Max(float64(len(ea)), float64(len(eb)))
		if maxLen > 0 {
			dist /= maxLen
		}
	}

	return float32(dist)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
