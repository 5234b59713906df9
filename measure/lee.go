package measure

import (
	"math"

	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	Register("lee", func() Measure { return &Lee{} })
}

// Lee computes the Lee distance over a fixed alphabet size q
// (Config "alphabet_size", default 256): per-position cost is
// min(|x-y|, q-|x-y|), the circular distance on Z/qZ. Elements are
// taken mod q. As with Hamming, unequal-length inputs are handled by
// charging the maximum possible per-position cost (q/2) for every
// position beyond the shorter sequence, rather than erroring.
type Lee struct {
	alphabetSize uint64
	normalize    string
}

func (m *Lee) Configure(cfg Config) error {
	m.alphabetSize = uint64(cfg.Int("alphabet_size", 256))
	if m.alphabetSize == 0 {
		m.alphabetSize = 256
	}
	m.normalize = cfg.String("normalize", "none")
	return nil
}

func (m *Lee) Compare(a, b *strval.Value) float32 {
	ea, eb := elements(a), elements(b)
	q := m.alphabetSize
	maxPerPos := float64(q / 2)

	minLen := len(ea)
	if len(eb) < minLen {
		minLen = len(eb)
	}

	var dist float64
	for i := 0; i < minLen; i++ {
		x, y := ea[i]%q, eb[i]%q
		d := int64(x) - int64(y)
		if d < 0 {
			d = -d
		}
		circ := math.Min(float64(d), float64(q)-float64(d))
		dist += circ
	}
	dist += float64(abs(len(ea)-len(eb))) * maxPerPos

	if m.normalize == "maxlen" {
		maxLen := math.Max(float64(len(ea)), float64(len(eb)))
		if maxLen > 0 {
			dist /= maxLen * maxPerPos
		}
	}

	return float32(dist)
}
