package measure

import "github.com/katalvlaran/hmatrix/strval"

func init() {
	Register("bag-distance", func() Measure { return &BagDistance{} })
}

// BagDistance is the multiset symmetric-difference distance: a cheap,
// easily-computed lower bound on unit-cost edit distance. It is the max of
// |bag(a) - bag(b)| and |bag(b) - bag(a)|, where bag subtraction
// removes one matching element per occurrence (unlike MatchTriple's
// set semantics, BagDistance is multiset-aware).
type BagDistance struct {
	normalize string
}

func (m *BagDistance) Configure(cfg Config) error {
	m.normalize = cfg.String("normalize", "none")
	return nil
}

func (m *BagDistance) Compare(a, b *strval.Value) float32 {
	ea, eb := elements(a), elements(b)
	ca := bagCounts(ea)
	cb := bagCounts(eb)

	var onlyA, onlyB int
	for e, n := range ca {
		if d := n - cb[e]; d > 0 {
			onlyA += d
		}
	}
	for e, n := range cb {
		if d := n - ca[e]; d > 0 {
			onlyB += d
		}
	}

	dist := float64(onlyA)
	if onlyB > onlyA {
		dist = float64(onlyB)
	}

	if m.normalize == "maxlen" {
		maxLen := len(ea)
		if len(eb) > maxLen {
			maxLen = len(eb)
		}
		if maxLen > 0 {
			dist /= float64(maxLen)
		}
	}

	return float32(dist)
}

func bagCounts(elems []uint64) map[uint64]int {
	counts := make(map[uint64]int, len(elems))
	for _, e := range elems {
		counts[e]++
	}
	return counts
}
