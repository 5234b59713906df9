package measure

import (
	"math"

	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	Register("damerau", func() Measure { return &Damerau{} })
}

// Damerau computes the restricted Damerau-Levenshtein distance:
// Levenshtein plus adjacent-transposition as a fourth operation.
// Config adds trans_cost to Levenshtein's cost matrix.
type Damerau struct {
	insCost, delCost, subCost, transCost float64
	normalize                            string
}

func (m *Damerau) Configure(cfg Config) error {
	m.insCost = cfg.Float("ins_cost", 1)
	m.delCost = cfg.Float("del_cost", 1)
	m.subCost = cfg.Float("sub_cost", 1)
	m.transCost = cfg.Float("trans_cost", 1)
	m.normalize = cfg.String("normalize", "none")
	return nil
}

func (m *Damerau) Compare(a, b *strval.Value) float32 {
	ea, eb := elements(a), elements(b)
	dist := damerauDistance(ea, eb, m.insCost, m.delCost, m.subCost, m.transCost)
	if m.normalize == "maxlen" {
		maxLen := math.Max(float64(len(ea)), float64(len(eb)))
		if maxLen > 0 {
			dist /= maxLen
		}
	}
	return float32(dist)
}

// damerauDistance keeps three rolling rows (current, previous, and
// the one before that) to support the restricted transposition check,
// in the same rolling-row idiom as levenshteinDistance.
func damerauDistance(a, b []uint64, insCost, delCost, subCost, transCost float64) float64 {
	n, m := len(a), len(b)
	if n == 0 {
		return float64(m) * insCost
	}
	if m == 0 {
		return float64(n) * delCost
	}

	rows := make([][]float64, 3)
	for i := range rows {
		rows[i] = make([]float64, m+1)
	}
	twoAgo, prev, curr := rows[0], rows[1], rows[2]

	for j := 0; j <= m; j++ {
		prev[j] = float64(j) * insCost
	}

	for i := 1; i <= n; i++ {
		curr[0] = float64(i) * delCost
		for j := 1; j <= m; j++ {
			subCostHere := subCost
			if a[i-1] == b[j-1] {
				subCostHere = 0
			}
			del := prev[j] + delCost
			ins := curr[j-1] + insCost
			sub := prev[j-1] + subCostHere
			best := math.Min(del, math.Min(ins, sub))

			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				trans := twoAgo[j-2] + transCost
				best = math.Min(best, trans)
			}
			curr[j] = best
		}
		twoAgo, prev, curr = prev, curr, twoAgo
	}

	return prev[m]
}
