package measure

import (
	"math"

	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	Register("levenshtein", func() Measure { return &Levenshtein{} })
}

// Levenshtein computes classic edit distance with a configurable
// insert/delete/substitute cost matrix and an optional length
// normalization, using the same rolling-two-row DP style as dtw.DTW,
// generalized from float64 time series to generic element sequences
// (tokens or bytes, via elements()).
//
// Config:
//
//	ins_cost, del_cost, sub_cost  — per-operation cost (default 1)
//	normalize                     — "none" (default) or "maxlen"
type Levenshtein struct {
	insCost, delCost, subCost float64
	normalize                 string
}

func (m *Levenshtein) Configure(cfg Config) error {
	m.insCost = cfg.Float("ins_cost", 1)
	m.delCost = cfg.Float("del_cost", 1)
	m.subCost = cfg.Float("sub_cost", 1)
	m.normalize = cfg.String("normalize", "none")
	return nil
}

func (m *Levenshtein) Compare(a, b *strval.Value) float32 {
	dist := levenshteinDistance(elements(a), elements(b), m.insCost, m.delCost, m.subCost)
	if m.normalize == "maxlen" {
		maxLen := math.Max(float64(len(elements(a))), float64(len(elements(b))))
		if maxLen > 0 {
			dist /= maxLen
		}
	}
	return float32(dist)
}

// levenshteinDistance runs the rolling-two-row DP in O(m) memory, m = len(b).
func levenshteinDistance(a, b []uint64, insCost, delCost, subCost float64) float64 {
	n, m := len(a), len(b)
	if n == 0 {
		return float64(m) * insCost
	}
	if m == 0 {
		return float64(n) * delCost
	}

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
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
			curr[j] = math.Min(del, math.Min(ins, sub))
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
