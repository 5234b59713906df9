package measure

import (
	"math"

	"github.com/katalvlaran/hmatrix/dtw"
	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	Register("dtw", func() Measure { return &DTW{} })
}

// DTW is an elastic alignment distance: the minimal cumulative cost
// of stretching/compressing one element sequence onto the other,
// adapting the time-series dtw.DTW algorithm to operate over
// elements() (each element widened to float64). As with Lee and
// Hamming, the result is most meaningful over Bytes values, where
// element magnitude is the byte's ordinal value; over Tokens, element
// ids are hash-derived and their numeric distance carries no
// particular meaning beyond equality — callers comparing Tokens
// values are better served by an edit or kernel measure.
//
// Config:
//
//	window        — Sakoe-Chiba band radius; -1 disables it (default -1);
//	                below -1 makes Configure return dtw.ErrBadInput
//	slope_penalty — insertion/deletion penalty (default 0)
//	normalize     — "none" (default) or "maxlen"
type DTW struct {
	opts      dtw.Options
	normalize string
}

func (m *DTW) Configure(cfg Config) error {
	m.opts = dtw.DefaultOptions()
	m.opts.Window = cfg.Int("window", -1)
	m.opts.SlopePenalty = cfg.Float("slope_penalty", 0)
	m.normalize = cfg.String("normalize", "none")

	return m.opts.Validate()
}

func (m *DTW) Compare(a, b *strval.Value) float32 {
	ea, eb := elements(a), elements(b)
	if len(ea) == 0 || len(eb) == 0 {
		if len(ea) == len(eb) {
			return 0
		}
		return float32(math.Max(float64(len(ea)), float64(len(eb))))
	}

	fa := toFloats(ea)
	fb := toFloats(eb)

	opts := m.opts
	dist, _, err := dtw.DTW(fa, fb, &opts)
	if err != nil {
		// opts were already Validate()'d in Configure; only the
		// empty-input case remains, already handled above.
		return 0
	}

	if m.normalize == "maxlen" {
		maxLen := math.Max(float64(len(ea)), float64(len(eb)))
		if maxLen > 0 {
			dist /= maxLen
		}
	}

	return float32(dist)
}

func toFloats(elems []uint64) []float64 {
	out := make([]float64, len(elems))
	for i, e := range elems {
		out[i] = float64(e)
	}
	return out
}
