package measure

import (
	"math"

	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	Register("jaccard", func() Measure { return &setCoeff{kind: coeffJaccard} })
	Register("simpson", func() Measure { return &setCoeff{kind: coeffSimpson} })
	Register("braun-blanquet", func() Measure { return &setCoeff{kind: coeffBraunBlanquet} })
	Register("dice", func() Measure { return &setCoeff{kind: coeffDice} })
	Register("sokal-sneath", func() Measure { return &setCoeff{kind: coeffSokalSneath} })
	Register("kulczynski", func() Measure { return &setCoeff{kind: coeffKulczynski} })
	Register("otsuka", func() Measure { return &setCoeff{kind: coeffOtsuka} })
}

type coeffKind int

const (
	coeffJaccard coeffKind = iota
	coeffSimpson
	coeffBraunBlanquet
	coeffDice
	coeffSokalSneath
	coeffKulczynski
	coeffOtsuka
)

// setCoeff implements the Jaccard/Simpson/Braun-Blanquet/Dice/
// Sokal-Sneath/Kulczynski/Otsuka family, each a closed-form expression
// over MatchTriple's (A, B, C). Every coefficient defines
// its own zero-denominator value (two empty sets are taken to be
// identical, so the default is 1 throughout) rather than propagating
// NaN.
type setCoeff struct {
	kind coeffKind
}

func (s *setCoeff) Configure(Config) error { return nil }

func (s *setCoeff) Compare(a, b *strval.Value) float32 {
	A, B, C := MatchTriple(a, b)
	fa, fb, fc := float64(A), float64(B), float64(C)

	switch s.kind {
	case coeffJaccard:
		denom := fa + fb + fc
		if denom == 0 {
			return 1
		}
		return float32(fa / denom)

	case coeffSimpson:
		denom := math.Min(fa+fb, fa+fc)
		if denom == 0 {
			return 1
		}
		return float32(fa / denom)

	case coeffBraunBlanquet:
		denom := math.Max(fa+fb, fa+fc)
		if denom == 0 {
			return 1
		}
		return float32(fa / denom)

	case coeffDice:
		denom := 2*fa + fb + fc
		if denom == 0 {
			return 1
		}
		return float32(2 * fa / denom)

	case coeffSokalSneath:
		denom := fa + 2*(fb+fc)
		if denom == 0 {
			return 1
		}
		return float32(fa / denom)

	case coeffKulczynski:
		// Kulczynski-2: average of A/(A+B) and A/(A+C); each term
		// defaults to 1 when its own denominator is zero.
		term1, term2 := 1.0, 1.0
		if fa+fb > 0 {
			term1 = fa / (fa + fb)
		}
		if fa+fc > 0 {
			term2 = fa / (fa + fc)
		}
		return float32((term1 + term2) / 2)

	case coeffOtsuka:
		denom := math.Sqrt((fa + fb) * (fa + fc))
		if denom == 0 {
			return 1
		}
		return float32(fa / denom)

	default:
		return 0
	}
}
