package measure

import "github.com/katalvlaran/hmatrix/strval"

func init() {
	Register("jaro-winkler", func() Measure { return &JaroWinkler{} })
}

// JaroWinkler boosts Jaro similarity by a common-prefix bonus (up to
// 4 elements), scaled by Config "prefix_scale".
type JaroWinkler struct {
	prefixScale float64
}

func (m *JaroWinkler) Configure(cfg Config) error {
	m.prefixScale = cfg.Float("prefix_scale", 0.1)
	return nil
}

func (m *JaroWinkler) Compare(a, b *strval.Value) float32 {
	x, y := canonical(a, b)
	ex, ey := elements(x), elements(y)

	jaro := jaroSimilarity(ex, ey)

	prefix := 0
	maxPrefix := 4
	for prefix < maxPrefix && prefix < len(ex) && prefix < len(ey) && ex[prefix] == ey[prefix] {
		prefix++
	}

	return float32(jaro + float64(prefix)*m.prefixScale*(1-jaro))
}
