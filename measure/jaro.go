package measure

import "github.com/katalvlaran/hmatrix/strval"

func init() {
	Register("jaro", func() Measure { return &Jaro{} })
}

// Jaro computes the classic Jaro similarity, in [0,1], 1 meaning
// identical. Compare canonicalizes argument order first so that
// floating-point summation order can never make
// Compare(a,b) != Compare(b,a).
type Jaro struct{}

func (m *Jaro) Configure(Config) error { return nil }

func (m *Jaro) Compare(a, b *strval.Value) float32 {
	x, y := canonical(a, b)
	return float32(jaroSimilarity(elements(x), elements(y)))
}

// jaroSimilarity implements the standard matching-window algorithm.
func jaroSimilarity(s1, s2 []uint64) float64 {
	len1, len2 := len(s1), len(s2)
	if len1 == 0 && len2 == 0 {
		return 1
	}
	if len1 == 0 || len2 == 0 {
		return 0
	}

	matchDistance := len1
	if len2 > matchDistance {
		matchDistance = len2
	}
	matchDistance = matchDistance/2 - 1
	if matchDistance < 0 {
		matchDistance = 0
	}

	s1Matches := make([]bool, len1)
	s2Matches := make([]bool, len2)
	matches := 0

	for i := 0; i < len1; i++ {
		low := i - matchDistance
		if low < 0 {
			low = 0
		}
		high := i + matchDistance + 1
		if high > len2 {
			high = len2
		}
		for j := low; j < high; j++ {
			if s2Matches[j] || s1[i] != s2[j] {
				continue
			}
			s1Matches[i] = true
			s2Matches[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !s1Matches[i] {
			continue
		}
		for !s2Matches[k] {
			k++
		}
		if s1[i] != s2[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	mf := float64(matches)
	return (mf/float64(len1) + mf/float64(len2) + (mf-float64(transpositions))/mf) / 3
}
