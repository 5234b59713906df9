package measure

import (
	"math"

	"github.com/katalvlaran/hmatrix/strval"
)

func init() {
	Register("subsequence-kernel", func() Measure { return &SubsequenceKernel{} })
}

// SubsequenceKernel is the string subsequence kernel (Lodhi et al.):
// a normalized measure of shared (possibly non-contiguous) common
// subsequences of length Config "subseq_len" (default 3), with gaps
// penalized by Config "decay" (lambda, default 0.5) raised to the gap
// length. This rounds out the kernel family alongside NGramKernel,
// pulled from the original source's broader "kernels over
// subsequences and n-grams" lineage (see DESIGN.md).
//
// Compare canonicalizes argument order before running the DP, since
// the kernel's recurrence treats its two operands asymmetrically even
// though the resulting value is mathematically symmetric.
type SubsequenceKernel struct {
	p      int
	lambda float64
}

func (m *SubsequenceKernel) Configure(cfg Config) error {
	m.p = cfg.Int("subseq_len", 3)
	if m.p < 1 {
		m.p = 1
	}
	m.lambda = cfg.Float("decay", 0.5)
	return nil
}

func (m *SubsequenceKernel) Compare(a, b *strval.Value) float32 {
	x, y := canonical(a, b)
	ex, ey := elements(x), elements(y)

	cross := ssk(ex, ey, m.p, m.lambda)
	selfA := ssk(ex, ex, m.p, m.lambda)
	selfB := ssk(ey, ey, m.p, m.lambda)

	denom := math.Sqrt(selfA * selfB)
	if denom == 0 {
		return 1 // neither side has a length-p subsequence: identical under this p
	}

	return float32(cross / denom)
}

// ssk computes the un-normalized subsequence kernel K_p(s,t), using
// the standard cumulative-sum DP (O(p*|s|*|t|) time/space) rather than
// the naive recursive definition's extra factor of |t|.
func ssk(s, t []uint64, p int, lambda float64) float64 {
	n, m := len(s), len(t)
	if n < p || m < p {
		return 0
	}

	// kprime[i][r][c] holds K'_i(s[:r], t[:c]).
	kprime := make([][][]float64, p)
	for i := range kprime {
		kprime[i] = make([][]float64, n+1)
		for r := range kprime[i] {
			kprime[i][r] = make([]float64, m+1)
		}
	}
	for r := 0; r <= n; r++ {
		for c := 0; c <= m; c++ {
			kprime[0][r][c] = 1 // K'_0 = 1 everywhere
		}
	}

	for i := 1; i < p; i++ {
		for r := 1; r <= n; r++ {
			running := 0.0
			for c := 1; c <= m; c++ {
				if s[r-1] == t[c-1] {
					running = lambda * (running + lambda*kprime[i-1][r-1][c-1])
				} else {
					running = lambda * running
				}
				kprime[i][r][c] = lambda*kprime[i][r-1][c] + running
			}
		}
	}

	var result float64
	for r := 1; r <= n; r++ {
		for c := 1; c <= m; c++ {
			if s[r-1] == t[c-1] {
				result += lambda * lambda * kprime[p-1][r-1][c-1]
			}
		}
	}

	return result
}
