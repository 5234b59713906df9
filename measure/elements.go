package measure

import "github.com/katalvlaran/hmatrix/strval"

// elements returns v's content as a generic sequence of comparable
// element ids: its token ids verbatim if Kind == Tokens, or its raw
// bytes widened to uint64 if Kind == Bytes. Every measure that works
// element-by-element (Hamming, Lee, bag distance, the kernels) goes
// through this so it is agnostic to which representation a Value
// happens to carry.
func elements(v *strval.Value) []uint64 {
	if v.Kind == strval.Tokens {
		return v.Toks
	}

	elems := make([]uint64, len(v.Raw))
	for i, b := range v.Raw {
		elems[i] = uint64(b)
	}

	return elems
}

// canonical orders a pair of values by Idx so that measures whose
// implementation treats its two arguments asymmetrically (Jaro, the
// kernels) can still guarantee Compare(a,b) == Compare(b,a) bit-exact:
// both call orders funnel into the same underlying (x, y) computation.
func canonical(a, b *strval.Value) (x, y *strval.Value) {
	if a.Idx <= b.Idx {
		return a, b
	}
	return b, a
}
