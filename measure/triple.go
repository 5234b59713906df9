package measure

import "github.com/katalvlaran/hmatrix/strval"

// MatchTriple computes the shared (A, B, C) input to every
// set-coefficient measure: A is the count of elements
// present in both a and b, B the count present only in a, C the count
// present only in b. Elements are compared as a set (duplicates in a
// single Value do not inflate A), over whichever representation the
// Value carries (see elements).
func MatchTriple(a, b *strval.Value) (A, B, C int) {
	setA := toSet(a)
	setB := toSet(b)

	for e := range setA {
		if setB[e] {
			A++
		} else {
			B++
		}
	}
	for e := range setB {
		if !setA[e] {
			C++
		}
	}

	return A, B, C
}

func toSet(v *strval.Value) map[uint64]bool {
	elems := elements(v)
	set := make(map[uint64]bool, len(elems))
	for _, e := range elems {
		set[e] = true
	}
	return set
}
