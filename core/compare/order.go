package compare

import "ddrconf/core/regtab"

// SameOrder reports whether two sequences list the same address at every
// position. Callers must have verified equal length and an identical
// address set first; under that precondition exactly one of same order or
// different order holds.
func SameOrder(left, right []regtab.Entry) bool {
	for i := range left {
		if left[i].Addr != right[i].Addr {
			return false
		}
	}
	return true
}
