package compare

import "ddrconf/core/regtab"

// ValueDiff records one register whose value differs between the sides.
// LeftIndex is the entry's position in the left sequence.
type ValueDiff struct {
	LeftIndex int    `json:"left_index"`
	Addr      uint32 `json:"addr"`
	Left      uint32 `json:"left"`
	Right     uint32 `json:"right"`
}

// DiffValues compares values across two sequences already known to hold the
// same address set and returns only the entries that differ, in left order.
//
// With positional set, entries are compared index against index. Otherwise
// each left entry is compared against the first right entry carrying the
// same address. First match wins: when an address is legally duplicated,
// later right-side occurrences are never visited as distinct pairs, so
// value drift hidden behind a later duplicate is not reported here. The
// renderer cross-references duplicate groups against the diff list to call
// that situation out instead.
func DiffValues(left, right []regtab.Entry, positional bool) []ValueDiff {
	var diffs []ValueDiff
	if positional {
		for i := range left {
			if left[i].Val != right[i].Val {
				diffs = append(diffs, ValueDiff{LeftIndex: i, Addr: left[i].Addr, Left: left[i].Val, Right: right[i].Val})
			}
		}
		return diffs
	}

	for i, e := range left {
		for _, r := range right {
			if r.Addr != e.Addr {
				continue
			}
			if e.Val != r.Val {
				diffs = append(diffs, ValueDiff{LeftIndex: i, Addr: e.Addr, Left: e.Val, Right: r.Val})
			}
			break
		}
	}
	return diffs
}
