package compare

import (
	"fmt"

	"ddrconf/core/regtab"
)

// IndexedEntry is an entry together with its position in the original
// sequence, kept so unique registers can be displayed at their source index.
type IndexedEntry struct {
	Index int          `json:"index"`
	Entry regtab.Entry `json:"entry"`
}

// Partition is the result of splitting two sequences by address presence.
// LeftOnly and RightOnly hold the entries whose address does not occur
// anywhere on the opposite side, once per occurrence, in original order.
// CommonLeft and CommonRight hold the shared-address entries, each side
// preserving its own original relative order.
type Partition struct {
	LeftOnly    []IndexedEntry `json:"left_only"`
	RightOnly   []IndexedEntry `json:"right_only"`
	CommonLeft  []regtab.Entry `json:"-"`
	CommonRight []regtab.Entry `json:"-"`
}

// Disjoint reports whether the two sides share an identical address set,
// i.e. no entry is unique to either side.
func (p Partition) Disjoint() bool {
	return len(p.LeftOnly) == 0 && len(p.RightOnly) == 0
}

// UnbalancedCommonError is the internal consistency fault raised when the
// common subsequences extracted from the two sides end up with different
// lengths. It can only happen when an address is duplicated a different
// number of times on each side; the engine abandons the branch rather than
// guessing a pairing.
type UnbalancedCommonError struct {
	LeftCount, RightCount int
}

func (e *UnbalancedCommonError) Error() string {
	return fmt.Sprintf("common register counts don't match (%d vs %d)", e.LeftCount, e.RightCount)
}

// SplitCommon partitions two sequences into unique and common entries by
// address. Neither input is mutated. It returns an UnbalancedCommonError
// when the extracted common subsequences differ in length.
func SplitCommon(left, right []regtab.Entry) (Partition, error) {
	inLeft := make(map[uint32]struct{}, len(left))
	for _, e := range left {
		inLeft[e.Addr] = struct{}{}
	}
	inRight := make(map[uint32]struct{}, len(right))
	for _, e := range right {
		inRight[e.Addr] = struct{}{}
	}

	var p Partition
	for i, e := range left {
		if _, ok := inRight[e.Addr]; ok {
			p.CommonLeft = append(p.CommonLeft, e)
		} else {
			p.LeftOnly = append(p.LeftOnly, IndexedEntry{Index: i, Entry: e})
		}
	}
	for i, e := range right {
		if _, ok := inLeft[e.Addr]; ok {
			p.CommonRight = append(p.CommonRight, e)
		} else {
			p.RightOnly = append(p.RightOnly, IndexedEntry{Index: i, Entry: e})
		}
	}

	if len(p.CommonLeft) != len(p.CommonRight) {
		return p, &UnbalancedCommonError{LeftCount: len(p.CommonLeft), RightCount: len(p.CommonRight)}
	}
	return p, nil
}
