package compare

import "ddrconf/core/regtab"

// DuplicateGroup collects every occurrence of one address within a single
// sequence, in first-to-last order. Groups exist only for addresses that
// appear more than once.
type DuplicateGroup struct {
	Addr      uint32   `json:"addr"`
	Positions []int    `json:"positions"`
	Values    []uint32 `json:"values"`
}

// Count returns the number of occurrences in the group.
func (g DuplicateGroup) Count() int {
	return len(g.Positions)
}

// Conflicting reports whether the occurrences disagree on the value.
// Groups with identical values everywhere are merely redundant entries;
// conflicting groups indicate an ambiguous configuration.
func (g DuplicateGroup) Conflicting() bool {
	for _, v := range g.Values[1:] {
		if v != g.Values[0] {
			return true
		}
	}
	return false
}

// FindDuplicates scans one sequence and groups entries sharing an address.
// Addresses appearing exactly once are omitted. The result is ordered by the
// first occurrence of each duplicated address. An empty sequence yields nil.
func FindDuplicates(seq []regtab.Entry) []DuplicateGroup {
	if len(seq) < 2 {
		return nil
	}

	first := make(map[uint32]int, len(seq))
	counts := make(map[uint32]int, len(seq))
	for i, e := range seq {
		if counts[e.Addr] == 0 {
			first[e.Addr] = i
		}
		counts[e.Addr]++
	}

	var groups []DuplicateGroup
	for i, e := range seq {
		if counts[e.Addr] < 2 || first[e.Addr] != i {
			continue
		}
		g := DuplicateGroup{Addr: e.Addr}
		for j := i; j < len(seq); j++ {
			if seq[j].Addr == e.Addr {
				g.Positions = append(g.Positions, j)
				g.Values = append(g.Values, seq[j].Val)
			}
		}
		groups = append(groups, g)
	}
	return groups
}
