package compare

import (
	"testing"

	"ddrconf/core/regtab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(pairs ...uint32) []regtab.Entry {
	seq := make([]regtab.Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		seq = append(seq, regtab.Entry{Addr: pairs[i], Val: pairs[i+1]})
	}
	return seq
}

// TestCompare_Identical verifies that element-wise equal sequences produce a
// clean same-order match.
func TestCompare_Identical(t *testing.T) {
	left := entries(0x10, 1, 0x20, 2)
	right := entries(0x10, 1, 0x20, 2)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultSameOrder, out.Result)
	assert.Equal(t, 0, out.DiffCount)
	assert.Empty(t, out.ValueDiffs)
	assert.True(t, out.Clean())
}

// TestCompare_Swapped verifies that a two-entry swap is reported as a single
// reordered block covering both entries, with no value differences.
func TestCompare_Swapped(t *testing.T) {
	left := entries(0x10, 1, 0x20, 2)
	right := entries(0x20, 2, 0x10, 1)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultReordered, out.Result)
	assert.Equal(t, 0, out.DiffCount)

	require.Len(t, out.Blocks, 1)
	b := out.Blocks[0]
	assert.False(t, b.Matched)
	assert.Equal(t, 0, b.LeftStart)
	assert.Equal(t, 2, b.LeftEnd)
	assert.Equal(t, 0, b.RightStart)
	assert.Equal(t, 2, b.RightEnd)
}

// TestCompare_ValueDrift verifies the same-order value diff path.
func TestCompare_ValueDrift(t *testing.T) {
	left := entries(0x10, 1, 0x20, 2)
	right := entries(0x10, 5, 0x20, 2)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultSameOrder, out.Result)
	assert.Equal(t, 1, out.DiffCount)

	require.Len(t, out.ValueDiffs, 1)
	d := out.ValueDiffs[0]
	assert.Equal(t, uint32(0x10), d.Addr)
	assert.Equal(t, uint32(1), d.Left)
	assert.Equal(t, uint32(5), d.Right)
	assert.Equal(t, 0, d.LeftIndex)
}

// TestCompare_MissingRegister verifies that a register absent from one side
// is structural, lands in LeftOnly exactly once, and that the common subset
// is still compared recursively.
func TestCompare_MissingRegister(t *testing.T) {
	left := entries(0x10, 1, 0x20, 2, 0x30, 3)
	right := entries(0x10, 1, 0x30, 3)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultStructural, out.Result)

	require.NotNil(t, out.Partition)
	assert.Empty(t, out.Partition.RightOnly)
	require.Len(t, out.Partition.LeftOnly, 1)
	assert.Equal(t, uint32(0x20), out.Partition.LeftOnly[0].Entry.Addr)
	assert.Equal(t, 1, out.Partition.LeftOnly[0].Index)

	require.NotNil(t, out.Common)
	assert.Equal(t, ResultSameOrder, out.Common.Result)
	assert.Equal(t, 0, out.Common.DiffCount)
	assert.Equal(t, 2, out.Common.LeftLen)
	assert.Nil(t, out.Common.Common, "recursion must stop after one nested level")
}

// TestCompare_EqualLengthDifferentSets verifies that equal lengths do not
// mask differing register sets, and that no recursion happens in that case.
func TestCompare_EqualLengthDifferentSets(t *testing.T) {
	left := entries(0x10, 1, 0x20, 2)
	right := entries(0x10, 1, 0x40, 2)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultStructural, out.Result)
	require.NotNil(t, out.Partition)
	assert.Len(t, out.Partition.LeftOnly, 1)
	assert.Len(t, out.Partition.RightOnly, 1)
	assert.Nil(t, out.Common)
}

// TestCompare_Permutation verifies the reordered outcome for a permutation
// with identical per-address values: no value diffs and blocks covering the
// whole permuted region.
func TestCompare_Permutation(t *testing.T) {
	left := entries(0xA, 1, 0xB, 2, 0xC, 3, 0xD, 4, 0xE, 5)
	right := entries(0xA, 1, 0xD, 4, 0xE, 5, 0xB, 2, 0xC, 3)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultReordered, out.Result)
	assert.Equal(t, 0, out.DiffCount)

	// Every left position is covered by some block.
	covered := make([]bool, len(left))
	for _, b := range out.Blocks {
		for i := b.LeftStart; i < b.LeftEnd; i++ {
			covered[i] = true
		}
	}
	for i, c := range covered {
		assert.True(t, c, "left position %d not covered by any block", i)
	}
}

// TestCompare_ReorderedWithValueDrift covers the by-address value diff on
// the reordered path.
func TestCompare_ReorderedWithValueDrift(t *testing.T) {
	left := entries(0x10, 1, 0x20, 2, 0x30, 3)
	right := entries(0x30, 9, 0x10, 1, 0x20, 2)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultReordered, out.Result)
	require.Len(t, out.ValueDiffs, 1)
	assert.Equal(t, uint32(0x30), out.ValueDiffs[0].Addr)
	assert.Equal(t, uint32(3), out.ValueDiffs[0].Left)
	assert.Equal(t, uint32(9), out.ValueDiffs[0].Right)
	assert.Equal(t, 1, out.DiffCount)
}

// TestCompare_Symmetry verifies that swapping the sides swaps the unique
// sets and preserves the value difference count.
func TestCompare_Symmetry(t *testing.T) {
	left := entries(0x10, 1, 0x20, 2, 0x30, 3, 0x50, 7)
	right := entries(0x10, 4, 0x30, 3, 0x40, 6)

	fwd := Compare(left, right, Options{})
	rev := Compare(right, left, Options{})

	require.NotNil(t, fwd.Partition)
	require.NotNil(t, rev.Partition)
	assert.Equal(t, len(fwd.Partition.LeftOnly), len(rev.Partition.RightOnly))
	assert.Equal(t, len(fwd.Partition.RightOnly), len(rev.Partition.LeftOnly))

	require.NotNil(t, fwd.Common)
	require.NotNil(t, rev.Common)
	assert.Equal(t, fwd.Common.DiffCount, rev.Common.DiffCount)
}

// TestCompare_UnbalancedDuplicates verifies that an address duplicated a
// different number of times per side aborts the branch with an internal
// error instead of guessing a pairing.
func TestCompare_UnbalancedDuplicates(t *testing.T) {
	left := entries(0x10, 1, 0x10, 1)
	right := entries(0x10, 1, 0x20, 2)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultError, out.Result)
	require.Error(t, out.Err)

	var ub *UnbalancedCommonError
	require.ErrorAs(t, out.Err, &ub)
	assert.Equal(t, 2, ub.LeftCount)
	assert.Equal(t, 1, ub.RightCount)
}

// TestCompare_DuplicatesAdvisory verifies that duplicate groups ride along
// on the outcome without changing the result.
func TestCompare_DuplicatesAdvisory(t *testing.T) {
	left := entries(0x10, 1, 0x10, 1, 0x20, 2)
	right := entries(0x10, 1, 0x10, 1, 0x20, 2)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultSameOrder, out.Result)
	assert.Equal(t, 0, out.DiffCount)
	require.Len(t, out.LeftDups, 1)
	require.Len(t, out.RightDups, 1)
	assert.False(t, out.LeftDups[0].Conflicting())
	assert.False(t, out.Clean(), "duplicates keep the outcome from being clean")
}

// TestCompare_FirstMatchWinsPolicy pins the documented behavior of the
// reordered value diff under duplicate addresses: only the first right-side
// occurrence is consulted.
func TestCompare_FirstMatchWinsPolicy(t *testing.T) {
	left := entries(0x10, 1, 0x20, 2, 0x10, 1)
	right := entries(0x20, 2, 0x10, 1, 0x10, 9)

	out := Compare(left, right, Options{})
	assert.Equal(t, ResultReordered, out.Result)
	// Both left occurrences of 0x10 match the first right occurrence
	// (value 1); the drifted second right occurrence stays invisible.
	assert.Equal(t, 0, out.DiffCount)
}

// TestCompare_Empty covers the empty-input edge.
func TestCompare_Empty(t *testing.T) {
	out := Compare(nil, nil, Options{})
	assert.Equal(t, ResultSameOrder, out.Result)
	assert.Equal(t, 0, out.DiffCount)
	assert.True(t, out.Clean())
}
