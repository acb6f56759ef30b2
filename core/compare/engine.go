package compare

import "ddrconf/core/regtab"

// Options tunes one comparison call.
type Options struct {
	// Window is the block aligner lookahead; < 1 uses DefaultWindow.
	Window int

	// MaxDepth bounds the common-subset recursion. The zero value allows a
	// single nested level, which is the only depth the extraction can
	// produce anyway: a common subset compared against itself has equal
	// address sets and cannot recurse again.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth < 1 {
		return 1
	}
	return o.MaxDepth
}

// Compare runs the full comparison state machine over two sequences and
// returns the structured Outcome. Neither input is mutated; the call never
// fails, it only reports (internal consistency faults are carried on the
// Outcome of the affected branch).
func Compare(left, right []regtab.Entry, opts Options) Outcome {
	return compareAt(left, right, opts, 0)
}

func compareAt(left, right []regtab.Entry, opts Options, depth int) Outcome {
	out := Outcome{
		LeftLen:   len(left),
		RightLen:  len(right),
		LeftDups:  FindDuplicates(left),
		RightDups: FindDuplicates(right),
	}

	part, err := SplitCommon(left, right)
	if err != nil {
		out.Result = ResultError
		out.Err = err
		out.ErrText = err.Error()
		return out
	}

	if len(left) != len(right) {
		// Length mismatch is terminal at this level. The common
		// subsequences are still compared so the report can show value
		// drift inside the shared registers, but the nested result never
		// upgrades the outer one.
		out.Result = ResultStructural
		out.Partition = &part
		if depth < opts.maxDepth() && len(part.CommonLeft) > 0 {
			nested := compareAt(part.CommonLeft, part.CommonRight, opts, depth+1)
			out.Common = &nested
		}
		return out
	}

	if !part.Disjoint() {
		// Equal lengths but different register sets.
		out.Result = ResultStructural
		out.Partition = &part
		return out
	}

	if SameOrder(left, right) {
		out.Result = ResultSameOrder
		out.ValueDiffs = DiffValues(left, right, true)
	} else {
		out.Result = ResultReordered
		out.Blocks = AlignBlocks(left, right, opts.Window)
		out.ValueDiffs = DiffValues(left, right, false)
	}
	out.DiffCount = len(out.ValueDiffs)
	return out
}
