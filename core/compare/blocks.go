package compare

import "ddrconf/core/regtab"

// DefaultWindow is the forward lookahead used by AlignBlocks when deciding
// whether a register has merely moved or is part of a displaced block.
// There is no derivation behind the value; it comfortably exceeds the block
// relocations seen in generated timing tables. Relocations displaced past
// the window degrade to a pair of one-sided blocks, never to a wrong match.
const DefaultWindow = 50

// Block describes a contiguous run of entries at [LeftStart, LeftEnd) on
// the left and [RightStart, RightEnd) on the right. Matched blocks are runs
// where both sides agree positionally; mismatched blocks are runs that moved
// between the two sides. Either range of a mismatched block may be empty,
// which marks a one-sided relocation (the content appears elsewhere, past
// the lookahead window, or in a trailing tail).
type Block struct {
	LeftStart  int  `json:"left_start"`
	LeftEnd    int  `json:"left_end"`
	RightStart int  `json:"right_start"`
	RightEnd   int  `json:"right_end"`
	Matched    bool `json:"matched"`
}

// LeftLen returns the number of left-side entries the block spans.
func (b Block) LeftLen() int { return b.LeftEnd - b.LeftStart }

// RightLen returns the number of right-side entries the block spans.
func (b Block) RightLen() int { return b.RightEnd - b.RightStart }

// AlignBlocks partitions two same-set, same-length sequences whose order
// differs into matched runs and relocated blocks. window bounds the forward
// search; values < 1 fall back to DefaultWindow.
//
// Two cursors walk the sequences simultaneously. While the addresses agree
// the run is collected as a matched block. On a mismatch, each cursor sweeps
// forward past entries whose address does not reappear within window
// positions on the opposite side; the swept spans form one mismatched
// block. When neither cursor can sweep (both current addresses sit within
// each other's window, i.e. a local swap), both cursors advance together to
// the next position where the addresses realign, so the whole permuted
// region is covered by a single block and the walk always terminates.
func AlignBlocks(left, right []regtab.Entry, window int) []Block {
	if window < 1 {
		window = DefaultWindow
	}

	var blocks []Block
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i].Addr == right[j].Addr {
			si, sj := i, j
			for i < len(left) && j < len(right) && left[i].Addr == right[j].Addr {
				i++
				j++
			}
			blocks = append(blocks, Block{LeftStart: si, LeftEnd: i, RightStart: sj, RightEnd: j, Matched: true})
			continue
		}

		si, sj := i, j
		for i < len(left) && !appearsWithin(right, j, window, left[i].Addr) {
			i++
		}
		for j < len(right) && !appearsWithin(left, i, window, right[j].Addr) {
			j++
		}
		if i == si && j == sj {
			// Local swap: sweep both sides to the next realignment.
			for i < len(left) && j < len(right) && left[i].Addr != right[j].Addr {
				i++
				j++
			}
		}
		blocks = append(blocks, Block{LeftStart: si, LeftEnd: i, RightStart: sj, RightEnd: j})
	}

	// Trailing tails left over when the other cursor finished first.
	if i < len(left) {
		blocks = append(blocks, Block{LeftStart: i, LeftEnd: len(left), RightStart: j, RightEnd: j})
	} else if j < len(right) {
		blocks = append(blocks, Block{LeftStart: i, LeftEnd: i, RightStart: j, RightEnd: len(right)})
	}
	return blocks
}

// appearsWithin reports whether addr occurs in seq[from:from+window).
func appearsWithin(seq []regtab.Entry, from, window int, addr uint32) bool {
	end := from + window
	if end > len(seq) {
		end = len(seq)
	}
	for k := from; k < end; k++ {
		if seq[k].Addr == addr {
			return true
		}
	}
	return false
}
