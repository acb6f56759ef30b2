package report

import (
	"fmt"
	"io"
	"strings"

	"ddrconf/core/compare"
	"ddrconf/core/regtab"
)

const (
	// bannerWidth is the width of the heavy rules framing the report.
	bannerWidth = 75
	// boxWidth is the interior width of section header boxes.
	boxWidth = 73
	// subBoxWidth is the interior width of per-table sub-boxes.
	subBoxWidth = 66
	// commonBoxWidth is the interior width of the nested common-register box.
	commonBoxWidth = 58
)

// Renderer writes comparison outcomes as a formatted report. All methods
// are write-only; the first underlying write error sticks and is reported
// by Err.
type Renderer struct {
	p    *printer
	opts Options
}

// New creates a renderer writing to w.
func New(w io.Writer, opts Options) *Renderer {
	return &Renderer{p: &printer{w: w, color: opts.Color}, opts: opts}
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error {
	return r.p.err
}

// Linef writes one raw line at the given indent.
func (r *Renderer) Linef(indent, format string, args ...any) {
	r.p.printf("%s"+format+"\n", append([]any{indent}, args...)...)
}

// Errorf writes an error line.
func (r *Renderer) Errorf(indent, format string, args ...any) {
	r.p.errorf(indent, format, args...)
}

// Warnf writes a warning line.
func (r *Renderer) Warnf(indent, format string, args ...any) {
	r.p.warnf(indent, format, args...)
}

// Infof writes an informational line.
func (r *Renderer) Infof(indent, format string, args ...any) {
	r.p.infof(indent, format, args...)
}

// Blank writes an empty line.
func (r *Renderer) Blank() {
	r.p.printf("\n")
}

// Opening writes the report's opening banner.
func (r *Renderer) Opening(title string) {
	rule := strings.Repeat("═", bannerWidth)
	pad := (bannerWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	r.p.printf("\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", pad), title, rule)
}

// Closing writes the final banner.
func (r *Renderer) Closing(title string) {
	rule := strings.Repeat("═", bannerWidth)
	r.p.printf("%s\n", rule)
	r.p.infof(strings.Repeat(" ", 22), "%s", title)
	r.p.printf("%s\n\n", rule)
}

// Box writes a full-width titled box header.
func (r *Renderer) Box(title string) {
	rule := strings.Repeat("─", boxWidth)
	r.p.printf("┌%s┐\n", rule)
	r.p.printf("│ %-*s│\n", boxWidth-1, title)
	r.p.printf("└%s┘\n", rule)
}

// SectionHeader writes the header box opening one top-level comparison.
func (r *Renderer) SectionHeader(name string) {
	r.Box("Checking " + name)
}

// SubBox opens a titled sub-box for a nested table, e.g. one FSP table.
func (r *Renderer) SubBox(indent, title string) {
	head := fmt.Sprintf("─── %s ", title)
	fill := subBoxWidth - len([]rune(head))
	if fill < 0 {
		fill = 0
	}
	r.p.printf("%s┌%s%s┐\n", indent, head, strings.Repeat("─", fill))
}

// SubBoxClose closes a sub-box opened by SubBox.
func (r *Renderer) SubBoxClose(indent string) {
	r.p.printf("%s└%s┘\n", indent, strings.Repeat("─", subBoxWidth))
}

// Table renders one table comparison: the Entries/Size/CRC header, the
// outcome body, the result summary, and the duplicate report.
func (r *Renderer) Table(left, right regtab.Table, out *compare.Outcome, indent string) {
	r.header(left, right, indent)
	r.body(left, right, out, indent)
	r.summary(out, indent)
	r.duplicates(left, right, out, indent)
}

// TotalSizes writes the closing size summary for both configurations.
func (r *Renderer) TotalSizes(left, right int) {
	r.Box("Total Configuration Sizes")
	r.p.printf("  Left:  %d bytes (%.2f kB)\n", left, float64(left)/1024.0)
	r.p.printf("  Right: %d bytes (%.2f kB)\n", right, float64(right)/1024.0)
	if left != right {
		diff := right - left
		r.p.printf("  Difference: %+d bytes (%+.2f kB)\n", diff, float64(diff)/1024.0)
	}
	r.p.printf("\n")
}

func (r *Renderer) header(left, right regtab.Table, indent string) {
	r.p.printf("%sEntries: Left=%d, Right=%d\n", indent, left.Len(), right.Len())
	r.p.printf("%sSize:    Left=%d bytes (%.2f kB), Right=%d bytes (%.2f kB)\n",
		indent, left.Size(), float64(left.Size())/1024.0, right.Size(), float64(right.Size())/1024.0)
	r.p.printf("%sCRC:     Left=0x%08x, Right=0x%08x\n", indent, left.Checksum(), right.Checksum())
}

func (r *Renderer) body(left, right regtab.Table, out *compare.Outcome, indent string) {
	kind := left.Kind
	switch out.Result {
	case compare.ResultError:
		r.p.warnf(indent, "Structural differences found")
		r.openCommonBox(indent)
		r.p.errorf(indent, "Internal error: %s", out.ErrText)
		r.closeCommonBox(indent)

	case compare.ResultStructural:
		if out.LeftLen != out.RightLen {
			r.p.warnf(indent, "Structural differences found")
			r.uniques(kind, out.Partition, indent)
			r.p.printf("\n")
			r.openCommonBox(indent)
			if out.Common != nil {
				nested := indent + "  "
				cl := regtab.Table{Name: left.Name, Kind: kind, Entries: out.Partition.CommonLeft}
				cr := regtab.Table{Name: right.Name, Kind: kind, Entries: out.Partition.CommonRight}
				r.header(cl, cr, nested)
				r.body(cl, cr, out.Common, nested)
				r.summary(out.Common, nested)
			} else {
				r.p.infof(indent, "No common registers found")
			}
			r.closeCommonBox(indent)
			return
		}

		// Equal lengths but differing register sets.
		r.p.errorf(indent, "Arrays have same length but different register sets!")
		if out.Partition != nil {
			if len(out.Partition.LeftOnly) > 0 {
				r.p.infof(indent, "Registers in LEFT but not in RIGHT:")
				for _, e := range out.Partition.LeftOnly {
					r.p.printf("%s    %s\n", indent, kind.FormatEntry(e.Index, 3, e.Entry))
				}
			}
			if len(out.Partition.RightOnly) > 0 {
				r.p.infof(indent, "Registers in RIGHT but not in LEFT:")
				for _, e := range out.Partition.RightOnly {
					r.p.printf("%s    %s\n", indent, kind.FormatEntry(e.Index, 3, e.Entry))
				}
			}
		}

	case compare.ResultSameOrder:
		if out.DiffCount > 0 {
			r.p.infof(indent, "Registers match, %d value differences", out.DiffCount)
			r.p.infof(indent, "Register value differences:")
			for _, d := range out.ValueDiffs {
				r.p.printf("%s    %s\n", indent, kind.FormatDelta(d.LeftIndex, 3, d.Addr, d.Left, d.Right))
			}
		}

	case compare.ResultReordered:
		r.p.warnf(indent, "Registers match, different order")
		r.reorderHeader(kind, indent)
		r.blocks(kind, left, right, out.Blocks, indent)
		if out.DiffCount > 0 {
			r.p.infof(indent, "Value differences: %d", out.DiffCount)
			r.p.infof(indent, "Register value differences:")
			for _, d := range out.ValueDiffs {
				r.p.printf("%s    %s\n", indent, kind.FormatDelta(d.LeftIndex, 4, d.Addr, d.Left, d.Right))
			}
		}
	}
}

func (r *Renderer) summary(out *compare.Outcome, indent string) {
	if out.Result == compare.ResultSameOrder && out.DiffCount == 0 {
		r.p.successf(indent, "Registers and values match")
	}
}

func (r *Renderer) openCommonBox(indent string) {
	head := "─ Comparing common registers "
	r.p.printf("%s┌%s%s┐\n", indent, head, strings.Repeat("─", commonBoxWidth-len([]rune(head))))
}

func (r *Renderer) closeCommonBox(indent string) {
	r.p.printf("%s└%s┘\n", indent, strings.Repeat("─", commonBoxWidth))
}

// uniques lists the registers present on only one side, side by side.
func (r *Renderer) uniques(kind regtab.Kind, part *compare.Partition, indent string) {
	if part == nil || part.Disjoint() {
		return
	}
	width := kind.ColumnWidth()
	r.p.infof(indent, "Unique registers:")
	r.p.printf("%s  %-*s  %s\n", indent, width, "LEFT", "RIGHT")
	r.p.printf("%s  %s  %s\n", indent, strings.Repeat("─", width), strings.Repeat("─", width))

	n := len(part.LeftOnly)
	if len(part.RightOnly) > n {
		n = len(part.RightOnly)
	}
	for i := 0; i < n; i++ {
		var l, rr string
		if i < len(part.LeftOnly) {
			l = kind.FormatEntry(part.LeftOnly[i].Index, 3, part.LeftOnly[i].Entry)
		}
		if i < len(part.RightOnly) {
			rr = kind.FormatEntry(part.RightOnly[i].Index, 3, part.RightOnly[i].Entry)
		}
		r.p.sideBySide(indent, l, rr, width)
	}
}

func (r *Renderer) reorderHeader(kind regtab.Kind, indent string) {
	width := kind.ColumnWidth()
	r.p.infof(indent, "Reordered registers:")
	r.p.printf("%s  %-*s  %s\n", indent, width, "LEFT", "RIGHT")
	r.p.printf("%s  %s  %s\n", indent, strings.Repeat("─", width), strings.Repeat("─", width))
}

// blocks renders relocated blocks side by side, capped per block, with
// matched runs elided unless ShowRuns is set.
func (r *Renderer) blocks(kind regtab.Kind, left, right regtab.Table, blocks []compare.Block, indent string) {
	bcap := r.opts.blockCap()
	width := kind.ColumnWidth()

	for _, b := range blocks {
		if b.Matched {
			if r.opts.ShowRuns && b.LeftLen() > 10 {
				l := fmt.Sprintf("[%4d-%4d] (%d registers)", b.LeftStart, b.LeftEnd-1, b.LeftLen())
				rr := fmt.Sprintf("[%4d-%4d] (%d registers)", b.RightStart, b.RightEnd-1, b.RightLen())
				r.p.sideBySide(indent, l, rr, width)
			}
			continue
		}

		show := b.LeftLen()
		if b.RightLen() > show {
			show = b.RightLen()
		}
		if show > bcap {
			show = bcap
		}
		for k := 0; k < show; k++ {
			var l, rr string
			if k < b.LeftLen() {
				i := b.LeftStart + k
				l = kind.FormatEntry(i, 4, left.Entries[i])
			}
			if k < b.RightLen() {
				j := b.RightStart + k
				rr = kind.FormatEntry(j, 4, right.Entries[j])
			}
			r.p.sideBySide(indent, l, rr, width)
		}
		if b.LeftLen() > bcap || b.RightLen() > bcap {
			var l, rr string
			if b.LeftLen() > bcap {
				l = fmt.Sprintf("... (%d more)", b.LeftLen()-bcap)
			}
			if b.RightLen() > bcap {
				rr = fmt.Sprintf("... (%d more)", b.RightLen()-bcap)
			}
			r.p.sideBySide(indent, l, rr, width)
		}
	}
}

// duplicates renders the advisory duplicate report for one comparison:
// interference callouts first, then the expanded list or the summary.
func (r *Renderer) duplicates(left, right regtab.Table, out *compare.Outcome, indent string) {
	if len(out.LeftDups) == 0 && len(out.RightDups) == 0 {
		return
	}

	r.interference(left, right, out, indent)

	if !r.opts.ListDuplicates {
		total := len(out.LeftDups) + len(out.RightDups)
		r.p.infof(indent, "Duplicate registers found: %d (use --list-duplicates for details)", total)
		return
	}

	kind := left.Kind
	r.p.infof(indent, "Duplicate registers:")
	r.p.printf("%s  %-37s  %s\n", indent, "LEFT", "RIGHT")
	r.p.printf("%s  %s  %s\n", indent, strings.Repeat("─", 37), strings.Repeat("─", 37))

	n := len(out.LeftDups)
	if len(out.RightDups) > n {
		n = len(out.RightDups)
	}
	for i := 0; i < n; i++ {
		var l, rr string
		if i < len(out.LeftDups) {
			g := out.LeftDups[i]
			l = fmt.Sprintf("%s (%d times)", kind.FormatAddr(g.Addr), g.Count())
		}
		if i < len(out.RightDups) {
			g := out.RightDups[i]
			rr = fmt.Sprintf("%s (%d times)", kind.FormatAddr(g.Addr), g.Count())
		}
		r.p.printf("%s  %-37s  %-37s\n", indent, l, rr)
	}
}

// interference warns when a duplicated address also carries value
// differences, since first-match pairing can hide drift behind a later
// occurrence. Only meaningful when the sides are positionally comparable.
func (r *Renderer) interference(left, right regtab.Table, out *compare.Outcome, indent string) {
	if out.DiffCount == 0 || left.Len() != right.Len() {
		return
	}
	if out.Result != compare.ResultSameOrder && out.Result != compare.ResultReordered {
		return
	}

	kind := left.Kind
	reported := make(map[uint32]bool)
	found := false
	for _, side := range [][]compare.DuplicateGroup{out.LeftDups, out.RightDups} {
		for _, g := range side {
			if reported[g.Addr] {
				continue
			}
			hit := false
			for i := range left.Entries {
				if left.Entries[i].Addr == g.Addr && left.Entries[i].Val != right.Entries[i].Val {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
			if !found {
				r.p.warnf(indent, "Duplicate registers involved in value differences:")
				found = true
			}

			var pos strings.Builder
			for _, idx := range g.Positions {
				fmt.Fprintf(&pos, " [%d]", idx)
			}
			r.p.printf("%s    Reg %s: duplicated %d times at indices:%s\n", indent, kind.FormatAddr(g.Addr), g.Count(), pos.String())
			for _, idx := range g.Positions {
				r.p.printf("%s        [%d] Left=%s, Right=%s\n",
					indent, idx, kind.FormatVal(left.Entries[idx].Val), kind.FormatVal(right.Entries[idx].Val))
			}
			reported[g.Addr] = true
		}
	}
}
