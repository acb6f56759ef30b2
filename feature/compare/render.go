package compare

import (
	"fmt"
	"io"
	"strings"

	"ddrconf/core/report"
)

const (
	openingTitle = "DDR Configuration Comparison Tool"
	closingTitle = "COMPARISON COMPLETE"
)

// Render writes the report as formatted text. Sections come out in
// declaration order regardless of how they were computed.
func Render(w io.Writer, rep *Report, opts report.Options) error {
	r := report.New(w, opts)

	r.Opening(openingTitle)
	r.Linef("", "Left:  %s", rep.LeftName)
	r.Linef("", "Right: %s", rep.RightName)
	r.Blank()
	renderWarnings(r, "left", rep.LeftWarnings)
	renderWarnings(r, "right", rep.RightWarnings)

	for _, sec := range rep.Sections {
		renderSection(r, sec)
	}

	r.TotalSizes(rep.LeftTotal, rep.RightTotal)
	r.Closing(closingTitle)
	return r.Err()
}

func renderWarnings(r *report.Renderer, side string, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	r.Warnf("", "Parser warnings (%s):", side)
	for _, w := range warnings {
		r.Linef("    ", "%s", w)
	}
	r.Blank()
}

func renderSection(r *report.Renderer, sec Section) {
	r.SectionHeader(sec.Name)

	if sec.Err != "" {
		r.Errorf("  ", "%s", sec.Err)
		r.Blank()
		return
	}

	switch sec.Name {
	case SectionFspCfg:
		renderFspCfg(r, sec)
	case SectionFspMsg:
		renderFspMsg(r, sec)
	default:
		r.Table(sec.Tables[0].Left, sec.Tables[0].Right, sec.Tables[0].Outcome, "  ")
	}
	r.Blank()
}

func renderFspCfg(r *report.Renderer, sec Section) {
	c := sec.Cardinality
	r.Linef("  ", "FSP Entries: Left=%d, Right=%d", c.Left, c.Right)
	if c.Mismatch() {
		r.Errorf("  ", "Number of FSP entries do not match!")
		return
	}

	scalars := scalarIndex(sec.Scalars)
	for i, t := range sec.Tables {
		r.Blank()
		r.Linef("  ", "FSP %d:", i)
		r.SubBox("  ", "ddrc_cfg")
		r.Table(t.Left, t.Right, t.Outcome, "    ")
		r.SubBoxClose("  ")
		if d, ok := scalars[scalarField(SectionFspCfg, i, "bypass")]; ok {
			r.Warnf("    ", "bypass: %d → %d", d.Left, d.Right)
		}
	}
}

func renderFspMsg(r *report.Renderer, sec Section) {
	c := sec.Cardinality
	r.Linef("  ", "FSP Message Entries: Left=%d, Right=%d", c.Left, c.Right)
	if c.Mismatch() {
		r.Errorf("  ", "Number of FSP entries do not match!")
		return
	}

	scalars := scalarIndex(sec.Scalars)
	// Three tables per set point, in fixed order.
	for i := 0; i*3 < len(sec.Tables); i++ {
		r.Blank()
		r.Linef("  ", "FSP Message %d:", i)
		if d, ok := scalars[scalarField(SectionFspMsg, i, "drate")]; ok {
			r.Warnf("    ", "drate: %d → %d", d.Left, d.Right)
		}
		if d, ok := scalars[scalarField(SectionFspMsg, i, "fw_type")]; ok {
			r.Warnf("    ", "fw_type: %d → %d", d.Left, d.Right)
		}
		for _, t := range sec.Tables[i*3 : i*3+3] {
			r.SubBox("  ", shortName(t.Name))
			r.Table(t.Left, t.Right, t.Outcome, "    ")
			r.SubBoxClose("  ")
		}
	}
}

func scalarIndex(diffs []ScalarDiff) map[string]ScalarDiff {
	m := make(map[string]ScalarDiff, len(diffs))
	for _, d := range diffs {
		m[d.Field] = d
	}
	return m
}

func scalarField(section string, i int, name string) string {
	return fmt.Sprintf("%s[%d].%s", section, i, name)
}

// shortName strips the aggregate path prefix, leaving the table's own
// name for display.
func shortName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
