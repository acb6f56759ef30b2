package compare

import (
	"time"

	core "ddrconf/core/compare"
	"ddrconf/core/regtab"
)

// Names of the top-level sections, in dump declaration order.
const (
	SectionDdrcCfg    = "ddrc_cfg"
	SectionFspCfg     = "fsp_cfg"
	SectionDdrphyCfg  = "ddrphy_cfg"
	SectionFspMsg     = "fsp_msg"
	SectionTrainedCsr = "ddrphy_trained_csr"
	SectionPie        = "ddrphy_pie"
)

// SectionNames lists the top-level sections in report order.
var SectionNames = []string{
	SectionDdrcCfg,
	SectionFspCfg,
	SectionDdrphyCfg,
	SectionFspMsg,
	SectionTrainedCsr,
	SectionPie,
}

// TableResult is the comparison of one pair of register tables.
// The tables themselves are kept for rendering but excluded from the
// JSON body; the outcome carries everything a consumer needs.
type TableResult struct {
	Name    string        `json:"name"`
	Left    regtab.Table  `json:"-"`
	Right   regtab.Table  `json:"-"`
	Outcome *core.Outcome `json:"outcome"`
}

// ScalarDiff records one scalar field that differs between the sides.
type ScalarDiff struct {
	Field string `json:"field"`
	Left  int64  `json:"left"`
	Right int64  `json:"right"`
}

// Cardinality records the number of frequency set points on each side.
// Table comparisons under a section are skipped when the counts differ.
type Cardinality struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Mismatch reports whether the counts differ.
func (c Cardinality) Mismatch() bool { return c.Left != c.Right }

// Section is one top-level check of the report.
type Section struct {
	Name        string        `json:"name"`
	Cardinality *Cardinality  `json:"cardinality,omitempty"`
	Scalars     []ScalarDiff  `json:"scalars,omitempty"`
	Tables      []TableResult `json:"tables,omitempty"`
	Err         string        `json:"error,omitempty"`
}

// DiffCount sums the value differences of all tables in the section.
func (s Section) DiffCount() int {
	n := 0
	for _, t := range s.Tables {
		if t.Outcome != nil {
			n += t.Outcome.DiffCount
		}
	}
	return n
}

// Clean reports whether the section found nothing worth flagging.
func (s Section) Clean() bool {
	if s.Err != "" || len(s.Scalars) > 0 {
		return false
	}
	if s.Cardinality != nil && s.Cardinality.Mismatch() {
		return false
	}
	for _, t := range s.Tables {
		o := t.Outcome
		if o == nil || o.Result != core.ResultSameOrder || o.DiffCount != 0 {
			return false
		}
	}
	return true
}

// Report is the full comparison of two timing configurations.
type Report struct {
	RunID         string    `json:"run_id"`
	LeftName      string    `json:"left"`
	RightName     string    `json:"right"`
	LeftWarnings  []string  `json:"left_warnings,omitempty"`
	RightWarnings []string  `json:"right_warnings,omitempty"`
	Sections      []Section `json:"sections"`
	LeftTotal     int       `json:"left_total_bytes"`
	RightTotal    int       `json:"right_total_bytes"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Section returns the named top-level section, or nil.
func (r *Report) Section(name string) *Section {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}

// DiffCount sums the value differences across all sections.
func (r *Report) DiffCount() int {
	n := 0
	for _, s := range r.Sections {
		n += s.DiffCount()
	}
	return n
}
