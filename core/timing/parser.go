package timing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"ddrconf/core/regtab"
)

// ErrNoTables is returned when a dump contains no recognizable table
// sections at all, which usually means the wrong file was passed.
var ErrNoTables = errors.New("dump contains no recognizable tables")

var (
	metaRe     = regexp.MustCompile(`^entries=(\d+), size=(\d+) bytes$`)
	crcRe      = regexp.MustCompile(`^crc32=0x([0-9a-fA-F]{1,8})$`)
	entryRe    = regexp.MustCompile(`^\[\s*(\d+)\]=\{0x([0-9a-fA-F]+), 0x([0-9a-fA-F]+)\}$`)
	scalarRe   = regexp.MustCompile(`^(fsp_cfg|fsp_msg)\[(\d+)\]\.(bypass|drate|fw_type)=(-?\d+)$`)
	fspCfgRe   = regexp.MustCompile(`^fsp_cfg\[(\d+)\]\.ddrc_cfg$`)
	fspMsgRe   = regexp.MustCompile(`^fsp_msg\[(\d+)\]\.(fsp_phy_cfg|fsp_phy_msgh_cfg|fsp_phy_pie_cfg)$`)
	bannerRe   = regexp.MustCompile(`^═+$`)
	titleLines = map[string]bool{
		"DDR Configuration Dump Tool": true,
		"DUMP COMPLETE":               true,
	}
)

// Parse reads one dump document. Declared entry counts, sizes, and
// checksums that disagree with the parsed content are reported as
// warnings; the parse itself still succeeds so damaged dumps can be
// compared. An error is returned only when the input cannot be read or
// contains no table sections.
func Parse(r io.Reader) (*Timing, []string, error) {
	p := &parser{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.consume(strings.TrimRight(sc.Text(), "\r\n")); err != nil {
			return nil, p.warnings, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, p.warnings, fmt.Errorf("read dump: %w", err)
	}
	p.finish()

	if !p.sawTable {
		return nil, p.warnings, ErrNoTables
	}
	return &p.timing, p.warnings, nil
}

type parser struct {
	timing   Timing
	warnings []string
	line     int
	sawTable bool

	// Section state for the table currently receiving entries.
	cur     *regtab.Table
	declN   int
	declSz  int
	declCRC uint32
	hasMeta bool
	hasCRC  bool
}

func (p *parser) consume(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || bannerRe.MatchString(trimmed) || titleLines[trimmed] {
		return nil
	}

	switch {
	case metaRe.MatchString(trimmed):
		m := metaRe.FindStringSubmatch(trimmed)
		if p.cur == nil {
			p.warnf("metadata line outside a table section")
			return nil
		}
		p.declN, _ = strconv.Atoi(m[1])
		p.declSz, _ = strconv.Atoi(m[2])
		p.hasMeta = true

	case crcRe.MatchString(trimmed):
		m := crcRe.FindStringSubmatch(trimmed)
		if p.cur == nil {
			p.warnf("checksum line outside a table section")
			return nil
		}
		crc, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			return fmt.Errorf("checksum %q: %w", m[1], err)
		}
		p.declCRC = uint32(crc)
		p.hasCRC = true

	case entryRe.MatchString(trimmed):
		m := entryRe.FindStringSubmatch(trimmed)
		if p.cur == nil {
			p.warnf("register entry outside a table section")
			return nil
		}
		idx, _ := strconv.Atoi(m[1])
		addr, err := strconv.ParseUint(m[2], 16, 32)
		if err != nil {
			return fmt.Errorf("address %q: %w", m[2], err)
		}
		val, err := strconv.ParseUint(m[3], 16, 32)
		if err != nil {
			return fmt.Errorf("value %q: %w", m[3], err)
		}
		if idx != len(p.cur.Entries) {
			p.warnf("%s: entry index %d out of sequence (expected %d)", p.cur.Name, idx, len(p.cur.Entries))
		}
		p.cur.Entries = append(p.cur.Entries, regtab.Entry{Addr: uint32(addr), Val: uint32(val)})

	case scalarRe.MatchString(trimmed):
		m := scalarRe.FindStringSubmatch(trimmed)
		return p.scalar(m[1], m[2], m[3], m[4])

	default:
		if tab, ok := p.openTable(trimmed); ok {
			p.cur = tab
			p.sawTable = true
			return nil
		}
		p.warnf("unrecognized line %q", trimmed)
	}
	return nil
}

// openTable resolves a table-name line to its slot in the timing
// aggregate, growing the set-point slices as needed. Growing must
// happen while no section is open since it can move earlier slots.
func (p *parser) openTable(name string) (*regtab.Table, bool) {
	switch name {
	case "ddrc_cfg", "ddrphy_cfg", "ddrphy_trained_csr", "ddrphy_pie":
	default:
		if !fspCfgRe.MatchString(name) && !fspMsgRe.MatchString(name) {
			return nil, false
		}
	}
	p.finish()

	var tab *regtab.Table
	kind := regtab.Phy
	switch {
	case name == "ddrc_cfg":
		tab, kind = &p.timing.DdrcCfg, regtab.Ctrl
	case name == "ddrphy_cfg":
		tab = &p.timing.DdrphyCfg
	case name == "ddrphy_trained_csr":
		tab = &p.timing.TrainedCsr
	case name == "ddrphy_pie":
		tab = &p.timing.Pie
	case fspCfgRe.MatchString(name):
		m := fspCfgRe.FindStringSubmatch(name)
		i, _ := strconv.Atoi(m[1])
		p.growFspCfg(i)
		tab, kind = &p.timing.FspCfg[i].DdrcCfg, regtab.Ctrl
	case fspMsgRe.MatchString(name):
		m := fspMsgRe.FindStringSubmatch(name)
		i, _ := strconv.Atoi(m[1])
		p.growFspMsg(i)
		msg := &p.timing.FspMsg[i]
		switch m[2] {
		case "fsp_phy_cfg":
			tab = &msg.PhyCfg
		case "fsp_phy_msgh_cfg":
			tab = &msg.MsghCfg
		default:
			tab = &msg.PieCfg
		}
	default:
		return nil, false
	}

	tab.Name = name
	tab.Kind = kind
	if len(tab.Entries) > 0 {
		p.warnf("%s: duplicate table section, previous content replaced", name)
		tab.Entries = nil
	}
	return tab, true
}

func (p *parser) scalar(group, index, field, value string) error {
	p.finish()

	i, _ := strconv.Atoi(index)
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("%s[%d].%s=%q: %w", group, i, field, value, err)
	}

	switch field {
	case "bypass":
		p.growFspCfg(i)
		p.timing.FspCfg[i].Bypass = uint32(v)
	case "drate":
		p.growFspMsg(i)
		p.timing.FspMsg[i].Drate = uint32(v)
	case "fw_type":
		p.growFspMsg(i)
		p.timing.FspMsg[i].FwType = int(v)
	}
	return nil
}

func (p *parser) growFspCfg(i int) {
	for len(p.timing.FspCfg) <= i {
		n := len(p.timing.FspCfg)
		p.timing.FspCfg = append(p.timing.FspCfg, FspPoint{
			DdrcCfg: regtab.Table{Name: fmt.Sprintf("fsp_cfg[%d].ddrc_cfg", n), Kind: regtab.Ctrl},
		})
	}
}

func (p *parser) growFspMsg(i int) {
	for len(p.timing.FspMsg) <= i {
		n := len(p.timing.FspMsg)
		p.timing.FspMsg = append(p.timing.FspMsg, FspMsg{
			PhyCfg:  regtab.Table{Name: fmt.Sprintf("fsp_msg[%d].fsp_phy_cfg", n), Kind: regtab.Phy},
			MsghCfg: regtab.Table{Name: fmt.Sprintf("fsp_msg[%d].fsp_phy_msgh_cfg", n), Kind: regtab.Phy},
			PieCfg:  regtab.Table{Name: fmt.Sprintf("fsp_msg[%d].fsp_phy_pie_cfg", n), Kind: regtab.Phy},
		})
	}
}

// finish closes the open table section and verifies its declared
// metadata against what was actually parsed.
func (p *parser) finish() {
	if p.cur == nil {
		return
	}
	if p.hasMeta {
		if p.declN != p.cur.Len() {
			p.warnf("%s: declared %d entries, parsed %d", p.cur.Name, p.declN, p.cur.Len())
		}
		if p.declSz != p.cur.Size() {
			p.warnf("%s: declared size %d bytes, computed %d", p.cur.Name, p.declSz, p.cur.Size())
		}
	}
	if p.hasCRC {
		if got := p.cur.Checksum(); got != p.declCRC {
			p.warnf("%s: declared crc32 0x%08x, computed 0x%08x", p.cur.Name, p.declCRC, got)
		}
	}
	p.cur = nil
	p.hasMeta = false
	p.hasCRC = false
}

func (p *parser) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}
