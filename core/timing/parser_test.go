package timing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ddrconf/core/regtab"
)

func ctrlTable(name string, pairs ...uint32) regtab.Table {
	t := regtab.Table{Name: name, Kind: regtab.Ctrl}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Entries = append(t.Entries, regtab.Entry{Addr: pairs[i], Val: pairs[i+1]})
	}
	return t
}

func phyTable(name string, pairs ...uint32) regtab.Table {
	t := ctrlTable(name, pairs...)
	t.Kind = regtab.Phy
	return t
}

// section renders one table the way the dump tool does, with correct
// metadata unless the caller mangles it afterwards.
func section(tab regtab.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", tab.Name)
	fmt.Fprintf(&b, "entries=%d, size=%d bytes\n", tab.Len(), tab.Size())
	fmt.Fprintf(&b, "crc32=0x%08x\n", tab.Checksum())
	for i, e := range tab.Entries {
		fmt.Fprintf(&b, "[%4d]={%s, %s}\n", i, tab.Kind.FormatAddr(e.Addr), tab.Kind.FormatVal(e.Val))
	}
	return b.String()
}

// TestParse_FullDump parses a complete document with every section kind
// and verifies the assembled aggregate.
func TestParse_FullDump(t *testing.T) {
	var b strings.Builder
	b.WriteString("═══════════\nDDR Configuration Dump Tool\n═══════════\n")
	b.WriteString(section(ctrlTable("ddrc_cfg", 0x3d400304, 0x1, 0x3d400030, 0x20)))
	b.WriteString(section(ctrlTable("fsp_cfg[0].ddrc_cfg", 0x3d400064, 0x7a0118)))
	b.WriteString("\nfsp_cfg[0].bypass=1\n")
	b.WriteString(section(phyTable("ddrphy_cfg", 0x100a0, 0x2, 0x100a1, 0x3)))
	b.WriteString("\nfsp_msg[0].drate=6400\nfsp_msg[0].fw_type=0\n")
	b.WriteString(section(phyTable("fsp_msg[0].fsp_phy_cfg", 0x200b2, 0x3)))
	b.WriteString(section(phyTable("fsp_msg[0].fsp_phy_msgh_cfg", 0xd0000, 0x1)))
	b.WriteString(section(phyTable("fsp_msg[0].fsp_phy_pie_cfg", 0x90000, 0x10)))
	b.WriteString(section(phyTable("ddrphy_trained_csr", 0x10043, 0x5a)))
	b.WriteString(section(phyTable("ddrphy_pie", 0x90029, 0xb)))
	b.WriteString("\n═══════════\nDUMP COMPLETE\n═══════════\n")

	tm, warnings, err := Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, 2, tm.DdrcCfg.Len())
	assert.Equal(t, regtab.Ctrl, tm.DdrcCfg.Kind)
	assert.Equal(t, regtab.Entry{Addr: 0x3d400304, Val: 0x1}, tm.DdrcCfg.Entries[0])

	require.Len(t, tm.FspCfg, 1)
	assert.Equal(t, uint32(1), tm.FspCfg[0].Bypass)
	assert.Equal(t, regtab.Ctrl, tm.FspCfg[0].DdrcCfg.Kind)
	assert.Equal(t, 1, tm.FspCfg[0].DdrcCfg.Len())

	require.Len(t, tm.FspMsg, 1)
	msg := tm.FspMsg[0]
	assert.Equal(t, uint32(6400), msg.Drate)
	assert.Equal(t, 0, msg.FwType)
	assert.Equal(t, regtab.Phy, msg.PhyCfg.Kind)
	assert.Equal(t, regtab.Entry{Addr: 0x200b2, Val: 0x3}, msg.PhyCfg.Entries[0])
	assert.Equal(t, 1, msg.MsghCfg.Len())
	assert.Equal(t, 1, msg.PieCfg.Len())

	assert.Equal(t, 1, tm.TrainedCsr.Len())
	assert.Equal(t, 1, tm.Pie.Len())
	assert.Len(t, tm.Tables(), 8)
	assert.Equal(t, 2*8+8+2*6+6*5, tm.TotalSize())
}

// TestParse_MetadataMismatch verifies that wrong declared counts, sizes,
// and checksums are surfaced as warnings while the parse succeeds.
func TestParse_MetadataMismatch(t *testing.T) {
	tab := ctrlTable("ddrc_cfg", 0x10, 0x20)
	dump := fmt.Sprintf("ddrc_cfg\nentries=%d, size=%d bytes\ncrc32=0x%08x\n[   0]={0x00000010, 0x00000020}\n",
		tab.Len()+1, tab.Size()+8, tab.Checksum()^1)

	tm, warnings, err := Parse(strings.NewReader(dump))
	require.NoError(t, err)
	assert.Equal(t, 1, tm.DdrcCfg.Len())

	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "declared 2 entries, parsed 1")
	assert.Contains(t, warnings[1], "declared size 16 bytes, computed 8")
	assert.Contains(t, warnings[2], "declared crc32")
}

// TestParse_OutOfSequence flags a gap in the entry indices without
// losing the entry.
func TestParse_OutOfSequence(t *testing.T) {
	dump := "ddrc_cfg\n[   0]={0x00000010, 0x00000020}\n[   2]={0x00000014, 0x00000030}\n"

	tm, warnings, err := Parse(strings.NewReader(dump))
	require.NoError(t, err)
	assert.Equal(t, 2, tm.DdrcCfg.Len())
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "index 2 out of sequence (expected 1)")
}

// TestParse_StrayLines verifies content outside any section warns
// instead of failing.
func TestParse_StrayLines(t *testing.T) {
	dump := "[   0]={0x00000010, 0x00000020}\nnot a dump line\nddrc_cfg\n[   0]={0x00000010, 0x00000020}\n"

	tm, warnings, err := Parse(strings.NewReader(dump))
	require.NoError(t, err)
	assert.Equal(t, 1, tm.DdrcCfg.Len())
	assert.Len(t, warnings, 2)
}

func TestParse_NoTables(t *testing.T) {
	_, _, err := Parse(strings.NewReader("just some text\n"))
	assert.ErrorIs(t, err, ErrNoTables)
}

// TestWriteDump_RoundTrip serializes an aggregate and parses it back
// without warnings.
func TestWriteDump_RoundTrip(t *testing.T) {
	in := &Timing{
		DdrcCfg: ctrlTable("ddrc_cfg", 0x3d400304, 0x1),
		FspCfg: []FspPoint{
			{DdrcCfg: ctrlTable("fsp_cfg[0].ddrc_cfg", 0x3d400064, 0x7a0118), Bypass: 1},
			{DdrcCfg: ctrlTable("fsp_cfg[1].ddrc_cfg", 0x3d400064, 0x610090), Bypass: 0},
		},
		DdrphyCfg: phyTable("ddrphy_cfg", 0x100a0, 0x2),
		FspMsg: []FspMsg{{
			Drate:   6400,
			FwType:  0,
			PhyCfg:  phyTable("fsp_msg[0].fsp_phy_cfg", 0x200b2, 0x3),
			MsghCfg: phyTable("fsp_msg[0].fsp_phy_msgh_cfg", 0xd0000, 0x1),
			PieCfg:  phyTable("fsp_msg[0].fsp_phy_pie_cfg", 0x90000, 0x10),
		}},
		TrainedCsr: phyTable("ddrphy_trained_csr", 0x10043, 0x5a),
		Pie:        phyTable("ddrphy_pie", 0x90029, 0xb),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, in))

	out, warnings, err := Parse(&buf)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, in, out)
}

type stringSource struct{ dump string }

func (s stringSource) Open(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.dump)), nil
}

func TestLoad(t *testing.T) {
	src := stringSource{dump: "ddrc_cfg\n[   0]={0x00000010, 0x00000020}\n"}

	tm, warnings, err := Load(context.Background(), src, "left.dump")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 1, tm.DdrcCfg.Len())
}
