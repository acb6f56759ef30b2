package regtab

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKind_Widths verifies the per-kind formatting and layout constants.
func TestKind_Widths(t *testing.T) {
	assert.Equal(t, 8, Ctrl.EntrySize())
	assert.Equal(t, 6, Phy.EntrySize())
	assert.Equal(t, "ctrl", Ctrl.String())
	assert.Equal(t, "phy", Phy.String())

	assert.Equal(t, "0x3d400000", Ctrl.FormatAddr(0x3d400000))
	assert.Equal(t, "0x200b2", Phy.FormatAddr(0x200b2))
	assert.Equal(t, "0x00000a01", Ctrl.FormatVal(0xa01))
	assert.Equal(t, "0x0003", Phy.FormatVal(0x3))
}

func TestKind_FormatEntry(t *testing.T) {
	e := Entry{Addr: 0x50, Val: 0x210}
	assert.Equal(t, "[  3] Reg 0x00000050 = 0x00000210", Ctrl.FormatEntry(3, 3, e))
	assert.Equal(t, "[ 12] Reg 0x00050: 0x0210 → 0x0218", Phy.FormatDelta(12, 3, 0x50, 0x210, 0x218))
}

// TestTable_Bytes verifies the packed little-endian layouts the checksums
// are computed over.
func TestTable_Bytes(t *testing.T) {
	ctrl := Table{Kind: Ctrl, Entries: []Entry{{Addr: 0x01020304, Val: 0x0a0b0c0d}}}
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01, 0x0d, 0x0c, 0x0b, 0x0a}, ctrl.Bytes())
	assert.Equal(t, 8, ctrl.Size())

	phy := Table{Kind: Phy, Entries: []Entry{{Addr: 0x01020304, Val: 0xbeef}}}
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01, 0xef, 0xbe}, phy.Bytes())
	assert.Equal(t, 6, phy.Size())
}

// TestTable_Checksum verifies the checksum is the IEEE CRC-32 of the
// serialized bytes and reacts to value changes.
func TestTable_Checksum(t *testing.T) {
	tab := Table{Kind: Ctrl, Entries: []Entry{{Addr: 0x10, Val: 0x20}, {Addr: 0x14, Val: 0x30}}}
	require.Equal(t, crc32.ChecksumIEEE(tab.Bytes()), tab.Checksum())

	changed := Table{Kind: Ctrl, Entries: []Entry{{Addr: 0x10, Val: 0x20}, {Addr: 0x14, Val: 0x31}}}
	assert.NotEqual(t, tab.Checksum(), changed.Checksum())

	empty := Table{Kind: Phy}
	assert.Equal(t, uint32(0), empty.Checksum())
	assert.Equal(t, 0, empty.Len())
}
