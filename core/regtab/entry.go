package regtab

import "fmt"

// Kind is the register width class of a table.
// It affects formatting and byte layout, never comparison logic.
type Kind int

const (
	// Ctrl is a DDR controller table (32-bit addresses, 32-bit values).
	Ctrl Kind = iota
	// Phy is a DDR PHY table (20-bit addresses, 16-bit values).
	Phy
)

func (k Kind) String() string {
	switch k {
	case Ctrl:
		return "ctrl"
	case Phy:
		return "phy"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// EntrySize returns the serialized size of one entry in bytes.
// Ctrl entries are two 32-bit words; Phy entries are packed to six bytes,
// matching the firmware structs the dump tool serializes.
func (k Kind) EntrySize() int {
	if k == Phy {
		return 6
	}
	return 8
}

// AddrDigits returns the number of hex digits used to format an address.
func (k Kind) AddrDigits() int {
	if k == Phy {
		return 5
	}
	return 8
}

// ValDigits returns the number of hex digits used to format a value.
func (k Kind) ValDigits() int {
	if k == Phy {
		return 4
	}
	return 8
}

// ColumnWidth returns the column width used for side-by-side display.
func (k Kind) ColumnWidth() int {
	if k == Phy {
		return 37
	}
	return 40
}

// FormatAddr formats a register address at the kind's width.
func (k Kind) FormatAddr(addr uint32) string {
	return fmt.Sprintf("0x%0*x", k.AddrDigits(), addr)
}

// FormatVal formats a register value at the kind's width.
func (k Kind) FormatVal(val uint32) string {
	return fmt.Sprintf("0x%0*x", k.ValDigits(), val)
}

// Entry is one immutable (address, value) register configuration pair.
type Entry struct {
	Addr uint32 `json:"addr"`
	Val  uint32 `json:"val"`
}

// FormatEntry renders an entry with its position, e.g.
// "[  3] Reg 0x00000050 = 0x00000210". idxWidth is the index field width.
func (k Kind) FormatEntry(idx, idxWidth int, e Entry) string {
	return fmt.Sprintf("[%*d] Reg %s = %s", idxWidth, idx, k.FormatAddr(e.Addr), k.FormatVal(e.Val))
}

// FormatDelta renders a value change for one address, e.g.
// "[  3] Reg 0x00000050: 0x00000210 → 0x00000218".
func (k Kind) FormatDelta(idx, idxWidth int, addr, oldVal, newVal uint32) string {
	return fmt.Sprintf("[%*d] Reg %s: %s → %s", idxWidth, idx, k.FormatAddr(addr), k.FormatVal(oldVal), k.FormatVal(newVal))
}
