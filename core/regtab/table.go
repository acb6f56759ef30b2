package regtab

import (
	"encoding/binary"
	"hash/crc32"
)

// Table is an ordered register sequence with a name and a width class.
// Addresses are not required to be unique; duplicates are legal and are
// flagged by the comparison engine.
type Table struct {
	Name    string  `json:"name"`
	Kind    Kind    `json:"kind"`
	Entries []Entry `json:"entries"`
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.Entries)
}

// Size returns the serialized size of the table in bytes.
func (t Table) Size() int {
	return len(t.Entries) * t.Kind.EntrySize()
}

// Bytes serializes the entries little-endian at the kind's entry width.
// The layout matches the packed firmware structs, so checksums computed
// over it line up with the ones the dump tool prints.
func (t Table) Bytes() []byte {
	buf := make([]byte, 0, t.Size())
	for _, e := range t.Entries {
		buf = binary.LittleEndian.AppendUint32(buf, e.Addr)
		if t.Kind == Phy {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(e.Val))
		} else {
			buf = binary.LittleEndian.AppendUint32(buf, e.Val)
		}
	}
	return buf
}

// Checksum returns the IEEE CRC-32 of the serialized table.
func (t Table) Checksum() uint32 {
	return crc32.ChecksumIEEE(t.Bytes())
}
