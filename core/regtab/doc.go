// Package regtab defines the register table model shared by the comparison
// engine, the dump parser, and the report renderer.
//
// A table is an ordered list of (address, value) register pairs plus a width
// class. Two width classes exist, matching the controller and PHY register
// files of the DDR subsystem:
//
//   - Ctrl: 32-bit addresses, 32-bit values (8 bytes per entry)
//   - Phy:  20-bit addresses, 16-bit values (packed, 6 bytes per entry)
//
// The width class drives display formatting and byte serialization only.
// Nothing else in the toolkit branches on it: the comparison engine treats
// both kinds identically.
//
// # Checksums
//
// Table checksums are IEEE CRC-32 over the little-endian serialization of
// the entries, byte-for-byte compatible with the checksums printed by the
// firmware-side dump tool.
package regtab
