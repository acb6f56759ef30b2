// Package timing models a full DRAM timing configuration and parses the
// text dumps the firmware dump tool emits.
//
// # Data model
//
// Timing mirrors the firmware's dram_timing_info aggregate: the main
// controller table, the per-frequency-set-point controller tables with
// their bypass flags, the PHY configuration, the per-set-point PHY
// training message blocks (data rate, firmware type, three PHY tables),
// the trained CSR snapshot, and the PHY instruction engine table.
//
// # Dump format
//
// A dump is a sequence of table sections, each introduced by the table
// name on its own line followed by declared metadata:
//
//	ddrc_cfg
//	entries=3, size=24 bytes
//	crc32=0x1a2b3c4d
//	[   0]={0x3d400304, 0x00000001}
//	...
//
// Scalar fields appear as standalone assignment lines, e.g.
// "fsp_cfg[0].bypass=0". Banner and title lines are ignored. Declared
// entry counts, sizes, and checksums are verified against the parsed
// content; disagreement produces warnings, not errors, so a truncated
// or hand-edited dump can still be compared.
//
// # Sources
//
// The Source interface abstracts where dumps live. FileSource reads
// from the local filesystem; ObjectSource reads from a storage bucket,
// which is how the server mode fetches its inputs.
package timing
