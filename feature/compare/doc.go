// Package compare orchestrates the comparison of two complete DRAM
// timing configurations.
//
// The core engine compares one register table at a time; this feature
// walks the whole timing aggregate the way the dump lays it out:
//
//   - ddrc_cfg: the main controller table
//   - fsp_cfg: per-set-point controller tables plus the bypass flag,
//     guarded by a set-point cardinality check
//   - ddrphy_cfg: the main PHY table
//   - fsp_msg: per-set-point training blocks (drate and fw_type scalars
//     plus three PHY tables), guarded by a cardinality check
//   - ddrphy_trained_csr and ddrphy_pie
//
// The six top-level sections are computed concurrently; a failing or
// panicking section never takes its siblings down, it is reported in
// place. Rendering always happens afterwards in declaration order, so
// the text report is deterministic regardless of scheduling.
//
// # HTTP Endpoints
//
//   - GET /compare : full comparison report as JSON.
//   - GET /compare/:section : one top-level section.
//   - GET /dumps : list the dump files available in the bucket.
//
// Parsed dump documents are cached with a TTL and singleflight so
// concurrent requests do not re-fetch and re-parse the same objects.
package compare
