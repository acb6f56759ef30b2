// Package history persists comparison results so configuration drift
// can be tracked across firmware releases.
//
// Every recorded run stores one row per compared table: the outcome
// class, the value-difference count, and each side's entry count and
// CRC. The rows are enough to answer "when did ddrphy_pie start
// drifting" without re-parsing old dump files.
//
// # HTTP Endpoints
//
//   - GET /history : the most recent runs, newest first.
//   - GET /history/:run : all rows of one run.
//
// The feature is optional; it stays disabled when no database is
// configured.
package history
