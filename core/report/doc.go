// Package report renders finished comparison outcomes as a hierarchical
// text report.
//
// The renderer is strictly a consumer: every outcome is fully computed by
// the comparison engine before rendering starts, so printing never
// interleaves with analysis. Sections are framed with box-drawing
// characters, severity is carried by E:/W:/I: prefixes with ANSI colors,
// and unique or relocated registers are shown side by side in LEFT/RIGHT
// columns sized per register kind.
//
// # Nesting
//
// A structural mismatch opens a nested "Comparing common registers" box
// holding the comparison of the shared registers, indented one level.
// The engine limits that recursion to one level, so the visual nesting is
// bounded as well.
//
// # Options
//
// All rendering policy is carried explicitly by Options: color on or off,
// duplicate lists expanded or summarized, long matched runs shown or
// elided, and the per-block display cap. There are no package globals.
package report
