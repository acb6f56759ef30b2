// Package compare implements the register array comparison engine.
//
// Given two ordered register sequences (LEFT and RIGHT), the engine decides
// whether they contain the same registers, in the same order, with the same
// values, and produces a structured Outcome when they do not. The engine is
// pure: it performs no I/O, never mutates its inputs, and is identical for
// both register width classes (see package regtab).
//
// # Pipeline
//
// A single Compare call walks an explicit state machine:
//
//  1. Duplicate scan on each side (advisory only, attached to the Outcome).
//  2. Length check. Differing lengths are a structural mismatch; the common
//     subsequences are extracted and compared recursively (one level deep)
//     so the report can still show value drift inside the shared registers.
//  3. Set check. Equal lengths do not imply equal address sets; sequences of
//     equal size with different registers are also a structural mismatch.
//  4. Order check. Identical sets in identical positions go straight to the
//     positional value diff; otherwise the block aligner partitions the
//     mismatched region into relocated blocks before values are diffed by
//     address lookup.
//
// Structural mismatch, reordering, value drift, and duplicate registers are
// all normal, reportable outcomes. The only error the engine itself raises
// is an internal consistency fault from the common-subset extraction, which
// abandons that branch and is surfaced on the Outcome.
//
// # Block alignment
//
// AlignBlocks is a bounded-lookahead heuristic, not an optimal LCS. It
// trades global optimality for O(n·window) running time, which is adequate
// because reordered register blocks in practice are short contiguous
// relocations rather than scrambled individual entries. The window is a
// tunable (see Config); relocations displaced further than the window are
// reported as a pair of one-sided blocks instead of one move.
package compare
