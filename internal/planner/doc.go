// Package planner computes day-by-day delivery plans for three upgrade tools.
//
// Each day at most DailyCap units may be added across the three tools, and no
// tool may be raised above the common per-tool target. The planner keeps the
// tools as level as the budget allows and generates deterministic plans: the
// same inputs always yield the same sequence of days.
//
// Key responsibilities:
//   - Allocate one day's additions under the daily cap (Allocate)
//   - Split a day's additions into delivery chunks of at most ChunkSize (SplitChunks)
//   - Repeat daily allocation until every tool reaches its target (BuildPlan)
//
// The package is pure: it performs no I/O and keeps no state between calls.
package planner
