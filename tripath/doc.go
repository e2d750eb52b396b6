// Package tripath computes the minimum top-to-bottom path sum in a number
// triangle and reconstructs one optimal path.
//
// A triangle is a jagged grid where row i holds i+1 entries; a path starts at
// the single top entry and descends one row at a time to the same or the next
// column. The solver fills a DP table bottom-up (each cell holds the best sum
// achievable from that cell to the bottom row) and then walks the table
// top-down to recover a concrete path.
//
// When two branches tie, reconstruction prefers staying in the same column.
// Several optimal paths may exist in that case; the reported one always
// totals to the minimum sum.
//
// Unexpected computation faults are not propagated: the solver recovers them
// into a sentinel Solution (Total = FailedTotal, empty path) so callers can
// detect failure by value inspection.
//
// Complexity: O(n²) time and memory for n rows.
package tripath
