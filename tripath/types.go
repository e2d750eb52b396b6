package tripath

import "math"

// FailedTotal is the sentinel Total reported when the solver recovered an
// internal fault. A well-formed triangle can never legitimately sum to it.
const FailedTotal = math.MaxInt

// Triangle is a jagged grid of integers: row i (0-indexed from the top) must
// hold exactly i+1 entries. A triangle with zero rows, or whose first row is
// empty, is the degenerate "no path" case, not an error. Shapes that violate
// the row-length rule beyond that are not policed; callers validate upstream.
type Triangle [][]int

// Rows returns the number of rows.
func (t Triangle) Rows() int { return len(t) }

// Degenerate reports whether t is the empty "no path" case.
func (t Triangle) Degenerate() bool {
	return len(t) == 0 || len(t[0]) == 0
}

// Solution is the outcome of one Solve call.
//
// Path holds one optimal sequence of entries, one per row from top to bottom;
// Total equals the sum of Path and the minimum achievable over all valid
// paths. A degenerate triangle yields {0, []}.
type Solution struct {
	Total int
	Path  []int
}

// Failed reports whether s is the sentinel produced by a recovered
// computation fault.
func (s Solution) Failed() bool {
	return s.Total == FailedTotal && len(s.Path) == 0
}
