// Package segcover computes a minimum set of integer points covering a
// family of closed integer intervals (the "segment cover" problem).
//
// 🚀 What is a point cover?
//
//	Given segments [start, end], find the fewest integer points such that
//	every segment contains at least one of them.  Classic applications:
//	  • Placing the fewest inspection stops along overlapping routes
//	  • Stabbing queries / interval piercing
//	  • Scheduling a minimum number of checkpoints
//
// ✨ Key properties:
//   - greedy earliest-finish-time sweep, provably optimal
//   - deterministic: stable sort by right endpoint, selection order preserved
//   - input is never mutated; each call works on a private sorted copy
//   - fail-fast validation: any segment with Start > End aborts the call
//
// ⚙️ Usage:
//
//	import "github.com/lowerbound/minima/segcover"
//
//	res, err := segcover.Cover([]segcover.Interval{{1, 3}, {2, 5}, {3, 6}}, nil)
//	if err != nil {
//	  // handle ErrInvalidInterval
//	}
//	fmt.Println(res.Count, res.Points)
//
// Complexity:
//
//   - Time:   O(n log n) (dominated by the sort)
//   - Memory: O(n) for the sorted working copy
//
// Progress checkpoints (validation start/end, per-segment decision, summary)
// are reported to the injected trace.Sink; pass nil to discard them.
package segcover
