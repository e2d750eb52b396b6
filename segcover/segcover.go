package segcover

import (
	"fmt"
	"sort"

	"github.com/lowerbound/minima/trace"
)

// Cover computes a minimum-cardinality set of integer points such that every
// interval in intervals contains at least one point.
//
// Algorithm Outline (greedy earliest-finish-time):
//  1. Validate every interval: Start <= End. Fail fast on the first
//     violation with ErrInvalidInterval (no partial result).
//  2. Stable-sort a private copy ascending by End; ties keep input order,
//     so the outcome is deterministic for identical input.
//  3. Sweep left to right keeping the last chosen point. Whenever the next
//     segment starts beyond that point (or no point exists yet), choose the
//     segment's End as a new point and append it to the result.
//
// Optimality follows from the exchange argument: the segment with the
// smallest right endpoint must contain some chosen point, and its own right
// endpoint covers a superset of the segments any alternative choice covers.
//
// Returns:
//
//   - Result{Count, Points} with Points in selection order. An empty input
//     yields Result{0, []int{}} and no error.
//   - error wrapping ErrInvalidInterval naming the offending index and
//     endpoints, in which case no points were computed.
//
// The caller's slice is never mutated. sink may be nil; progress checkpoints
// (validation start/end, per-segment decision, final summary with the
// segments-per-point ratio) are observability only.
//
// Complexity:
//
//   - Time:   O(n log n)
//   - Memory: O(n)
func Cover(intervals []Interval, sink trace.Sink) (Result, error) {
	log := trace.OrNop(sink)

	log.Infof("starting minimum point cover calculation")
	n := len(intervals)
	log.Infof("processing %d segments", n)

	if n == 0 {
		log.Warnf("empty segment list provided")

		return Result{Count: 0, Points: []int{}}, nil
	}

	// 1) Validate all segments before selecting anything.
	log.Infof("validating segments")
	var (
		i  int
		iv Interval
	)
	for i, iv = range intervals {
		log.Debugf("validating segment %d/%d: (%d, %d)", i+1, n, iv.Start, iv.End)
		if iv.Start > iv.End {
			log.Errorf("segment %d has start > end: (%d, %d)", i, iv.Start, iv.End)

			return Result{}, fmt.Errorf("%w: segment %d (%d, %d)", ErrInvalidInterval, i, iv.Start, iv.End)
		}
	}
	log.Infof("validated %d segments", n)

	// 2) Sort a working copy by right endpoint; stable keeps tie order.
	log.Infof("sorting segments by right endpoint")
	sorted := make([]Interval, n)
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].End < sorted[j].End })

	// 3) Left-to-right sweep.
	points := make([]int, 0, n)
	current := 0
	covered := false // whether current holds a chosen point
	for i, iv = range sorted {
		log.Debugf("processing segment %d/%d: (%d, %d)", i+1, n, iv.Start, iv.End)
		if !covered || current < iv.Start {
			current = iv.End
			covered = true
			points = append(points, current)
			log.Debugf("selected new point %d for segment (%d, %d), total %d", current, iv.Start, iv.End, len(points))
		} else {
			log.Debugf("point %d already covers segment (%d, %d)", current, iv.Start, iv.End)
		}
	}

	res := Result{Count: len(points), Points: points}
	log.Infof("point selection complete: %d points %v", res.Count, res.Points)
	if res.Count > 0 {
		log.Infof("coverage efficiency: %.2f segments per point", float64(n)/float64(res.Count))
	}

	return res, nil
}
