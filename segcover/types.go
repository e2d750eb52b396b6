// Package segcover defines the interval and result types for the
// minimum point cover solver.
//
// Errors (sentinel):
//
//	– ErrInvalidInterval if a segment presented to Cover has Start > End.
//	  The returned error wraps the sentinel and names the offending index
//	  and endpoints; match it with errors.Is.
package segcover

import "errors"

// ErrInvalidInterval indicates a segment whose start exceeds its end was
// handed directly to the solver. Normalization is an upstream (segio)
// responsibility; the solver itself rejects such input outright.
var ErrInvalidInterval = errors.New("segcover: interval start exceeds end")

// Interval is a closed integer range [Start, End].
// The solver requires Start <= End; intervals are value types and are never
// mutated once constructed.
type Interval struct {
	Start int
	End   int
}

// Contains reports whether point p lies inside the closed interval.
func (iv Interval) Contains(p int) bool {
	return iv.Start <= p && p <= iv.End
}

// Result is the outcome of one Cover call.
//
// Points holds the selected covering points in selection order — the order
// produced by the single left-to-right sweep over segments sorted by right
// endpoint. That order is part of the observable contract.
// Count always equals len(Points).
type Result struct {
	Count  int
	Points []int
}
