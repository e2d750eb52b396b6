package gen

import (
	"math/rand"

	"github.com/lowerbound/minima/segcover"
	"github.com/lowerbound/minima/tripath"
)

// Intervals returns n random closed intervals with endpoints drawn from
// [lo, hi], normalized so Start <= End.
func Intervals(rng *rand.Rand, n, lo, hi int) []segcover.Interval {
	out := make([]segcover.Interval, n)
	span := hi - lo + 1
	for i := range out {
		a := lo + rng.Intn(span)
		b := lo + rng.Intn(span)
		if a > b {
			a, b = b, a
		}
		out[i] = segcover.Interval{Start: a, End: b}
	}

	return out
}

// Triangle returns a triangle with the given number of rows and entries
// drawn from [lo, hi].
func Triangle(rng *rand.Rand, rows, lo, hi int) tripath.Triangle {
	tri := make(tripath.Triangle, rows)
	span := hi - lo + 1
	for i := range tri {
		tri[i] = make([]int, i+1)
		for j := range tri[i] {
			tri[i][j] = lo + rng.Intn(span)
		}
	}

	return tri
}

// Sequence returns n random integers drawn from [lo, hi]. With lo=1, hi=26
// it produces letter codes for the alphaseg solver.
func Sequence(rng *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	span := hi - lo + 1
	for i := range out {
		out[i] = lo + rng.Intn(span)
	}

	return out
}
