package segcover_test

import (
	"fmt"

	"github.com/lowerbound/minima/segcover"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCover
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three segments chained by single shared coordinates:
//	  (1,2), (2,3), (3,4)
//
// Effect:
//
//	Point 2 covers the first two segments; (3,4) starts beyond 2, so the
//	sweep selects its right endpoint 4 as a second point.
//
// Complexity: O(n log n) time, O(n) memory
func ExampleCover() {
	segments := []segcover.Interval{{Start: 1, End: 2}, {Start: 2, End: 3}, {Start: 3, End: 4}}

	res, err := segcover.Cover(segments, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("count=%d points=%v\n", res.Count, res.Points)
	// Output:
	// count=2 points=[2 4]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCover_nested
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Segments sharing a common stretch:
//	  (1,10), (3,7), (5,6)
//
// Effect:
//
//	The smallest right endpoint (6) lies inside every segment, so one point
//	suffices.
func ExampleCover_nested() {
	segments := []segcover.Interval{{Start: 1, End: 10}, {Start: 3, End: 7}, {Start: 5, End: 6}}

	res, _ := segcover.Cover(segments, nil)
	fmt.Printf("count=%d points=%v\n", res.Count, res.Points)
	// Output:
	// count=1 points=[6]
}
