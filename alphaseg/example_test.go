package alphaseg_test

import (
	"fmt"

	"github.com/lowerbound/minima/alphaseg"
)

// ExampleShortest demonstrates the sliding window on an alphabet with a
// duplicated prefix: the leading copy of A is dropped from the best window.
func ExampleShortest() {
	seq := []int{1}
	for c := 1; c <= 26; c++ {
		seq = append(seq, c)
	}

	length, err := alphaseg.Shortest(seq, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("shortest:", length)
	// Output:
	// shortest: 26
}

// ExampleOddTerm prints the first odd values of f(n) = 5·f(n-1) + f(n-2).
func ExampleOddTerm() {
	for k := 0; k < 4; k++ {
		v, _ := alphaseg.OddTerm(k, nil)
		fmt.Println(v)
	}
	// Output:
	// 1
	// 3
	// 83
	// 431
}
