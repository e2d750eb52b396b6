package alphaseg

import (
	"errors"
	"math/big"

	"github.com/lowerbound/minima/trace"
)

// ErrNegativeIndex indicates a negative odd-term index.
var ErrNegativeIndex = errors.New("alphaseg: odd-term index must be non-negative")

// OddTerm returns the k-th (0-based) odd value of the recurrence
//
//	f(n) = 5·f(n-1) + f(n-2),  f(0) = 1,  f(1) = 3.
//
// Terms grow by a factor of ~5.19 per step, so the sequence leaves int64
// range around n = 27; arithmetic is carried out in math/big throughout.
// The original problem asks for the 40th odd value, OddTerm(39).
//
// The parity pattern is odd, odd, even repeating, so roughly every third
// term is skipped.
//
// Complexity: O(k) big-integer additions, each over O(k)-digit terms.
func OddTerm(k int, sink trace.Sink) (*big.Int, error) {
	log := trace.OrNop(sink)

	if k < 0 {
		log.Errorf("invalid odd-term index %d", k)

		return nil, ErrNegativeIndex
	}

	prev2 := big.NewInt(1) // f(0)
	prev1 := big.NewInt(3) // f(1)
	log.Infof("initial values: f(0) = %s, f(1) = %s", prev2, prev1)

	odd := make([]*big.Int, 0, k+1)
	if prev2.Bit(0) == 1 {
		odd = append(odd, new(big.Int).Set(prev2))
	}
	if prev1.Bit(0) == 1 {
		odd = append(odd, new(big.Int).Set(prev1))
	}

	five := big.NewInt(5)
	n := 2
	for len(odd) <= k {
		curr := new(big.Int).Mul(five, prev1)
		curr.Add(curr, prev2)
		log.Debugf("f(%d) = 5*f(%d) + f(%d) = %s", n, n-1, n-2, curr)

		if curr.Bit(0) == 1 {
			odd = append(odd, new(big.Int).Set(curr))
			log.Debugf("f(%d) is odd, stored at index %d", n, len(odd)-1)
		}

		prev2, prev1 = prev1, curr
		n++
	}

	log.Infof("odd term %d computed after evaluating f(0..%d)", k, n-1)

	return odd[k], nil
}
