package alphaseg

import (
	"errors"

	"github.com/lowerbound/minima/trace"
)

// alphabetSize is the number of distinct letter codes a window must contain.
const alphabetSize = 26

var (
	// ErrEmptySequence indicates an empty input sequence.
	ErrEmptySequence = errors.New("alphaseg: sequence must be non-empty")

	// ErrAlphabetIncomplete indicates no contiguous segment contains all 26
	// letter codes.
	ErrAlphabetIncomplete = errors.New("alphaseg: complete alphabet not found in sequence")
)

// Shortest returns the length of the shortest contiguous segment of seq that
// contains every letter code 1..26 at least once.
//
// Algorithm Outline (sliding window):
//  1. Expand the right edge, counting occurrences of valid codes and the
//     number of distinct codes seen.
//  2. Whenever all 26 codes are present, record the window length and shrink
//     from the left until some code drops out.
//
// Values outside 1..26 still occupy positions inside a window; they just
// never contribute to the alphabet count.
//
// Errors: ErrEmptySequence for an empty input, ErrAlphabetIncomplete when no
// window covers the alphabet.
//
// Complexity:
//
//   - Time:   O(n) — each index enters and leaves the window once
//   - Memory: O(1) — a 26-slot frequency table
func Shortest(seq []int, sink trace.Sink) (int, error) {
	log := trace.OrNop(sink)

	if len(seq) == 0 {
		log.Warnf("empty sequence provided")

		return 0, ErrEmptySequence
	}
	log.Infof("processing sequence of length %d", len(seq))

	var freq [alphabetSize + 1]int
	unique := 0
	left := 0
	best := -1

	for right, code := range seq {
		if 1 <= code && code <= alphabetSize {
			if freq[code] == 0 {
				unique++
				log.Debugf("added letter %c (code %d)", 'A'+code-1, code)
			}
			freq[code]++
		}

		for unique == alphabetSize && left <= right {
			if length := right - left + 1; best < 0 || length < best {
				best = length
				log.Debugf("shortest segment so far: %d (positions %d..%d)", best, left+1, right+1)
			}

			out := seq[left]
			if 1 <= out && out <= alphabetSize {
				freq[out]--
				if freq[out] == 0 {
					unique--
					log.Debugf("removed letter %c (code %d)", 'A'+out-1, out)
				}
			}
			left++
		}
	}

	if best < 0 {
		log.Infof("complete alphabet not found in sequence")

		return 0, ErrAlphabetIncomplete
	}
	log.Infof("shortest segment length: %d", best)

	return best, nil
}
