package alphaseg_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/lowerbound/minima/alphaseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullAlphabet returns the codes 1..26 in order.
func fullAlphabet() []int {
	seq := make([]int, 26)
	for i := range seq {
		seq[i] = i + 1
	}

	return seq
}

// TestShortest_ExactAlphabet verifies that the plain 1..26 sequence is its
// own shortest segment.
func TestShortest_ExactAlphabet(t *testing.T) {
	got, err := alphaseg.Shortest(fullAlphabet(), nil)
	require.NoError(t, err)
	assert.Equal(t, 26, got)
}

// TestShortest_NoisePrefixAndSuffix checks the window excludes padding on
// both sides, including codes outside 1..26.
func TestShortest_NoisePrefixAndSuffix(t *testing.T) {
	seq := append([]int{5, 5, 0, 99}, fullAlphabet()...)
	seq = append(seq, 7, 7, -1)

	got, err := alphaseg.Shortest(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 26, got)
}

// TestShortest_DuplicatesInsideWindow verifies a duplicate stretches the
// best window when it sits mid-alphabet.
func TestShortest_DuplicatesInsideWindow(t *testing.T) {
	// 1..13, then 1 repeated, then 14..26: the only full window spans all 28.
	seq := make([]int, 0, 28)
	for c := 1; c <= 13; c++ {
		seq = append(seq, c)
	}
	seq = append(seq, 1, 1)
	for c := 14; c <= 26; c++ {
		seq = append(seq, c)
	}

	got, err := alphaseg.Shortest(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 27, got, "window may drop the leading duplicate 1")
}

// TestShortest_ShrinksPastRedundantPrefix ensures the left edge advances past
// letters whose later duplicates keep the window complete.
func TestShortest_ShrinksPastRedundantPrefix(t *testing.T) {
	// Alphabet followed by a second copy of 1..5: the tail window of length
	// 26 starting at code 6 is shorter than the initial full match.
	seq := append(fullAlphabet(), 1, 2, 3, 4, 5)

	got, err := alphaseg.Shortest(seq, nil)
	require.NoError(t, err)
	assert.Equal(t, 26, got)
}

// TestShortest_Incomplete verifies ErrAlphabetIncomplete when a letter never
// appears.
func TestShortest_Incomplete(t *testing.T) {
	seq := fullAlphabet()[:25] // missing Z

	_, err := alphaseg.Shortest(seq, nil)
	assert.ErrorIs(t, err, alphaseg.ErrAlphabetIncomplete)
}

// TestShortest_Empty verifies ErrEmptySequence.
func TestShortest_Empty(t *testing.T) {
	_, err := alphaseg.Shortest(nil, nil)
	assert.ErrorIs(t, err, alphaseg.ErrEmptySequence)
}

// TestShortest_RandomizedLowerBound checks that any reported length is at
// least 26 and at most the sequence length.
func TestShortest_RandomizedLowerBound(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for round := 0; round < 50; round++ {
		n := rng.Intn(400) + 30
		seq := make([]int, n)
		for i := range seq {
			seq[i] = rng.Intn(30) // includes some invalid codes
		}

		got, err := alphaseg.Shortest(seq, nil)
		if err != nil {
			assert.ErrorIs(t, err, alphaseg.ErrAlphabetIncomplete)
			continue
		}
		assert.GreaterOrEqual(t, got, 26)
		assert.LessOrEqual(t, got, n)
	}
}

// TestOddTerm_FirstValues pins the hand-computed head of the odd subsequence:
// f = 1, 3, 16, 83, 431, 2238, 11621, 60343, 313336, 1627023, 8448451, ...
// odd terms: 1, 3, 83, 431, 11621, 60343, 1627023, 8448451.
func TestOddTerm_FirstValues(t *testing.T) {
	want := []int64{1, 3, 83, 431, 11621, 60343, 1627023, 8448451}

	for k, w := range want {
		got, err := alphaseg.OddTerm(k, nil)
		require.NoError(t, err, "k=%d", k)
		assert.Zero(t, got.Cmp(big.NewInt(w)), "odd term %d must be %d, got %s", k, w, got)
	}
}

// TestOddTerm_TargetIndex sanity-checks the original target A[39]: it must
// be odd, strictly greater than A[38], and far beyond int64 range.
func TestOddTerm_TargetIndex(t *testing.T) {
	a39, err := alphaseg.OddTerm(39, nil)
	require.NoError(t, err)
	a38, err := alphaseg.OddTerm(38, nil)
	require.NoError(t, err)

	assert.Equal(t, uint(1), a39.Bit(0), "every reported term is odd")
	assert.Equal(t, 1, a39.Cmp(a38), "odd terms are strictly increasing")
	assert.Greater(t, a39.BitLen(), 63, "A[39] cannot fit a machine integer")
}

// TestOddTerm_NegativeIndex verifies the ErrNegativeIndex sentinel.
func TestOddTerm_NegativeIndex(t *testing.T) {
	_, err := alphaseg.OddTerm(-1, nil)
	assert.ErrorIs(t, err, alphaseg.ErrNegativeIndex)
}

// TestOddTerm_ResultIsolated ensures the returned big.Int is a private copy:
// mutating it must not corrupt a later call's result.
func TestOddTerm_ResultIsolated(t *testing.T) {
	first, err := alphaseg.OddTerm(3, nil)
	require.NoError(t, err)
	first.SetInt64(0)

	again, err := alphaseg.OddTerm(3, nil)
	require.NoError(t, err)
	assert.Zero(t, again.Cmp(big.NewInt(431)))
}
