package alphaseg_test

import (
	"math/rand"
	"testing"

	"github.com/lowerbound/minima/alphaseg"
)

// benchmarkShortest runs Shortest on a seeded random code sequence of length n.
func benchmarkShortest(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1))
	seq := make([]int, n)
	for i := range seq {
		seq[i] = rng.Intn(26) + 1
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, _ = alphaseg.Shortest(seq, nil)
	}
}

// BenchmarkShortest_Small benchmarks a 10 000-code sequence.
func BenchmarkShortest_Small(b *testing.B) {
	benchmarkShortest(b, 10_000)
}

// BenchmarkShortest_Large benchmarks a 1 000 000-code sequence.
func BenchmarkShortest_Large(b *testing.B) {
	benchmarkShortest(b, 1_000_000)
}

// BenchmarkOddTerm_Target benchmarks the original A[39] computation.
func BenchmarkOddTerm_Target(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := alphaseg.OddTerm(39, nil); err != nil {
			b.Fatalf("OddTerm failed: %v", err)
		}
	}
}
