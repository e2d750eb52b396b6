package tripath

import (
	"github.com/lowerbound/minima/trace"
)

// Solve computes the minimum path sum of t and reconstructs one optimal path.
//
// Algorithm Outline (bottom-up DP + top-down reconstruction):
//  1. dp mirrors the triangle; the last dp row equals the last triangle row
//     (a bottom cell's best continuation is itself).
//  2. For i from n-2 down to 0:
//     dp[i][j] = t[i][j] + min(dp[i+1][j], dp[i+1][j+1])
//  3. Total = dp[0][0].
//  4. Walk top-down from column 0: at row i, stay in column c exactly when
//     dp[i][c] == dp[i-1][c] - t[i-1][c] (the contribution the straight-down
//     branch would have made); otherwise advance to c+1. On an exact DP tie
//     both branches total the same, so the stay-preference only selects
//     among equally optimal paths.
//
// Degenerate input (no rows, or an empty first row) returns Solution{0, []}
// without error. Any unexpected fault during evaluation is recovered and
// converted into the sentinel Solution{FailedTotal, []} — check it with
// (Solution).Failed() — and reported to sink at error level.
//
// Complexity:
//
//   - Time:   O(n²)
//   - Memory: O(n²)
func Solve(t Triangle, sink trace.Sink) (sol Solution) {
	log := trace.OrNop(sink)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("minimum path calculation failed: %v", r)
			sol = Solution{Total: FailedTotal, Path: []int{}}
		}
	}()

	log.Infof("starting minimum path sum calculation")

	if t.Degenerate() {
		log.Warnf("empty triangle provided")

		return Solution{Total: 0, Path: []int{}}
	}

	n := t.Rows()
	log.Infof("processing triangle with %d rows", n)

	// 1) DP table shaped like the triangle; base case is the bottom row.
	dp := make([][]int, n)
	for i := range t {
		dp[i] = make([]int, len(t[i]))
	}
	copy(dp[n-1], t[n-1])
	log.Debugf("dp base row: %v", dp[n-1])

	// 2) Fill bottom-up.
	for i := n - 2; i >= 0; i-- {
		for j := range t[i] {
			down, diag := dp[i+1][j], dp[i+1][j+1]
			if down <= diag {
				dp[i][j] = t[i][j] + down
			} else {
				dp[i][j] = t[i][j] + diag
			}
			log.Debugf("dp[%d][%d] = %d + min(%d, %d) = %d", i, j, t[i][j], down, diag, dp[i][j])
		}
	}

	// 3) + 4) Extract the total and reconstruct one optimal path.
	sol = Solution{Total: dp[0][0], Path: reconstruct(t, dp)}
	log.Infof("minimum path sum: %d", sol.Total)
	log.Infof("minimum path: %v", sol.Path)

	return sol
}

// reconstruct walks the filled DP table top-down and returns the entries of
// one optimal path. Ties prefer the same column, which keeps the walk
// deterministic without changing the reported total.
func reconstruct(t Triangle, dp [][]int) []int {
	n := len(t)
	path := make([]int, 0, n)

	col := 0
	path = append(path, t[0][col])

	for i := 1; i < n; i++ {
		// The straight-down branch was taken iff dp[i][col] carries exactly
		// the remainder dp[i-1][col] left after row i-1's own entry.
		if dp[i][col] != dp[i-1][col]-t[i-1][col] {
			col++
		}
		path = append(path, t[i][col])
	}

	return path
}
