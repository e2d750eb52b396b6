// Package minima is a small kit of self-contained numeric and combinatorial
// solvers, each a pure function over validated input with an injected,
// leveled progress trace.
//
// 🚀 What is minima?
//
//	A collection of independent algorithmic kernels wrapped in thin I/O and
//	logging plumbing:
//	  • Interval point cover: the fewest integer points hitting every
//	    closed segment in a family (greedy earliest-finish-time)
//	  • Triangle minimum path sum: cheapest top-to-bottom descent through
//	    a number triangle, with one optimal path reconstructed
//	  • Alphabet window: shortest contiguous stretch of a code sequence
//	    containing all 26 letters (sliding window)
//	  • Odd recurrence terms: big-integer values of f(n) = 5·f(n-1) + f(n-2)
//
// ✨ Why choose minima?
//
//   - Deterministic – stable tie-breaks, reproducible point and path order
//   - Pure per call – no shared state, fresh working storage every time
//   - Observable – every solver reports leveled checkpoints to an injected
//     trace sink (console, file, or both; zap underneath)
//   - Honest failures – sentinel errors for bad input, a by-value failure
//     sentinel where the pipeline is meant to continue
//
// Packages:
//
//	segcover/ — minimum point cover solver
//	tripath/  — triangle minimum path sum + path reconstruction
//	alphaseg/ — alphabet window + odd recurrence terms
//	segio/    — flat text input readers (count-header and sequence formats)
//	gen/      — seeded random test-case generators
//	trace/    — the leveled Sink capability and its zap-backed variants
//	cmd/      — the minima CLI binding everything together
//
//	go get github.com/lowerbound/minima
package minima
