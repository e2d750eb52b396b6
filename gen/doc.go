// Package gen produces synthetic random inputs for the minima solvers:
// interval sets, number triangles, and letter-code sequences.
//
// Every generator takes an explicit *rand.Rand, so a fixed seed reproduces
// the exact same case — tests and benchmarks rely on that. Generated
// intervals are pre-normalized (Start <= End) and generated triangles always
// satisfy the row-length rule, so the output feeds the solvers directly.
package gen
