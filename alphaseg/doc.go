// Package alphaseg holds two small self-contained kernels:
//
//   - Shortest — the length of the shortest contiguous segment of a
//     letter-code sequence (codes 1..26 map to A..Z) that contains the whole
//     alphabet, found with a classic sliding window in O(n) time.
//   - OddTerm — the k-th odd value of the linear recurrence
//     f(n) = 5·f(n-1) + f(n-2), f(0)=1, f(1)=3, computed with math/big since
//     the terms outgrow any machine integer long before the 40th odd value.
//
// Codes outside 1..26 are tolerated noise: they occupy window positions but
// never count toward the alphabet.
package alphaseg
