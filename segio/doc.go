// Package segio reads the flat text formats that feed the minima solvers.
//
// Interval format (ReadIntervals): the first non-empty line declares the
// segment count N; each data line holds two whitespace-separated integers.
// Endpoints are normalized to (min, max) before they reach the solver, blank
// lines are skipped without counting toward N, and three failure modes are
// kept strictly apart:
//
//   - ErrParse          — malformed count line or data line (fatal)
//   - ErrPrematureEOF   — fewer than N data lines before end of input (fatal)
//   - count mismatch    — final count differs from N without an early EOF;
//     reported to the trace sink as a warning only (non-fatal)
//
// Sequence format (ReadSequence): the first line holds a leading length token
// followed by values; continuation lines hold further values. The length
// token is skipped, not enforced.
package segio
