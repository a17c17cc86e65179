// Package rainflow counts fatigue load cycles in a scalar stress/strain
// history with the three-point rainflow method of ASTM E1049-85.
//
// What:
//
//   - Count reduces a raw history to turning points (via package extrema)
//     and extracts its cycles in one call — the module's main entry point.
//   - CountExtrema runs the counting stage alone over an already-reduced
//     alternating sequence.
//   - Every counted Cycle carries a weight (0.5 for a half cycle, 1.0 for a
//     full cycle), the peak-to-valley Range, and the Mean of its two bounds.
//
// How (the ASTM stack discipline):
//
//	Turning points are pushed onto an index stack. Whenever the top three
//	entries a, b, c satisfy |b−c| ≥ |a−b| the range a–b is closed: as a full
//	cycle when the stack holds more than three entries (both a and b are
//	discarded, the top slides down two slots), or as a half cycle when a is
//	the current starting point (only a is discarded and the starting point
//	advances). Ties close (≥, not >) — a required ASTM tie-break. Once all
//	points are pushed, each adjacent pair left on the stack flushes as a
//	half cycle, oldest to newest.
//
// Guarantees:
//
//   - Discovery order is preserved; duplicate (range, mean) records are kept.
//   - Weight accounting: 2 × Σ weight == len(turning points) − 1 for any
//     non-empty input.
//   - Amortized O(n) time; the only allocations are the output slice and the
//     index stack, both sized to the input up front.
//
// Errors:
//
//   - extrema.ErrNonFiniteSample: input contains NaN or ±Inf (a NaN would
//     make the ≥ comparison silently false and corrupt the stack walk).
//   - ErrInternalStack: defensive guard for a stack-bound violation; never
//     expected on any input, reported instead of panicking.
//
// Empty and single-sample histories yield an empty table and a nil error.
package rainflow
