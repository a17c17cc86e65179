// Package extrema reduces a scalar stress/strain history to its sequence of
// turning points (alternating local peaks and valleys).
//
// What:
//
//   - Reduce keeps the first and last sample unconditionally and keeps an
//     interior sample only when it strictly reverses direction relative to
//     the most recently kept point.
//   - Monotonic runs collapse to a single point; equal-valued plateaus are
//     dropped entirely (strict comparison is the designed tie-break).
//   - ValidateFinite is the shared guard against NaN/±Inf samples, reused by
//     the rainflow package.
//
// Why:
//
//   - Rainflow counting (ASTM E1049-85) is defined over peaks and valleys,
//     not raw samples; this is the mandatory first stage of the pipeline.
//   - Data compression: long monotonic ramps carry no cycle information.
//
// Complexity:
//
//   - Reduce:         O(n) time, O(n) memory for the output slice.
//   - ValidateFinite: O(n) time, zero allocations.
//
// Errors:
//
//   - ErrNonFiniteSample: the input contains NaN or ±Inf. A NaN compares
//     neither < nor ≥, which would silently corrupt the reduction, so such
//     input is rejected up front.
//
// Reduce is idempotent: applying it to an already-reduced sequence returns
// the same sequence.
package extrema
