// Package damage estimates fatigue damage from counted rainflow cycles.
//
// What:
//
//   - SNCurve is a Basquin-form S–N curve: N(S) = Intercept · S^(−Exponent),
//     the number of cycles to failure at stress range S.
//   - Miner accumulates Palmgren–Miner damage D = Σ nᵢ/N(Sᵢ) over a cycle
//     table; D ≥ 1 conventionally means predicted failure.
//   - EquivalentRange condenses a variable-amplitude table into the single
//     constant-amplitude range causing equal damage over a reference number
//     of cycles.
//
// Why:
//
//   - Miner's rule is the standard bridge from a rainflow table to a design
//     verdict; it is what the counted cycles exist for.
//
// Conventions:
//
//   - Zero-range cycles contribute zero damage (plateau half cycles are
//     harmless; 0^m = 0 for m > 0).
//   - Pure functions, no logging, sentinel errors only.
//
// Errors:
//
//   - ErrBadCurve:  non-positive Intercept or Exponent.
//   - ErrNoCycles:  EquivalentRange needs at least one cycle.
//   - ErrBadRef:    non-positive reference cycle count.
package damage
