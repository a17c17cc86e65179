// Package signal generates deterministic synthetic load histories for
// tests, benchmarks and demos.
//
// What:
//
//   - Sine — a sinusoidal stress history with amplitude, frequency and mean.
//   - Block — constant-amplitude block loading from levels and hold counts.
//   - Gaussian — seeded Gaussian noise around a mean level.
//
// Why:
//
//   - Rainflow counting needs reproducible fixtures: same parameters and
//     seed ⇒ byte-identical history on every platform.
//   - Constant-amplitude blocks are the classical cross-check for cycle
//     counters (each repeated block closes an identical cycle).
//
// All generators are pure: no global state, no time-based seeding. Invalid
// parameters yield a nil slice rather than a panic.
package signal
