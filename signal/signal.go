// SPDX-License-Identifier: MIT
// Package: fatigue/signal
//
// signal.go — deterministic load-history generators.
//
// Contract:
//   • Strict determinism per parameter set (and seed, where one applies);
//     no panics; no global state.
//   • Invalid input (n ≤ 0, mismatched block shapes, sigma < 0) returns nil.
//   • O(n) time and O(n) memory for every generator.

package signal

import (
	"math"
	"math/rand"
)

// defaultSeed is the fixed seed substituted when callers pass seed==0,
// keeping reproducible defaults without a magic time source.
const defaultSeed int64 = 1

// twoPi is the full circle in radians, named to avoid a magic literal.
const twoPi = 2 * math.Pi

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to
// defaultSeed so the zero value still yields a stable stream.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Sine returns n samples of amp·sin(2π·freq·i) + mean. freq is in cycles per
// sample. Returns nil when n ≤ 0.
func Sine(n int, amp, freq, mean float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = amp*math.Sin(twoPi*freq*float64(i)) + mean
	}

	return out
}

// Block returns a constant-amplitude block history: levels[i] repeated
// holds[i] times, concatenated in order. A nil holds slice means one sample
// per level. Returns nil when levels is empty, when a provided holds has a
// different length, or when any hold count is < 1.
func Block(levels []float64, holds []int) []float64 {
	if len(levels) == 0 {
		return nil
	}
	if holds != nil && len(holds) != len(levels) {
		return nil
	}

	total := 0
	for i := range levels {
		h := 1
		if holds != nil {
			h = holds[i]
		}
		if h < 1 {
			return nil
		}
		total += h
	}

	out := make([]float64, 0, total)
	for i, v := range levels {
		h := 1
		if holds != nil {
			h = holds[i]
		}
		for ; h > 0; h-- {
			out = append(out, v)
		}
	}

	return out
}

// Gaussian returns n samples of seeded Gaussian noise with the given standard
// deviation around mean. seed==0 selects the fixed default seed. Returns nil
// when n ≤ 0 or sigma < 0.
func Gaussian(n int, seed int64, sigma, mean float64) []float64 {
	if n <= 0 || sigma < 0 {
		return nil
	}

	rng := rngFromSeed(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()*sigma + mean
	}

	return out
}
