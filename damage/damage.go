package damage

import (
	"errors"
	"math"

	"github.com/katalvlaran/fatigue/rainflow"
)

// Sentinel errors for damage operations.
var (
	// ErrBadCurve indicates a non-positive S–N intercept or exponent.
	ErrBadCurve = errors.New("damage: S-N curve parameters must be positive")
	// ErrNoCycles indicates an empty cycle table where data is required.
	ErrNoCycles = errors.New("damage: cycle table must be non-empty")
	// ErrBadRef indicates a non-positive reference cycle count.
	ErrBadRef = errors.New("damage: reference cycle count must be positive")
)

// SNCurve is a Basquin-form S–N curve: cycles to failure at stress range S
// is N(S) = Intercept · S^(−Exponent).
type SNCurve struct {
	Intercept float64 // Basquin C, in cycles·(stress range)^Exponent
	Exponent  float64 // Basquin m, the slope of the log-log S-N line
}

// Validate reports ErrBadCurve unless both parameters are positive and finite.
func (sn SNCurve) Validate() error {
	if !(sn.Intercept > 0) || !(sn.Exponent > 0) ||
		math.IsInf(sn.Intercept, 1) || math.IsInf(sn.Exponent, 1) {
		return ErrBadCurve
	}

	return nil
}

// Life returns the number of cycles to failure at stress range s.
// Zero or negative ranges never fail: Life returns +Inf for them.
func (sn SNCurve) Life(s float64) float64 {
	if s <= 0 {
		return math.Inf(1)
	}

	return sn.Intercept * math.Pow(s, -sn.Exponent)
}

// Miner returns the Palmgren–Miner damage sum D = Σ nᵢ/N(Sᵢ) of a cycle
// table under the given S–N curve. An empty table accumulates zero damage.
// D ≥ 1 conventionally predicts failure.
//
// Complexity: O(len(cycles)) time, no allocations.
func Miner(cycles []rainflow.Cycle, sn SNCurve) (float64, error) {
	if err := sn.Validate(); err != nil {
		return 0, err
	}

	var d float64
	for _, c := range cycles {
		// n/N = n · S^m / C; zero-range cycles contribute nothing.
		if c.Range > 0 {
			d += c.Count * math.Pow(c.Range, sn.Exponent) / sn.Intercept
		}
	}

	return d, nil
}

// EquivalentRange returns the constant-amplitude stress range that causes
// the same damage as the whole table when applied for nRef cycles, under a
// slope-m curve:
//
//	S_eq = (Σ nᵢ·Sᵢ^m / nRef)^(1/m)
//
// Returns ErrBadCurve for m ≤ 0, ErrBadRef for nRef ≤ 0 and ErrNoCycles for
// an empty table.
func EquivalentRange(cycles []rainflow.Cycle, m, nRef float64) (float64, error) {
	if !(m > 0) {
		return 0, ErrBadCurve
	}
	if !(nRef > 0) {
		return 0, ErrBadRef
	}
	if len(cycles) == 0 {
		return 0, ErrNoCycles
	}

	var s float64
	for _, c := range cycles {
		if c.Range > 0 {
			s += c.Count * math.Pow(c.Range, m)
		}
	}

	return math.Pow(s/nRef, 1/m), nil
}
