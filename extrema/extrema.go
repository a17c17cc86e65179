package extrema

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFiniteSample indicates the input contains NaN or ±Inf.
var ErrNonFiniteSample = errors.New("extrema: history samples must be finite")

// ValidateFinite rejects any series containing NaN or ±Inf with
// ErrNonFiniteSample, wrapped with the offending index.
//
// Complexity: O(n) time, no allocations on the happy path.
func ValidateFinite(series []float64) error {
	for i, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("sample %d: %w", i, ErrNonFiniteSample)
		}
	}

	return nil
}

// Reduce returns the turning points of history: the first sample, every
// interior sample that is a strict local peak or valley, and the last sample.
//
// An interior sample qualifies when it is strictly greater than both the most
// recently kept point and the next raw sample (peak), or strictly less than
// both (valley). Comparing against the last kept point — not the previous raw
// sample — collapses monotonic runs to a single point and is what makes the
// reduction idempotent. Samples equal to the reference are never kept.
//
// Histories of length 0 or 1 are returned as-is (copied). The result always
// contains the first and last sample, so its length is ≥ 2 whenever
// len(history) ≥ 2, even for a constant series.
//
// Returns ErrNonFiniteSample if history contains NaN or ±Inf.
//
// Complexity: O(n) time, one output allocation.
func Reduce(history []float64) ([]float64, error) {
	if err := ValidateFinite(history); err != nil {
		return nil, err
	}

	n := len(history)
	out := make([]float64, 0, n)
	if n == 0 {
		return out, nil
	}

	// The first sample is always a turning point by convention.
	out = append(out, history[0])
	if n == 1 {
		return out, nil
	}

	for i := 1; i < n-1; i++ {
		ref := out[len(out)-1]
		v, next := history[i], history[i+1]
		if (v > ref && v > next) || (v < ref && v < next) {
			out = append(out, v)
		}
	}

	// The last sample is always kept: there is nothing after it to compare
	// against, and the residual flush of rainflow counting needs it.
	out = append(out, history[n-1])

	return out, nil
}
