// Package rainflow core types and sentinel errors.
package rainflow

import "errors"

// Cycle weights, fixed by ASTM E1049-85.
const (
	// HalfCycle weighs a range that touches the current starting point or
	// remains unresolved when the data ends.
	HalfCycle = 0.5
	// FullCycle weighs a closed range fully enclosed by surrounding data.
	FullCycle = 1.0
)

// Cycle is one counted rainflow cycle.
//
// Count is HalfCycle or FullCycle. Range is the absolute difference between
// the two turning points bounding the cycle (≥ 0). Mean is their arithmetic
// average. A Cycle is immutable once produced; the slice returned by Count is
// a multiset in which duplicates are legitimate, kept in discovery order for
// reproducibility.
type Cycle struct {
	Count float64 // cycle weight: 0.5 or 1.0
	Range float64 // peak-to-valley magnitude
	Mean  float64 // average of the two bounding values
}

// ErrInternalStack reports a violated stack bound inside the counting walk.
// The bound holds for every well-formed input; seeing this error means a bug
// in this package, not in the caller's data.
var ErrInternalStack = errors.New("rainflow: internal stack bound violated")
