package spectrum

import "errors"

// Sentinel errors for spectrum operations.
var (
	// ErrNoCycles indicates an empty cycle table where data is required.
	ErrNoCycles = errors.New("spectrum: cycle table must be non-empty")
	// ErrBadBinCount indicates a bin count below 1.
	ErrBadBinCount = errors.New("spectrum: bin counts must be at least 1")
	// ErrBadBounds indicates inconsistent explicit axis bounds.
	ErrBadBounds = errors.New("spectrum: axis bounds are inconsistent")
	// ErrBinIndex indicates a bin coordinate outside the matrix.
	ErrBinIndex = errors.New("spectrum: bin index out of range")
)

// Options configures rainflow-matrix binning.
//
// Zero-valued bounds are auto-ranged from the data: RangeMax becomes the
// largest observed range, and [MeanMin, MeanMax] the observed mean envelope.
// Explicitly set bounds must satisfy RangeMax > 0 and MeanMax > MeanMin;
// cycles outside explicit bounds clamp into the edge bins.
type Options struct {
	RangeBins int     // number of bins on the range axis (≥ 1)
	MeanBins  int     // number of bins on the mean axis (≥ 1)
	RangeMax  float64 // range axis upper bound; 0 → auto
	MeanMin   float64 // mean axis lower bound; 0 with MeanMax=0 → auto
	MeanMax   float64 // mean axis upper bound; 0 with MeanMin=0 → auto
}

// DefaultOptions returns the default 8×8 auto-ranged binning.
func DefaultOptions() Options {
	return Options{RangeBins: 8, MeanBins: 8}
}

// RangeMeanMatrix is a dense rainflow matrix: summed cycle weights on a
// range × mean grid. Immutable once built.
type RangeMeanMatrix struct {
	RangeBins int     // rows
	MeanBins  int     // columns
	RangeMax  float64 // range axis spans [0, RangeMax]
	MeanMin   float64 // mean axis lower bound
	MeanMax   float64 // mean axis upper bound

	cells []float64 // row-major: cells[r*MeanBins+m]
}

// At returns the summed cycle weight in range bin r, mean bin m.
// Returns ErrBinIndex outside the grid.
func (x *RangeMeanMatrix) At(r, m int) (float64, error) {
	if r < 0 || r >= x.RangeBins || m < 0 || m >= x.MeanBins {
		return 0, ErrBinIndex
	}

	return x.cells[r*x.MeanBins+m], nil
}

// Total returns the summed cycle weight over the whole matrix.
func (x *RangeMeanMatrix) Total() float64 {
	var s float64
	for _, v := range x.cells {
		s += v
	}

	return s
}

// Level is one step of an exceedance spectrum: the total cycle count with
// Range ≥ this level's Range.
type Level struct {
	Range  float64 // distinct cycle range
	Cycles float64 // cumulative count at or above Range
}
