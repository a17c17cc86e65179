package spectrum

import (
	"sort"

	"github.com/katalvlaran/fatigue/rainflow"
)

// unitSpan widens degenerate auto-ranged axes so that a single-valued input
// still produces non-zero bin widths.
const unitSpan = 1.0

// Matrix bins cycles into a dense range–mean matrix per opts.
//
// Returns ErrNoCycles for an empty table, ErrBadBinCount for bin counts < 1
// and ErrBadBounds for inconsistent explicit bounds.
//
// Complexity: O(len(cycles) + bins) time, O(bins) memory.
func Matrix(cycles []rainflow.Cycle, opts Options) (*RangeMeanMatrix, error) {
	if len(cycles) == 0 {
		return nil, ErrNoCycles
	}
	if opts.RangeBins < 1 || opts.MeanBins < 1 {
		return nil, ErrBadBinCount
	}

	rangeMax, meanMin, meanMax, err := resolveBounds(cycles, opts)
	if err != nil {
		return nil, err
	}

	x := &RangeMeanMatrix{
		RangeBins: opts.RangeBins,
		MeanBins:  opts.MeanBins,
		RangeMax:  rangeMax,
		MeanMin:   meanMin,
		MeanMax:   meanMax,
		cells:     make([]float64, opts.RangeBins*opts.MeanBins),
	}

	rw := rangeMax / float64(opts.RangeBins)
	mw := (meanMax - meanMin) / float64(opts.MeanBins)
	for _, c := range cycles {
		r := clampBin(int(c.Range/rw), opts.RangeBins)
		m := clampBin(int((c.Mean-meanMin)/mw), opts.MeanBins)
		x.cells[r*opts.MeanBins+m] += c.Count
	}

	return x, nil
}

// resolveBounds applies the auto-ranging and explicit-bounds policy.
func resolveBounds(cycles []rainflow.Cycle, opts Options) (rangeMax, meanMin, meanMax float64, err error) {
	rangeMax = opts.RangeMax
	if rangeMax == 0 {
		for _, c := range cycles {
			if c.Range > rangeMax {
				rangeMax = c.Range
			}
		}
		if rangeMax == 0 {
			rangeMax = unitSpan // all ranges zero: one unit-wide bin row
		}
	} else if rangeMax < 0 {
		return 0, 0, 0, ErrBadBounds
	}

	meanMin, meanMax = opts.MeanMin, opts.MeanMax
	if meanMin == 0 && meanMax == 0 {
		meanMin, meanMax = cycles[0].Mean, cycles[0].Mean
		for _, c := range cycles[1:] {
			if c.Mean < meanMin {
				meanMin = c.Mean
			}
			if c.Mean > meanMax {
				meanMax = c.Mean
			}
		}
		if meanMax == meanMin {
			meanMin -= unitSpan / 2
			meanMax += unitSpan / 2
		}
	} else if meanMax <= meanMin {
		return 0, 0, 0, ErrBadBounds
	}

	return rangeMax, meanMin, meanMax, nil
}

// clampBin confines a raw bin index to [0, bins-1]; values on the upper axis
// bound (or outside explicit bounds) land in the edge bins.
func clampBin(idx, bins int) int {
	if idx < 0 {
		return 0
	}
	if idx >= bins {
		return bins - 1
	}

	return idx
}

// Exceedance returns the cumulative load spectrum of a cycle table: one Level
// per distinct range, in descending range order, whose Cycles field is the
// total cycle count at or above that range. An empty table yields nil.
//
// Complexity: O(n log n) time for the sort, O(n) memory.
func Exceedance(cycles []rainflow.Cycle) []Level {
	if len(cycles) == 0 {
		return nil
	}

	perRange := make(map[float64]float64, len(cycles))
	for _, c := range cycles {
		perRange[c.Range] += c.Count
	}

	ranges := make([]float64, 0, len(perRange))
	for r := range perRange {
		ranges = append(ranges, r)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ranges)))

	out := make([]Level, 0, len(ranges))
	var cum float64
	for _, r := range ranges {
		cum += perRange[r]
		out = append(out, Level{Range: r, Cycles: cum})
	}

	return out
}
