// Package spectrum aggregates counted rainflow cycles into load spectra:
// a dense range–mean occupancy matrix and a cumulative exceedance table.
//
// What:
//
//   - Matrix bins cycles on a range axis × mean axis grid, each bin holding
//     the summed cycle weights (half cycles contribute 0.5). Bin bounds are
//     taken from Options or auto-ranged from the data.
//   - Exceedance lists, for every distinct range in descending order, the
//     total cycle count at or above that range — the classical load
//     spectrum curve.
//
// Why:
//
//   - Rainflow matrices are the standard interchange between cycle counting
//     and damage models (mean-stress corrections operate per bin).
//   - Exceedance spectra drive test-rig block programs and design checks.
//
// Conventions:
//
//   - The matrix is dense, row-major, rows indexed by range bin and columns
//     by mean bin (same storage discipline as a dense adjacency matrix).
//   - Cycles falling outside explicit bounds clamp into the edge bins; with
//     auto-ranged bounds every cycle lands inside by construction.
//   - Degenerate auto bounds widen to a unit span so a single-valued input
//     still bins into a well-formed matrix.
//
// Errors:
//
//   - ErrNoCycles:     Matrix needs at least one cycle to bin or auto-range.
//   - ErrBadBinCount:  RangeBins or MeanBins < 1.
//   - ErrBadBounds:    explicit RangeMax ≤ 0 or MeanMax ≤ MeanMin.
//   - ErrBinIndex:     At called outside the grid.
package spectrum
