package rainflow

import (
	"math"

	"github.com/katalvlaran/fatigue/extrema"
)

// Count extracts the rainflow cycles of a raw sample history: turning-point
// reduction followed by ASTM E1049-85 three-point counting.
//
// Histories of length 0 or 1 yield an empty table and a nil error. Returns
// extrema.ErrNonFiniteSample (wrapped) when history contains NaN or ±Inf.
//
// Complexity: O(n) time, O(n) memory for the reduction buffer, stack and
// output; nothing beyond the returned slice escapes the call.
func Count(history []float64) ([]Cycle, error) {
	tp, err := extrema.Reduce(history)
	if err != nil {
		return nil, err
	}

	return countReduced(tp)
}

// CountExtrema extracts cycles from an already-reduced alternating sequence,
// as produced by extrema.Reduce. Sequences of length 0 or 1 yield an empty
// table. Returns extrema.ErrNonFiniteSample for NaN or ±Inf entries.
//
// The input is read only; the caller keeps ownership.
func CountExtrema(tp []float64) ([]Cycle, error) {
	if err := extrema.ValidateFinite(tp); err != nil {
		return nil, err
	}

	return countReduced(tp)
}

// countReduced is the three-point counting walk. tp must be finite.
//
// The stack holds indices into tp. Invariants of the walk:
//   - the stack bottom is the current ASTM starting point S; it is removed
//     only by the half-cycle rule and nothing is ever re-pushed, so S never
//     re-enters consideration once discarded;
//   - the stack never grows beyond len(tp), since each loop iteration pushes
//     exactly one index.
func countReduced(tp []float64) ([]Cycle, error) {
	n := len(tp)
	cycles := make([]Cycle, 0, n)
	if n < 2 {
		return cycles, nil
	}

	stack := make([]int, 0, n)
	for next := 0; next < n; next++ {
		if len(stack) >= n {
			return nil, ErrInternalStack
		}
		stack = append(stack, next)

		// Reduce while the newest range has caught up with the one behind it.
		for len(stack) >= 3 {
			top := len(stack)
			a, b, c := stack[top-3], stack[top-2], stack[top-1]
			x := math.Abs(tp[b] - tp[c])
			y := math.Abs(tp[a] - tp[b])
			if x < y {
				break // read the next turning point
			}

			if len(stack) == 3 {
				// Range a–b touches the starting point: half cycle.
				// Only a is discarded; b becomes the new starting point.
				cycles = append(cycles, Cycle{
					Count: HalfCycle,
					Range: y,
					Mean:  mean(tp[a], tp[b]),
				})
				stack[0], stack[1] = stack[1], stack[2]
				stack = stack[:2]

				continue // fewer than 3 entries remain, inner loop exits
			}

			// Range a–b is fully enclosed: full cycle. Both endpoints are
			// consumed; the top index slides down two slots (compaction,
			// not deletion, keeping the walk O(1) amortized).
			cycles = append(cycles, Cycle{
				Count: FullCycle,
				Range: y,
				Mean:  mean(tp[a], tp[b]),
			})
			stack[top-3] = stack[top-1]
			stack = stack[:top-2]
		}
	}

	// Residual flush: every adjacent pair left on the stack is an unresolved
	// half cycle, reported oldest to newest.
	for k := 0; k+1 < len(stack); k++ {
		i, j := stack[k], stack[k+1]
		cycles = append(cycles, Cycle{
			Count: HalfCycle,
			Range: math.Abs(tp[i] - tp[j]),
			Mean:  mean(tp[i], tp[j]),
		})
	}

	return cycles, nil
}

// mean returns the arithmetic average of two values.
func mean(a, b float64) float64 {
	return (a + b) / 2
}
