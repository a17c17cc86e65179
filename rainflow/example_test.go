package rainflow_test

import (
	"fmt"

	"github.com/katalvlaran/fatigue/rainflow"
)

// ExampleCount counts the cycles of the classic ASTM E1049-85 illustrative
// history. The -1↔3 oscillation is fully enclosed and counts as one cycle;
// every other range touches the moving starting point or survives to the
// residual flush and counts as one-half.
func ExampleCount() {
	history := []float64{-2, 1, -3, 5, -1, 3, -4, 4, -2}

	cycles, err := rainflow.Count(history)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range cycles {
		fmt.Printf("count=%.1f range=%.0f mean=%+.1f\n", c.Count, c.Range, c.Mean)
	}
	// Output:
	// count=0.5 range=3 mean=-0.5
	// count=0.5 range=4 mean=-1.0
	// count=1.0 range=4 mean=+1.0
	// count=0.5 range=8 mean=+1.0
	// count=0.5 range=9 mean=+0.5
	// count=0.5 range=8 mean=+0.0
	// count=0.5 range=6 mean=+1.0
}

// ExampleCountExtrema runs the counting stage alone over an already-reduced
// alternating sequence, for callers that computed turning points themselves.
func ExampleCountExtrema() {
	tp := []float64{0, 4, 0}

	cycles, _ := rainflow.CountExtrema(tp)
	fmt.Println(len(cycles), "half cycles of range", cycles[0].Range)
	// Output:
	// 2 half cycles of range 4
}
