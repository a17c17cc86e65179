package extrema_test

import (
	"fmt"

	"github.com/katalvlaran/fatigue/extrema"
)

// ExampleReduce demonstrates collapsing a noisy ramp-and-reverse history to
// its turning points. The monotonic climb 0→1→2→5 collapses to the single
// peak 5, and the tail ramp keeps only the final sample.
func ExampleReduce() {
	history := []float64{0, 1, 2, 5, 3, 4, -1, -2, 1}

	tp, err := extrema.Reduce(history)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(tp)
	// Output:
	// [0 5 3 4 -2 1]
}
