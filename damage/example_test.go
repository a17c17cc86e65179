package damage_test

import (
	"fmt"

	"github.com/katalvlaran/fatigue/damage"
	"github.com/katalvlaran/fatigue/rainflow"
)

// ExampleMiner counts the cycles of a measured stress history (in MPa) and
// accumulates Palmgren–Miner damage under a welded-detail S–N curve.
func ExampleMiner() {
	history := []float64{0, 120, -80, 100, -60, 140, 0}

	cycles, err := rainflow.Count(history)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sn := damage.SNCurve{Intercept: 1e12, Exponent: 3} // N = 1e12 · S⁻³
	d, err := damage.Miner(cycles, sn)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("damage per pass: %.3e\npasses to failure: %.0f\n", d, 1/d)
	// Output:
	// damage per pass: 1.566e-05
	// passes to failure: 63873
}
