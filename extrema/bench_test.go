package extrema_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fatigue/extrema"
)

// benchmarkReduce is a helper that reduces a synthetic sinusoid of n samples.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkReduce(b *testing.B, n int) {
	history := make([]float64, n)
	for i := range history {
		// A slow sinusoid with a linear trend: long monotone runs plus reversals.
		history[i] = 10*math.Sin(float64(i)/7) + 0.01*float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := extrema.Reduce(history); err != nil {
			b.Fatalf("Reduce failed: %v", err)
		}
	}
}

// BenchmarkReduce_1K benchmarks turning-point reduction on 1 000 samples.
func BenchmarkReduce_1K(b *testing.B) { benchmarkReduce(b, 1_000) }

// BenchmarkReduce_100K benchmarks turning-point reduction on 100 000 samples.
func BenchmarkReduce_100K(b *testing.B) { benchmarkReduce(b, 100_000) }
