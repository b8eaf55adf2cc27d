package limit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/limes/limit"
)

// benchmarkEstimate runs Estimate on f at a with opts, failing on errors.
func benchmarkEstimate(b *testing.B, f limit.Func, a float64, opts ...limit.Option) {
	e, err := limit.New(opts...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := e.Estimate(f, a); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}

// BenchmarkEstimate_Polynomial benchmarks the default 25-step configuration.
func BenchmarkEstimate_Polynomial(b *testing.B) {
	benchmarkEstimate(b, func(x float64) float64 { return x*x + x + 1 }, 1)
}

// BenchmarkEstimate_Transcendental benchmarks sin(x)/x, a costlier f.
func BenchmarkEstimate_Transcendental(b *testing.B) {
	benchmarkEstimate(b, func(x float64) float64 { return math.Sin(x) / x }, 0)
}

// BenchmarkEstimate_LongSequence raises the cap to 50 steps per side.
func BenchmarkEstimate_LongSequence(b *testing.B) {
	benchmarkEstimate(b, func(x float64) float64 { return x * x }, 2, limit.WithMaxSteps(50), limit.WithEpsilon(0))
}
