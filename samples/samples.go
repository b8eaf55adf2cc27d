// Package samples is a small catalogue of demonstration functions for the
// limit estimator, each paired with its target point and, when one
// exists, the exact analytic limit.
//
// The set covers every verdict the estimator can reach:
//
//	square                 x²             at 2  → 4
//	cube-over-linear       (x³−1)/(x−1)   at 1  → 3   (removable discontinuity)
//	sinc                   sin(x)/x       at 0  → 1   (removable discontinuity)
//	sign                   sgn(x)         at 0  → none, sides disagree (jump)
//	reciprocal             1/x            at 0  → none, sides disagree (±∞)
//	vanishing-denominator  1/(x−x)        at 0  → none, undefined
package samples

import (
	"math"

	"github.com/katalvlaran/limes/limit"
)

// Sample is a named function and the point to take its limit at.
type Sample struct {
	// Name is a stable, kebab-case identifier.
	Name string

	// Expr is a human-readable formula.
	Expr string

	// Point is the target a.
	Point float64

	// Func is the function itself.
	Func limit.Func

	// Exact is the analytic limit, meaningful only when HasExact is true.
	Exact    float64
	HasExact bool
}

// Square returns x² at 2, a continuous polynomial.
func Square() Sample {
	return Sample{
		Name:     "square",
		Expr:     "x²",
		Point:    2,
		Func:     func(x float64) float64 { return x * x },
		Exact:    4,
		HasExact: true,
	}
}

// CubeOverLinear returns (x³−1)/(x−1) at 1. The quotient is 0/0 at the
// point but simplifies to x²+x+1 elsewhere.
func CubeOverLinear() Sample {
	return Sample{
		Name:     "cube-over-linear",
		Expr:     "(x³ - 1)/(x - 1)",
		Point:    1,
		Func:     func(x float64) float64 { return (math.Pow(x, 3) - 1) / (x - 1) },
		Exact:    3,
		HasExact: true,
	}
}

// Sinc returns sin(x)/x at 0.
func Sinc() Sample {
	return Sample{
		Name:     "sinc",
		Expr:     "sin(x)/x",
		Point:    0,
		Func:     func(x float64) float64 { return math.Sin(x) / x },
		Exact:    1,
		HasExact: true,
	}
}

// Sign returns the sign function at 0, a jump discontinuity.
func Sign() Sample {
	return Sample{
		Name:  "sign",
		Expr:  "sgn(x)",
		Point: 0,
		Func: func(x float64) float64 {
			switch {
			case x < 0:
				return -1
			case x > 0:
				return 1
			default:
				return 0
			}
		},
	}
}

// Reciprocal returns 1/x at 0: finite samples on both sides, diverging
// with opposite signs.
func Reciprocal() Sample {
	return Sample{
		Name:  "reciprocal",
		Expr:  "1/x",
		Point: 0,
		Func:  func(x float64) float64 { return 1 / x },
	}
}

// VanishingDenominator returns 1/(x−x), whose denominator is zero at
// every x, so it is undefined on both sides of any point.
func VanishingDenominator() Sample {
	return Sample{
		Name:  "vanishing-denominator",
		Expr:  "1/(x - x)",
		Point: 0,
		Func:  func(x float64) float64 { return 1 / (x - x) },
	}
}

// All returns every sample in catalogue order.
func All() []Sample {
	return []Sample{
		Square(),
		CubeOverLinear(),
		Sinc(),
		Sign(),
		Reciprocal(),
		VanishingDenominator(),
	}
}

// ByName looks a sample up by its Name.
func ByName(name string) (Sample, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}

	return Sample{}, false
}

// Names returns the names of All, in order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}

	return names
}
