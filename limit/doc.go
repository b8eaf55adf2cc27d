// Package limit numerically approximates the two-sided limit of a scalar
// function at a point.
//
// 🚀 How it works
//
//	Two approach sequences are built around the target point a, one from
//	below and one from above. Each starts at a ∓ Offset and halves its
//	distance to a on every step (Zeno's approach), until it is within
//	Epsilon of a, MaxSteps elements have been produced, or halving no
//	longer moves it (one ulp away from a):
//
//	  left:  a-1, a-1/2, a-1/4, … ──▶ a ◀── …, a+1/4, a+1/2, a+1  :right
//
//	The function is evaluated at every element. The value at the last,
//	closest element of each side is that side's one-sided estimate.
//	The two-sided limit exists iff both estimates are finite and
//	|left − right| < Tolerance; its value is their average.
//
// ✨ Outcomes
//
//   - Exists            — both sides finite and agree within Tolerance.
//   - ReasonUndefined   — f is NaN/±Inf at the closest point of a side
//     (or a side produced no element at all).
//   - ReasonDisagree    — both sides finite but |left − right| ≥ Tolerance
//     (jump discontinuity, divergence with opposite signs, …).
//
// None of these are Go errors: errors are reserved for programmer
// mistakes (nil function, non-finite point, invalid options).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/limes/limit"
//
//	f := func(x float64) float64 { return (x*x*x - 1) / (x - 1) }
//	res, err := limit.Estimate(f, 1, limit.WithTolerance(1e-6))
//	if err != nil {
//	  // ErrNilFunc, ErrBadPoint or ErrOptionViolation
//	}
//	if res.Exists {
//	  fmt.Printf("lim = %.6f\n", res.Value) // 3.000000
//	}
//
// Performance:
//
//   - Time:   O(MaxSteps) evaluations of f per side
//   - Memory: O(MaxSteps) retained steps per side
//
// Estimator values hold only immutable configuration; they are safe to
// reuse and to share between goroutines.
package limit
