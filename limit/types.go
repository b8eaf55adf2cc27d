// Package limit defines the value types produced by the estimator.
package limit

import (
	"errors"
	"math"
)

// Sentinel errors for estimator input.
var (
	// ErrNilFunc is returned when a nil Func is passed.
	ErrNilFunc = errors.New("limit: function is nil")

	// ErrBadPoint is returned when the target point is NaN or ±Inf.
	ErrBadPoint = errors.New("limit: target point must be finite")

	// ErrUnknownSide is returned by Approach for a Side other than Left or Right.
	ErrUnknownSide = errors.New("limit: unknown side")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("limit: invalid option supplied")
)

// Func is a unary real function. Returning NaN or ±Inf marks the
// function as undefined at x.
type Func func(x float64) float64

// Side selects the direction an approach sequence comes from.
type Side int

const (
	// Left approaches the point from below (x < a).
	Left Side = iota

	// Right approaches the point from above (x > a).
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Step is one element of an approach sequence together with the
// function value sampled there.
type Step struct {
	// Index is 1-based position within the sequence.
	Index int

	// X is the sampled input.
	X float64

	// FX is f(X), possibly NaN or ±Inf.
	FX float64

	// Defined reports whether FX is finite.
	Defined bool
}

// Sequence is the approach sequence for one side. Each element's
// distance to the target point is exactly half the previous one's.
type Sequence struct {
	Side  Side
	Steps []Step
}

// Len returns the number of elements.
func (s Sequence) Len() int { return len(s.Steps) }

// Last returns the element closest to the target point, or false if
// the sequence is empty.
func (s Sequence) Last() (Step, bool) {
	if len(s.Steps) == 0 {
		return Step{}, false
	}

	return s.Steps[len(s.Steps)-1], true
}

// Xs returns the sampled inputs in order.
func (s Sequence) Xs() []float64 {
	xs := make([]float64, len(s.Steps))
	for i, st := range s.Steps {
		xs[i] = st.X
	}

	return xs
}

// value is the one-sided estimate: f at the last element, NaN when the
// sequence is empty or f is not finite there.
func (s Sequence) value() float64 {
	last, ok := s.Last()
	if !ok || !last.Defined {
		return math.NaN()
	}

	return last.FX
}

// Reason explains why a two-sided limit was judged not to exist.
type Reason int

const (
	// ReasonNone is set when the limit exists.
	ReasonNone Reason = iota

	// ReasonUndefined: f is non-finite at the closest sampled point on
	// at least one side.
	ReasonUndefined

	// ReasonDisagree: both sides are finite but differ by at least the
	// convergence tolerance.
	ReasonDisagree
)

// String returns a short human-readable description.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUndefined:
		return "function undefined near the point"
	case ReasonDisagree:
		return "one-sided limits disagree"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single estimation. It is never mutated
// after Estimate returns.
//
//   - LeftValue, RightValue — one-sided estimates, NaN when undefined.
//   - Diff                  — |LeftValue − RightValue|, NaN if either is undefined.
//   - Exists                — true iff both sides are finite and Diff < Tolerance.
//   - Value                 — (LeftValue+RightValue)/2 when Exists, NaN otherwise.
type Result struct {
	Point      float64
	Left       Sequence
	Right      Sequence
	LeftValue  float64
	RightValue float64
	Diff       float64
	Exists     bool
	Value      float64
	Reason     Reason
	Tolerance  float64
}

// Sequence returns the approach sequence of the given side.
func (r *Result) Sequence(side Side) Sequence {
	if side == Right {
		return r.Right
	}

	return r.Left
}

// OneSided returns the one-sided estimate of the given side.
func (r *Result) OneSided(side Side) float64 {
	if side == Right {
		return r.RightValue
	}

	return r.LeftValue
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
