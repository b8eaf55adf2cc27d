package limit

import (
	"fmt"
	"math"
)

// Estimator approximates two-sided limits under a fixed configuration.
type Estimator struct {
	opts Options
}

// New resolves opts on top of DefaultOptions and validates the result.
// Returns ErrOptionViolation (possibly several, combined) on bad input.
func New(opts ...Option) (*Estimator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.OnStep == nil {
		o.OnStep = func(Side, Step) {}
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Estimator{opts: o}, nil
}

// Options returns a copy of the effective configuration.
func (e *Estimator) Options() Options { return e.opts }

// Estimate is shorthand for New(opts...) followed by Estimate(f, a).
func Estimate(f Func, a float64, opts ...Option) (*Result, error) {
	e, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return e.Estimate(f, a)
}

// Estimate approximates lim(x→a) f(x).
//
// Algorithm Outline:
//  1. Build the left sequence from a−Offset, halving the distance to a
//     each step, while |a−x| > Epsilon and fewer than MaxSteps elements
//     exist. Evaluate f at each element.
//  2. Build the right sequence symmetrically from a+Offset.
//  3. Each side's estimate is f at its last element (NaN if empty or
//     non-finite).
//  4. Either estimate NaN ⇒ ReasonUndefined.
//  5. Diff = |L−R|; Diff < Tolerance ⇒ Exists with Value = (L+R)/2,
//     otherwise ReasonDisagree. The midpoint is taken as L + (R−L)/2 so
//     that values near ±MaxFloat64 do not overflow.
//
// Complexity: O(min(MaxSteps, ~2100)) time and memory per side; a
// sequence also ends once halving can no longer move x.
//
// Errors:
//   - ErrNilFunc  — f is nil.
//   - ErrBadPoint — a is NaN or ±Inf.
func (e *Estimator) Estimate(f Func, a float64) (*Result, error) {
	if err := checkInput(f, a); err != nil {
		return nil, err
	}

	left := e.approach(f, a, Left)
	right := e.approach(f, a, Right)

	res := &Result{
		Point:      a,
		Left:       left,
		Right:      right,
		LeftValue:  left.value(),
		RightValue: right.value(),
		Diff:       math.NaN(),
		Value:      math.NaN(),
		Tolerance:  e.opts.Tolerance,
	}
	if math.IsNaN(res.LeftValue) || math.IsNaN(res.RightValue) {
		res.Reason = ReasonUndefined
		return res, nil
	}

	res.Diff = math.Abs(res.LeftValue - res.RightValue)
	if res.Diff < e.opts.Tolerance {
		res.Exists = true
		res.Value = res.LeftValue + (res.RightValue-res.LeftValue)/2
		return res, nil
	}
	res.Reason = ReasonDisagree

	return res, nil
}

// Approach builds a single approach sequence toward a from side,
// sampling f at every element.
func (e *Estimator) Approach(f Func, a float64, side Side) (Sequence, error) {
	if err := checkInput(f, a); err != nil {
		return Sequence{}, err
	}
	if side != Left && side != Right {
		return Sequence{}, fmt.Errorf("%w: %d", ErrUnknownSide, int(side))
	}

	return e.approach(f, a, side), nil
}

// stepsHint bounds the up-front allocation of a sequence; MaxSteps is a
// cap, not a size.
const stepsHint = 64

// approach assumes validated input.
func (e *Estimator) approach(f Func, a float64, side Side) Sequence {
	current := a - e.opts.Offset
	if side == Right {
		current = a + e.opts.Offset
	}

	seq := Sequence{Side: side, Steps: make([]Step, 0, min(e.opts.MaxSteps, stepsHint))}
	for math.Abs(a-current) > e.opts.Epsilon && len(seq.Steps) < e.opts.MaxSteps {
		fx := f(current)
		st := Step{
			Index:   len(seq.Steps) + 1,
			X:       current,
			FX:      fx,
			Defined: !isNonFinite(fx),
		}
		seq.Steps = append(seq.Steps, st)
		e.opts.OnStep(side, st)

		// jump half the remaining distance; same expression for both sides
		next := current + (a-current)*0.5
		if next == current {
			// stalled one ulp away from a
			break
		}
		current = next
	}

	return seq
}

func checkInput(f Func, a float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if isNonFinite(a) {
		return fmt.Errorf("%w: %v", ErrBadPoint, a)
	}

	return nil
}
