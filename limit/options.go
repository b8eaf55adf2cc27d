package limit

import (
	"fmt"

	"go.uber.org/multierr"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOffset is the starting distance of both approach sequences.
	DefaultOffset = 1.0

	// DefaultEpsilon stops a sequence once it is this close to the point.
	// With DefaultOffset and DefaultMaxSteps the step cap binds first:
	// the closest element sits 2⁻²⁴ ≈ 6e-8 away.
	DefaultEpsilon = 1e-12

	// DefaultMaxSteps caps the length of each approach sequence.
	DefaultMaxSteps = 25

	// DefaultTolerance is the largest |left − right| still treated as
	// agreement.
	DefaultTolerance = 1e-5
)

// StepFunc observes every sampled element, in order, left side first.
type StepFunc func(side Side, s Step)

// Option configures an Estimator via functional arguments.
type Option func(*Options)

// Options holds the estimator configuration.
type Options struct {
	// Offset is the initial distance from the point, > 0.
	Offset float64

	// Epsilon ends a sequence when |a − x| ≤ Epsilon, ≥ 0.
	Epsilon float64

	// MaxSteps bounds the number of elements per side, > 0.
	MaxSteps int

	// Tolerance is the convergence tolerance on |left − right|, > 0.
	Tolerance float64

	// OnStep is called for each sampled element. New replaces a nil
	// OnStep with a no-op.
	OnStep StepFunc
}

// DefaultOptions returns Options with:
//   - Offset    = 1
//   - Epsilon   = 1e-12
//   - MaxSteps  = 25
//   - Tolerance = 1e-5
//   - no-op OnStep
func DefaultOptions() Options {
	return Options{
		Offset:    DefaultOffset,
		Epsilon:   DefaultEpsilon,
		MaxSteps:  DefaultMaxSteps,
		Tolerance: DefaultTolerance,
		OnStep:    func(Side, Step) {},
	}
}

// WithOffset sets the starting distance of both sequences.
func WithOffset(offset float64) Option {
	return func(o *Options) { o.Offset = offset }
}

// WithEpsilon sets the proximity threshold.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxSteps sets the per-side element cap.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithTolerance sets the convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithOnStep registers a per-element observer. A nil fn is ignored.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Validate reports every violated constraint at once. Each violation
// wraps ErrOptionViolation.
func (o Options) Validate() error {
	var err error
	if isNonFinite(o.Offset) || o.Offset <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: Offset must be finite and positive (%v)", ErrOptionViolation, o.Offset))
	}
	if isNonFinite(o.Epsilon) || o.Epsilon < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: Epsilon must be finite and non-negative (%v)", ErrOptionViolation, o.Epsilon))
	}
	if o.MaxSteps <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, o.MaxSteps))
	}
	if isNonFinite(o.Tolerance) || o.Tolerance <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: Tolerance must be finite and positive (%v)", ErrOptionViolation, o.Tolerance))
	}

	return err
}
