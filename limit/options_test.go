package limit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/limes/limit"
)

func TestDefaultOptions(t *testing.T) {
	o := limit.DefaultOptions()
	assert.Equal(t, 1.0, o.Offset)
	assert.Equal(t, 1e-12, o.Epsilon)
	assert.Equal(t, 25, o.MaxSteps)
	assert.Equal(t, 1e-5, o.Tolerance)
	require.NotNil(t, o.OnStep)
	assert.NoError(t, o.Validate())
}

func TestNew_AppliesOptions(t *testing.T) {
	e, err := limit.New(
		limit.WithOffset(0.5),
		limit.WithEpsilon(1e-9),
		limit.WithMaxSteps(10),
		limit.WithTolerance(1e-3),
		limit.WithOnStep(nil), // ignored
	)
	require.NoError(t, err)

	o := e.Options()
	assert.Equal(t, 0.5, o.Offset)
	assert.Equal(t, 1e-9, o.Epsilon)
	assert.Equal(t, 10, o.MaxSteps)
	assert.Equal(t, 1e-3, o.Tolerance)
	assert.NotNil(t, o.OnStep, "nil hook must not replace the default")
}

// TestOptions_Validate enumerates each invalid field.
func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name string
		opt  limit.Option
	}{
		{"zero offset", limit.WithOffset(0)},
		{"negative offset", limit.WithOffset(-1)},
		{"inf offset", limit.WithOffset(math.Inf(1))},
		{"negative epsilon", limit.WithEpsilon(-1e-12)},
		{"nan epsilon", limit.WithEpsilon(math.NaN())},
		{"zero steps", limit.WithMaxSteps(0)},
		{"negative steps", limit.WithMaxSteps(-5)},
		{"zero tolerance", limit.WithTolerance(0)},
		{"nan tolerance", limit.WithTolerance(math.NaN())},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := limit.New(tc.opt)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, limit.ErrOptionViolation)
		})
	}
}

// TestOptions_ValidateAggregates checks that all violations are reported together.
func TestOptions_ValidateAggregates(t *testing.T) {
	o := limit.DefaultOptions()
	o.Offset = -1
	o.MaxSteps = 0
	o.Tolerance = 0

	err := o.Validate()
	require.Error(t, err)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 3)
	for _, e := range errs {
		assert.ErrorIs(t, e, limit.ErrOptionViolation)
	}
	assert.Contains(t, err.Error(), "Offset")
	assert.Contains(t, err.Error(), "MaxSteps")
	assert.Contains(t, err.Error(), "Tolerance")
}

func TestOptions_ZeroEpsilonAllowed(t *testing.T) {
	_, err := limit.New(limit.WithEpsilon(0))
	assert.NoError(t, err)
}

// TestNew_NilOnStepFromCustomOption checks a hand-written Option that
// clears the hook does not break estimation.
func TestNew_NilOnStepFromCustomOption(t *testing.T) {
	clearHook := func(o *limit.Options) { o.OnStep = nil }

	e, err := limit.New(clearHook)
	require.NoError(t, err)
	assert.NotNil(t, e.Options().OnStep)

	var res *limit.Result
	assert.NotPanics(t, func() {
		res, err = e.Estimate(square, 2)
	})
	require.NoError(t, err)
	assert.True(t, res.Exists)
}
