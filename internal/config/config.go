// Package config loads the demo driver configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/multierr"
	"golang.org/x/text/language"

	"github.com/katalvlaran/limes/limit"
	"github.com/katalvlaran/limes/report"
	"github.com/katalvlaran/limes/samples"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the limitdemo configuration. Estimator fields default to the
// limit package defaults.
type Config struct {
	Offset    float64 `env:"LIMES_OFFSET" envDefault:"1"`
	Epsilon   float64 `env:"LIMES_EPSILON" envDefault:"1e-12"`
	MaxSteps  int     `env:"LIMES_MAX_STEPS" envDefault:"25"`
	Tolerance float64 `env:"LIMES_TOLERANCE" envDefault:"1e-5"`

	// Lang is a BCP 47 tag for report messages.
	Lang string `env:"LIMES_LANG" envDefault:"en"`

	// Precision is the number of decimals in reports.
	Precision int `env:"LIMES_PRECISION" envDefault:"12"`

	// Steps toggles the per-side step tables.
	Steps bool `env:"LIMES_STEPS" envDefault:"true"`

	LogLevel string `env:"LIMES_LOG_LEVEL" envDefault:"info"`

	// Samples restricts the run to the named samples; empty means all.
	Samples []string `env:"LIMES_SAMPLES" envSeparator:","`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given key/value pairs only;
// the process environment is ignored.
func LoadFrom(environ map[string]string) (Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	for i, name := range cfg.Samples {
		cfg.Samples[i] = strings.TrimSpace(name)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the fields not covered by limit.Options.Validate.
func (c Config) Validate() error {
	var err error
	if _, perr := language.Parse(c.Lang); perr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: LIMES_LANG %q: %v", ErrInvalid, c.Lang, perr))
	}
	if c.Precision < 0 || c.Precision > report.MaxPrecision {
		err = multierr.Append(err, fmt.Errorf("%w: LIMES_PRECISION %d out of [0, %d]", ErrInvalid, c.Precision, report.MaxPrecision))
	}
	for _, name := range c.Samples {
		if _, ok := samples.ByName(name); !ok {
			err = multierr.Append(err, fmt.Errorf("%w: LIMES_SAMPLES: unknown sample %q (known: %s)",
				ErrInvalid, name, strings.Join(samples.Names(), ", ")))
		}
	}

	return err
}

// EstimatorOptions maps the estimator fields onto limit options.
func (c Config) EstimatorOptions() []limit.Option {
	return []limit.Option{
		limit.WithOffset(c.Offset),
		limit.WithEpsilon(c.Epsilon),
		limit.WithMaxSteps(c.MaxSteps),
		limit.WithTolerance(c.Tolerance),
	}
}

// ReportOptions maps the presentation fields onto report options.
func (c Config) ReportOptions() []report.Option {
	opts := []report.Option{report.WithPrecision(c.Precision)}
	if tag, err := language.Parse(c.Lang); err == nil {
		opts = append(opts, report.WithLanguage(tag))
	}
	if !c.Steps {
		opts = append(opts, report.WithoutSteps())
	}

	return opts
}

// SelectedSamples resolves Samples, in the order given, or the whole
// catalogue when none are named.
func (c Config) SelectedSamples() []samples.Sample {
	if len(c.Samples) == 0 {
		return samples.All()
	}
	out := make([]samples.Sample, 0, len(c.Samples))
	for _, name := range c.Samples {
		if s, ok := samples.ByName(name); ok {
			out = append(out, s)
		}
	}

	return out
}
