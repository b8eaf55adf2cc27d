// Package logging builds the zap logger used by the demo driver and adapts
// estimator hooks into structured log records.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/limes/limit"
)

// New returns a console-encoded logger writing to stderr at level
// (debug, info, warn, error, ...).
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return logger, nil
}

// StepLogger returns a limit.StepFunc that records every sampled element
// at debug level. Nothing is allocated when debug is disabled.
func StepLogger(logger *zap.Logger, sample string) limit.StepFunc {
	return func(side limit.Side, s limit.Step) {
		if ce := logger.Check(zap.DebugLevel, "sampled"); ce != nil {
			ce.Write(
				zap.String("sample", sample),
				zap.Stringer("side", side),
				zap.Int("step", s.Index),
				zap.Float64("x", s.X),
				zap.Float64("fx", s.FX),
				zap.Bool("defined", s.Defined),
			)
		}
	}
}

// LogResult records the verdict of one estimation at info level.
func LogResult(logger *zap.Logger, sample string, res *limit.Result) {
	fields := []zap.Field{
		zap.String("sample", sample),
		zap.Float64("point", res.Point),
		zap.Bool("exists", res.Exists),
		zap.Int("left_steps", res.Left.Len()),
		zap.Int("right_steps", res.Right.Len()),
	}
	if res.Exists {
		fields = append(fields, zap.Float64("value", res.Value))
	} else {
		fields = append(fields, zap.Stringer("reason", res.Reason))
	}

	logger.Info("limit estimated", fields...)
}
