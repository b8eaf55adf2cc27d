// Package main runs the limit estimator over the sample catalogue and
// prints a report per sample to stdout. Logs go to stderr.
//
// Configuration comes from LIMES_* environment variables, e.g.
//
//	LIMES_SAMPLES=cube-over-linear LIMES_LANG=id go run ./cmd/limitdemo
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/limes/internal/config"
	"github.com/katalvlaran/limes/internal/logging"
	"github.com/katalvlaran/limes/limit"
	"github.com/katalvlaran/limes/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger = logger.With(zap.String("run_id", uuid.New().String()))
	if err := run(os.Stdout, cfg, logger); err != nil {
		logger.Error("limitdemo failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run estimates and renders every selected sample, separated by a blank line.
func run(w io.Writer, cfg config.Config, logger *zap.Logger) error {
	selected := cfg.SelectedSamples()
	logger.Info("starting", zap.Int("samples", len(selected)), zap.String("lang", cfg.Lang))

	for i, s := range selected {
		opts := append(cfg.EstimatorOptions(), limit.WithOnStep(logging.StepLogger(logger, s.Name)))
		est, err := limit.New(opts...)
		if err != nil {
			return fmt.Errorf("estimator: %w", err)
		}

		res, err := est.Estimate(s.Func, s.Point)
		if err != nil {
			return fmt.Errorf("estimate %s: %w", s.Name, err)
		}
		logging.LogResult(logger, s.Name, res)

		ropts := append(cfg.ReportOptions(), report.WithTitle(s.Expr))
		if s.HasExact {
			ropts = append(ropts, report.WithExact(s.Exact))
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("write: %w", err)
			}
		}
		if err := report.Render(w, res, ropts...); err != nil {
			return fmt.Errorf("render %s: %w", s.Name, err)
		}
	}

	return nil
}
