package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/docpost/internal/config"
	"github.com/aretw0/docpost/internal/metrics"
	"github.com/aretw0/docpost/internal/presentation/tui"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config  config.Config
	DryRun  bool
	Debug   bool
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// Execute handles the run command: cleanup, trim and heading pass over
// Config.Root, then metrics and the summary.
func Execute(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	stdout, stderr := orStdout(opts.Stdout), orStderr(opts.Stderr)

	logger, err := createLogger(stderr, opts.Debug, cfg)
	if err != nil {
		return err
	}

	hooks := createHooks(stdout, opts.Verbose && !opts.Quiet, opts.DryRun)
	p := createProcessor(cfg, logger, opts.DryRun, hooks)

	logger.Info("Starting run", "root", cfg.Root, "dry_run", opts.DryRun)
	report, runErr := p.Run(ctx, cfg.Root)

	if cfg.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(report, runErr)
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			if runErr == nil {
				return err
			}
			logger.Error("Metrics not written", "err", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	logger.Info("Run finished", "files", len(report.Files), "removed", len(report.Removed), "duration", report.Duration)
	if !opts.Quiet {
		tui.PrintSummary(stdout, report)
	}
	return nil
}
