package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/timeglass/internal/cli"
	"github.com/alexanderramin/timeglass/internal/cli/formatter"
	"github.com/alexanderramin/timeglass/internal/config"
	"github.com/alexanderramin/timeglass/internal/extract"
	"github.com/alexanderramin/timeglass/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Plain output when stdout is not a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	// Region and run logging go to stderr when enabled, keeping stdout
	// clean for the report.
	var regionObs extract.RegionObserver = extract.NoopRegionObserver{}
	var useCaseObs service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogRuns {
		regionObs = extract.NewLogRegionObserver(os.Stderr)
		useCaseObs = service.NewLogUseCaseObserver(os.Stderr)
	}

	scanner := extract.NewScanner(cfg.Sampling, regionObs)

	app := &cli.App{
		Analysis:           service.NewAnalysisService(scanner, useCaseObs),
		DefaultGapMinutes:  cfg.GapMinutes,
		DefaultMaxSessions: cfg.MaxSessions,
	}

	return cli.NewRootCmd(app).Execute()
}
