// Command audioprobe is the CLI entrypoint for the audio file inspector.
//
// It parses flags, validates configuration, collects target files, runs the
// bounded-concurrency analysis batch, and renders a text or JSON report.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/backmassage/audioprobe/internal/check"
	"github.com/backmassage/audioprobe/internal/config"
	"github.com/backmassage/audioprobe/internal/display"
	"github.com/backmassage/audioprobe/internal/gate"
	"github.com/backmassage/audioprobe/internal/inspect"
	"github.com/backmassage/audioprobe/internal/logging"
	"github.com/backmassage/audioprobe/internal/pipeline"
	"github.com/backmassage/audioprobe/internal/probe"
	"github.com/backmassage/audioprobe/internal/report"
	"github.com/backmassage/audioprobe/internal/term"
)

// version is injected at build time via -ldflags. When built with plain
// "go build" it retains the default.
var version = "0.2.0"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file
	// capture.
	cfg := config.DefaultConfig()
	if err := config.LoadFile(&cfg, ""); err != nil {
		fmt.Fprintf(os.Stderr, "audioprobe: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "audioprobe: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "audioprobe: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audioprobe: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	if !cfg.Quiet {
		display.PrintBanner()
	}

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	// Phase 3: Collect targets. File arguments are analyzed as given;
	// directory arguments are scanned for audio files. A failed scan
	// aborts only that root's contribution.
	targets := collectTargets(&cfg, log)
	if len(targets) == 0 {
		log.Warn("No audio files found to process")
		return 0
	}

	// Phase 4: Decide probe vs estimation once for the whole run.
	var probeFn inspect.ProbeFunc
	if probe.Available() {
		log.Info("Using ffprobe for audio analysis")
		probeFn = probe.Probe
	} else {
		log.Warn("%v", &inspect.ToolUnavailableError{})
	}

	log.Info("Processing %d files with up to %d concurrent analyses", len(targets), cfg.Jobs)

	// Phase 5: Run the batch. There is no cancellation: once started,
	// every task runs to completion.
	resolver := inspect.NewResolver(probeFn, log)
	progress := pipeline.NewProgress(len(targets), term.IsTerminal(os.Stdout) && !cfg.Quiet)
	runner := pipeline.NewRunner(gate.New(cfg.Jobs), resolver.Resolve, progress)

	start := time.Now()
	outcomes := runner.Run(context.Background(), targets)
	elapsed := time.Since(start)

	successes, failures, stats := pipeline.Summarize(outcomes, elapsed)

	log.Info("Processing completed in %.2fs", elapsed.Seconds())
	log.Success("Successfully processed: %d", stats.Succeeded)
	if stats.Failed > 0 {
		log.Warn("Failed to process: %d", stats.Failed)
	}

	// Phase 6: Render the report.
	if err := writeReport(&cfg, successes, failures, stats); err != nil {
		log.Error("Cannot write report: %v", err)
		return 1
	}
	return 0
}

// collectTargets expands the configured paths into a flat list of files.
// Nonexistent paths are warned about and skipped.
func collectTargets(cfg *config.Config, log *logging.Logger) []string {
	var targets []string
	for _, path := range cfg.Paths {
		fi, err := os.Stat(path)
		switch {
		case err != nil:
			log.Warn("Path does not exist: %s", path)
		case fi.IsDir():
			found, err := pipeline.Discover(path, cfg.Recursive)
			if err != nil {
				log.Error("Cannot scan directory %s: %v", path, err)
				continue
			}
			log.Debug("Found %d audio files in %s", len(found), path)
			targets = append(targets, found...)
		default:
			targets = append(targets, path)
		}
	}
	return targets
}

// writeReport renders to the configured output file, or stdout when none
// is set.
func writeReport(cfg *config.Config, successes []*inspect.AudioInfo, failures []error, stats pipeline.Stats) error {
	out := os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if cfg.JSON {
		return report.WriteJSON(out, successes, failures, stats)
	}
	return report.WriteText(out, successes, failures, stats)
}
