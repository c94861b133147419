// Package config holds runtime configuration: defaults, the optional YAML
// config file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultJobs is the default concurrency limit for file analysis.
const DefaultJobs = 50

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], and then mutated by [ParseFlags] before
// being passed (by pointer) to packages that need it.
type Config struct {
	// Paths to inspect (set from positional args). Files are analyzed
	// directly; directories are scanned for audio files.
	Paths []string `yaml:"-"`

	// Jobs is the maximum number of concurrent file analyses.
	Jobs int `yaml:"jobs"`

	// Recursive scans subdirectories of directory arguments.
	Recursive bool `yaml:"recursive"`

	// Output format and destination.
	JSON       bool   `yaml:"json"`
	OutputFile string `yaml:"output"` // Empty means stdout.

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	Quiet     bool      `yaml:"quiet"` // Errors only.
	ColorMode ColorMode `yaml:"color"`
	LogFile   string    `yaml:"log_file"` // Optional log file path.

	// CheckOnly runs ffprobe diagnostics and exits.
	CheckOnly bool `yaml:"-"`
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [LoadFile] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		Jobs:      DefaultJobs,
		Recursive: false,
		JSON:      false,
		Verbose:   false,
		Quiet:     false,
		ColorMode: ColorAuto,
	}
}

// Validate checks field ranges and cross-field constraints. Path presence is
// not checked in CheckOnly mode.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1 (got %d)", c.Jobs)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Verbose && c.Quiet {
		return errors.New("--verbose and --quiet are mutually exclusive")
	}

	if c.CheckOnly {
		return nil
	}
	if len(c.Paths) == 0 {
		return errors.New("need at least one file or directory path")
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
