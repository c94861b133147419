package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into processing, output, display, and utility. Color
// flags (--color / --no-color) are captured separately and applied after
// Parse so the Config default holds unless the user passes one.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses argv (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag, bad jobs value).
func ParseFlags(cfg *Config, argv []string, version string) error {
	fs := flag.NewFlagSet("audioprobe", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var over overrideFlags

	defineProcessingFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &over)
	defineUtilityFlags(fs, cfg, &over)

	if err := fs.Parse(argv); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &over)

	if over.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if over.showVersion {
		fmt.Fprintln(os.Stdout, "audioprobe v"+version)
		os.Exit(0)
	}

	for _, arg := range fs.Args() {
		cfg.Paths = append(cfg.Paths, NormalizeDirArg(arg))
	}
	return nil
}

// overrideFlags holds boolean flags that are applied after Parse. These
// either resolve a conflict (color vs no-color) or trigger exit (showHelp,
// showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineProcessingFlags registers -j/--jobs and -r/--recursive.
func defineProcessingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Jobs, "jobs", cfg.Jobs, "Maximum concurrent file analyses")
	fs.IntVar(&cfg.Jobs, "j", cfg.Jobs, "Same as --jobs")
	fs.BoolVar(&cfg.Recursive, "recursive", cfg.Recursive, "Recurse into subdirectories")
	fs.BoolVar(&cfg.Recursive, "r", cfg.Recursive, "Same as --recursive")
}

// defineOutputFlags registers --json and -o/--output.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "Emit the report as JSON")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Write the report to a file instead of stdout")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "Same as --output")
}

// defineDisplayFlags registers verbosity, quiet, color and log flags.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, over *overrideFlags) {
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Show errors only")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Same as --quiet")
	fs.BoolVar(&over.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&over.noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --check, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, over *overrideFlags) {
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Check ffprobe availability and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&over.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&over.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&over.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&over.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies override flag values into cfg. --no-color wins
// over --color when both are passed.
func applyOverrideFlags(cfg *Config, over *overrideFlags) {
	if over.noColor {
		cfg.ColorMode = ColorNever
	} else if over.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Audioprobe v" + version + " — audio file metadata inspector"},
		{"", ""},
		{"  audioprobe [OPTIONS] <path>...", ""},
		{"", ""},
		{"Processing", ""},
		{"  -j, --jobs <n>", fmt.Sprintf("Max concurrent analyses (default: %d)", DefaultJobs)},
		{"  -r, --recursive", "Recurse into subdirectories"},
		{"", ""},
		{"Output", ""},
		{"  --json", "Emit the report as JSON"},
		{"  -o, --output <path>", "Write the report to a file instead of stdout"},
		{"", ""},
		{"Display", ""},
		{"  -v, --verbose", "Verbose output"},
		{"  -q, --quiet", "Show errors only"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Check ffprobe availability and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
