// Package check provides the --check diagnostics: ffprobe presence and
// version reporting.
package check

import (
	"os/exec"
	"strings"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck reports ffprobe availability and version. Returns false when
// ffprobe is missing so the CLI can exit non-zero.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Error("ffprobe not found on PATH")
		log.Warn("Install FFmpeg to enable real analysis; without it, metadata is estimated from file extensions")
		return false
	}

	out, err := exec.Command("ffprobe", "-version").Output()
	if err != nil {
		log.Warn("ffprobe found but -version failed: %v", err)
		return false
	}

	version := string(out)
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = version[:i]
	}
	log.Success("%s", strings.TrimSpace(version))
	return true
}
