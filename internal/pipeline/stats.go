package pipeline

import (
	"time"

	"github.com/backmassage/audioprobe/internal/inspect"
)

// Stats holds aggregate counters for one batch run. Duration and size
// totals cover successes only.
type Stats struct {
	Total         int
	Succeeded     int
	Failed        int
	Elapsed       time.Duration
	TotalDuration float64 // seconds, over successes
	TotalSize     int64   // bytes, over successes
}

// Summarize partitions outcomes into successes and failures, preserving
// insertion order within each side, and computes batch statistics. The
// batch elapsed time is measured by the caller around Run, not summed
// from per-file processing times.
func Summarize(outcomes []Outcome, elapsed time.Duration) ([]*inspect.AudioInfo, []error, Stats) {
	var successes []*inspect.AudioInfo
	var failures []error

	for _, o := range outcomes {
		if o.Err != nil {
			failures = append(failures, o.Err)
			continue
		}
		successes = append(successes, o.Info)
	}

	stats := Stats{
		Total:     len(outcomes),
		Succeeded: len(successes),
		Failed:    len(failures),
		Elapsed:   elapsed,
	}
	for _, info := range successes {
		stats.TotalDuration += info.DurationSeconds
		stats.TotalSize += info.FileSize
	}
	return successes, failures, stats
}
