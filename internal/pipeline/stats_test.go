package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/backmassage/audioprobe/internal/inspect"
)

func TestSummarize(t *testing.T) {
	outcomes := []Outcome{
		{Path: "a.mp3", Info: &inspect.AudioInfo{FilePath: "a.mp3", DurationSeconds: 10.0, FileSize: 100}},
		{Path: "x.mp3", Err: errors.New("boom")},
		{Path: "b.mp3", Info: &inspect.AudioInfo{FilePath: "b.mp3", DurationSeconds: 20.0, FileSize: 200}},
		{Path: "y.mp3", Err: errors.New("bang")},
		{Path: "c.mp3", Info: &inspect.AudioInfo{FilePath: "c.mp3", DurationSeconds: 30.0, FileSize: 300}},
	}

	elapsed := 2 * time.Second
	successes, failures, stats := Summarize(outcomes, elapsed)

	if stats.Total != 5 || stats.Succeeded != 3 || stats.Failed != 2 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.TotalDuration != 60.0 {
		t.Errorf("TotalDuration = %v, want 60.0", stats.TotalDuration)
	}
	if stats.TotalSize != 600 {
		t.Errorf("TotalSize = %d, want 600", stats.TotalSize)
	}
	if stats.Elapsed != elapsed {
		t.Errorf("Elapsed = %v, want %v", stats.Elapsed, elapsed)
	}

	// Partitioning preserves insertion order within each side.
	wantSuccess := []string{"a.mp3", "b.mp3", "c.mp3"}
	for i, s := range successes {
		if s.FilePath != wantSuccess[i] {
			t.Errorf("successes[%d] = %q, want %q", i, s.FilePath, wantSuccess[i])
		}
	}
	if len(failures) != 2 || failures[0].Error() != "boom" || failures[1].Error() != "bang" {
		t.Errorf("failures = %v", failures)
	}
}

func TestSummarize_Empty(t *testing.T) {
	successes, failures, stats := Summarize(nil, 0)
	if len(successes) != 0 || len(failures) != 0 {
		t.Error("non-empty partitions for empty input")
	}
	if stats.TotalDuration != 0 || stats.TotalSize != 0 || stats.Total != 0 {
		t.Errorf("stats = %+v, want zero values", stats)
	}
}

func TestSummarize_AllFailures(t *testing.T) {
	outcomes := []Outcome{
		{Path: "x.mp3", Err: errors.New("nope")},
	}
	_, _, stats := Summarize(outcomes, time.Second)
	if stats.TotalDuration != 0 || stats.TotalSize != 0 {
		t.Errorf("failures contributed to sums: %+v", stats)
	}
}
