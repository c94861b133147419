// Package report renders batch results as JSON or plain text.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/backmassage/audioprobe/internal/display"
	"github.com/backmassage/audioprobe/internal/inspect"
	"github.com/backmassage/audioprobe/internal/pipeline"
)

// summary mirrors the "summary" object of the JSON report.
type summary struct {
	TotalFiles            int     `json:"total_files"`
	Successful            int     `json:"successful"`
	Failed                int     `json:"failed"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
	TotalDurationSeconds  float64 `json:"total_duration_seconds"`
	TotalSizeBytes        int64   `json:"total_size_bytes"`
}

type jsonReport struct {
	Summary         summary              `json:"summary"`
	SuccessfulFiles []*inspect.AudioInfo `json:"successful_files"`
	Errors          []string             `json:"errors"`
}

// WriteJSON renders the machine-readable report.
func WriteJSON(w io.Writer, successes []*inspect.AudioInfo, failures []error, stats pipeline.Stats) error {
	rep := jsonReport{
		Summary: summary{
			TotalFiles:            stats.Total,
			Successful:            stats.Succeeded,
			Failed:                stats.Failed,
			ProcessingTimeSeconds: stats.Elapsed.Seconds(),
			TotalDurationSeconds:  stats.TotalDuration,
			TotalSizeBytes:        stats.TotalSize,
		},
		SuccessfulFiles: successes,
		Errors:          make([]string, 0, len(failures)),
	}
	if rep.SuccessfulFiles == nil {
		rep.SuccessfulFiles = []*inspect.AudioInfo{}
	}
	for _, err := range failures {
		rep.Errors = append(rep.Errors, err.Error())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteText renders the human-readable report: a batch header, one block
// per successful file, and a trailing error section.
func WriteText(w io.Writer, successes []*inspect.AudioInfo, failures []error, stats pipeline.Stats) error {
	fmt.Fprintln(w, "=== Audio Analysis Report ===")
	fmt.Fprintf(w, "Elapsed: %.2fs\n", stats.Elapsed.Seconds())
	fmt.Fprintf(w, "Succeeded: %d, Failed: %d\n", stats.Succeeded, stats.Failed)
	fmt.Fprintf(w, "Total duration: %s\n", display.FormatDuration(stats.TotalDuration))
	fmt.Fprintf(w, "Total size: %s\n\n", display.FormatBytes(stats.TotalSize))

	for _, info := range successes {
		writeFileBlock(w, info)
	}

	if len(failures) > 0 {
		fmt.Fprintln(w, "=== Errors ===")
		for _, err := range failures {
			fmt.Fprintf(w, "  %v\n", err)
		}
	}
	return nil
}

func writeFileBlock(w io.Writer, info *inspect.AudioInfo) {
	fmt.Fprintf(w, "File: %s\n", info.FilePath)
	fmt.Fprintf(w, "  Size: %s\n", display.FormatBytes(info.FileSize))
	fmt.Fprintf(w, "  Duration: %s\n", display.FormatDuration(info.DurationSeconds))
	fmt.Fprintf(w, "  Bitrate: %s\n", display.FormatBitrate(info.BitRate))
	fmt.Fprintf(w, "  Sample rate: %d Hz\n", info.SampleRate)
	fmt.Fprintf(w, "  Channels: %d\n", info.Channels)
	fmt.Fprintf(w, "  Codec: %s (%s)\n", info.CodecName, info.CodecLongName)
	fmt.Fprintf(w, "  Format: %s (%s)\n", info.FormatName, info.FormatLongName)
	hasVideo := "no"
	if info.HasVideo {
		hasVideo = "yes"
	}
	fmt.Fprintf(w, "  Has video: %s\n", hasVideo)
	fmt.Fprintf(w, "  Processed in: %dms\n", info.ProcessingTimeMS)

	if len(info.Metadata) > 0 {
		keys := make([]string, 0, len(info.Metadata))
		for k, v := range info.Metadata {
			if v != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			sort.Strings(keys)
			fmt.Fprintln(w, "  Metadata:")
			for _, k := range keys {
				fmt.Fprintf(w, "    %s: %s\n", k, info.Metadata[k])
			}
		}
	}
	fmt.Fprintln(w)
}
