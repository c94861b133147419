// Package inspect resolves one file path into technical audio metadata.
//
// Resolution prefers a real ffprobe probe and degrades gracefully to
// extension-based estimation when the tool is missing or fails. Only a
// missing file is a hard failure; every other adverse condition produces a
// best-effort estimated record.
package inspect

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/audioprobe/internal/estimate"
	"github.com/backmassage/audioprobe/internal/probe"
)

// ProbeFunc runs the external probe against one path. Matches
// [probe.Probe]; swappable for tests.
type ProbeFunc func(ctx context.Context, path string) (*probe.Result, error)

// Logger is the minimal logging interface the resolver needs. Defined here
// (rather than importing the logging package) so that inspect remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Debug(string, ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Resolver turns paths into AudioInfo records. A nil Probe means ffprobe
// is unavailable and every file is estimated.
type Resolver struct {
	probe ProbeFunc
	log   Logger
}

// NewResolver builds a Resolver. probeFn may be nil (estimation only);
// log may be nil (silent).
func NewResolver(probeFn ProbeFunc, log Logger) *Resolver {
	if log == nil {
		log = nopLogger{}
	}
	return &Resolver{probe: probeFn, log: log}
}

// Resolve produces the metadata record for one path. The only error it
// returns is *NotFoundError; probe and parse failures degrade to the
// estimation path with a debug-level diagnostic.
func (r *Resolver) Resolve(ctx context.Context, path string) (*AudioInfo, error) {
	start := time.Now()

	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		// Stat errors other than non-existence are tolerated: the file is
		// there, we just cannot read its size.
		fi = nil
	}

	info := newAudioInfo(path)
	if fi != nil {
		info.FileSize = fi.Size()
	}

	probed := false
	if r.probe != nil {
		if res, perr := r.probe(ctx, path); perr != nil {
			r.log.Debug("degrading to estimation: %v", classifyProbeError(perr))
		} else {
			r.applyProbe(info, res)
			probed = true
		}
	}
	if !probed {
		r.applyEstimate(info)
	}

	backfillTags(info.Metadata, path)

	info.ProcessingTimeMS = time.Since(start).Milliseconds()
	return info, nil
}

// applyProbe copies probed container and stream fields into info.
func (r *Resolver) applyProbe(info *AudioInfo, res *probe.Result) {
	info.FormatName = res.Format.FormatName
	info.FormatLongName = res.Format.FormatLongName
	info.DurationSeconds = res.Format.Duration
	info.BitRate = res.BitRate()
	info.HasVideo = res.HasVideo

	for k, v := range res.Format.Tags {
		info.Metadata[k] = v
	}

	if a := res.Audio; a != nil {
		info.CodecName = a.CodecName
		info.CodecLongName = a.CodecLongName
		info.SampleRate = a.SampleRate
		info.Channels = a.Channels
	}
}

// applyEstimate fills info from the static extension table.
func (r *Resolver) applyEstimate(info *AudioInfo) {
	spec := estimate.ForExtension(filepath.Ext(info.FilePath))
	info.CodecName = spec.CodecName
	info.CodecLongName = spec.CodecLongName
	info.FormatName = spec.FormatName
	info.FormatLongName = spec.FormatLongName
	info.SampleRate = spec.SampleRate
	info.Channels = spec.Channels
	info.BitRate = spec.BitRate
	info.DurationSeconds = estimate.Duration(info.FileSize, info.BitRate)
}

// classifyProbeError maps a raw probe error onto the failure taxonomy:
// malformed output is a ProcessingError, anything else a ToolExecutionError.
// Neither crosses the resolver boundary; both only inform diagnostics.
func classifyProbeError(err error) error {
	if errors.Is(err, probe.ErrMalformedOutput) {
		return &ProcessingError{Err: err}
	}
	return &ToolExecutionError{Err: err}
}

// backfillTags supplies defaults for absent title/artist/album. Present
// keys are never overwritten, even with empty-string values, so the
// operation is idempotent.
func backfillTags(tags map[string]string, path string) {
	if _, ok := tags["title"]; !ok {
		base := filepath.Base(path)
		tags["title"] = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if _, ok := tags["artist"]; !ok {
		tags["artist"] = "Unknown Artist"
	}
	if _, ok := tags["album"]; !ok {
		tags["album"] = "Unknown Album"
	}
}
