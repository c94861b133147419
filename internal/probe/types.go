// Package probe provides ffprobe-based audio inspection and typed result
// structures. A single JSON call per file yields both container and stream
// metadata.
package probe

// FormatInfo holds container-level metadata from ffprobe's format section.
// Tag keys are lowercased during parsing.
type FormatInfo struct {
	FormatName     string
	FormatLongName string
	Duration       float64
	BitRate        int64
	Tags           map[string]string
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index         int
	CodecName     string
	CodecLongName string
	SampleRate    int
	Channels      int
	BitRate       int64
}

// Result is the fully parsed output of a single ffprobe JSON call.
// Audio is the first audio stream in declaration order (nil if none);
// HasVideo is set when any video stream exists.
type Result struct {
	Format   FormatInfo
	Audio    *AudioStream
	HasVideo bool
}

// BitRate returns the container-level bitrate when known, falling back to
// the audio stream bitrate only when the container value is zero. The
// container value wins even when a stream value also exists.
func (r *Result) BitRate() int64 {
	if r.Format.BitRate > 0 {
		return r.Format.BitRate
	}
	if r.Audio != nil && r.Audio.BitRate > 0 {
		return r.Audio.BitRate
	}
	return 0
}
