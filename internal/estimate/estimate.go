// Package estimate provides extension-based metadata estimation for when
// ffprobe is unavailable or fails. Values are fixed assumptions, not
// measurements; they keep the report populated with plausible defaults.
package estimate

import (
	"strings"
)

// DefaultDurationSeconds is used when no bitrate is known to derive a
// duration from the file size.
const DefaultDurationSeconds = 300.0

// Spec holds the assumed properties for one file extension.
type Spec struct {
	CodecName      string
	CodecLongName  string
	FormatName     string
	FormatLongName string
	SampleRate     int
	Channels       int
	BitRate        int64 // 0 means no assumed bitrate (e.g. lossless).
}

// Known extension table. Uncompressed wave gets an exact PCM-derived
// bitrate; FLAC has no fixed rate so none is assumed.
var specs = map[string]Spec{
	"mp3": {
		CodecName:      "mp3",
		CodecLongName:  "MP3 (MPEG audio layer 3)",
		FormatName:     "mp3",
		FormatLongName: "MP2/3 (MPEG audio layer 2/3)",
		SampleRate:     44100,
		Channels:       2,
		BitRate:        320000,
	},
	"wav": {
		CodecName:      "pcm_s16le",
		CodecLongName:  "PCM signed 16-bit little-endian",
		FormatName:     "wav",
		FormatLongName: "WAV / WAVE (Waveform Audio)",
		SampleRate:     44100,
		Channels:       2,
		BitRate:        44100 * 2 * 16,
	},
	"flac": {
		CodecName:      "flac",
		CodecLongName:  "FLAC (Free Lossless Audio Codec)",
		FormatName:     "flac",
		FormatLongName: "raw FLAC",
		SampleRate:     44100,
		Channels:       2,
	},
}

// ForExtension returns the assumed Spec for a file extension (with or
// without leading dot, any case). Unknown extensions get a generic
// "<EXT> audio" / "<EXT> format" label pair with default assumptions.
func ForExtension(ext string) Spec {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if s, ok := specs[ext]; ok {
		return s
	}
	upper := strings.ToUpper(ext)
	return Spec{
		CodecName:      ext,
		CodecLongName:  upper + " audio",
		FormatName:     ext,
		FormatLongName: upper + " format",
		SampleRate:     44100,
		Channels:       2,
		BitRate:        320000,
	}
}

// Duration estimates a duration in seconds from file size and bitrate.
// With an unknown bitrate the fixed default applies.
func Duration(sizeBytes, bitRate int64) float64 {
	if bitRate > 0 {
		return float64(sizeBytes*8) / float64(bitRate)
	}
	return DefaultDurationSeconds
}
