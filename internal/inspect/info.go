package inspect

// AudioInfo is the resolved technical metadata for one audio file. It is
// created once per target and never mutated after being handed to the
// aggregator. JSON tags define the report wire format.
type AudioInfo struct {
	FilePath         string            `json:"file_path"`
	FileSize         int64             `json:"file_size"`
	DurationSeconds  float64           `json:"duration_seconds"`
	BitRate          int64             `json:"bit_rate"` // bits/sec, 0 = unknown
	SampleRate       int               `json:"sample_rate"`
	Channels         int               `json:"channels"`
	CodecName        string            `json:"codec_name"`
	CodecLongName    string            `json:"codec_long_name"`
	FormatName       string            `json:"format_name"`
	FormatLongName   string            `json:"format_long_name"`
	HasVideo         bool              `json:"has_video"`
	Metadata         map[string]string `json:"metadata"`
	ProcessingTimeMS int64             `json:"processing_time_ms"`
}

func newAudioInfo(path string) *AudioInfo {
	return &AudioInfo{
		FilePath: path,
		Metadata: make(map[string]string),
	}
}
