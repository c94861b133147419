package probe

import (
	"errors"
	"testing"
)

// Realistic ffprobe JSON for an MP3 with container tags and a single
// audio stream carrying its own bitrate.
const sampleMP3 = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mp3",
      "codec_long_name": "MP3 (MPEG audio layer 3)",
      "codec_type": "audio",
      "sample_rate": "44100",
      "channels": 2,
      "bit_rate": "192000"
    }
  ],
  "format": {
    "filename": "/music/test.mp3",
    "format_name": "mp3",
    "format_long_name": "MP2/3 (MPEG audio layer 2/3)",
    "duration": "213.551020",
    "size": "5124096",
    "bit_rate": "191999",
    "tags": { "TITLE": "Test Song", "Artist": "Test Artist", "album": "Test Album" }
  }
}`

// Music video: cover-art-free MP4 with one video and two audio streams.
// Only the first audio stream is authoritative.
const sampleWithVideo = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "bit_rate": "2500000"
    },
    {
      "index": 1,
      "codec_name": "aac",
      "codec_long_name": "AAC (Advanced Audio Coding)",
      "codec_type": "audio",
      "sample_rate": "48000",
      "channels": 2,
      "bit_rate": "128000"
    },
    {
      "index": 2,
      "codec_name": "ac3",
      "codec_type": "audio",
      "sample_rate": "48000",
      "channels": 6,
      "bit_rate": "384000"
    }
  ],
  "format": {
    "filename": "/music/video.m4a",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "format_long_name": "QuickTime / MOV",
    "duration": "95.5",
    "bit_rate": ""
  }
}`

func TestParseJSON_AudioFields(t *testing.T) {
	r, err := ParseJSON([]byte(sampleMP3))
	if err != nil {
		t.Fatal(err)
	}

	if r.Format.FormatName != "mp3" {
		t.Errorf("FormatName = %q, want mp3", r.Format.FormatName)
	}
	if r.Format.Duration != 213.551020 {
		t.Errorf("Duration = %v, want 213.551020", r.Format.Duration)
	}
	if r.HasVideo {
		t.Error("HasVideo = true for pure audio file")
	}
	if r.Audio == nil {
		t.Fatal("no audio stream selected")
	}
	if r.Audio.CodecName != "mp3" || r.Audio.SampleRate != 44100 || r.Audio.Channels != 2 {
		t.Errorf("audio stream = %+v", r.Audio)
	}
}

func TestParseJSON_TagsLowercased(t *testing.T) {
	r, err := ParseJSON([]byte(sampleMP3))
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"title":  "Test Song",
		"artist": "Test Artist",
		"album":  "Test Album",
	}
	for k, v := range want {
		if r.Format.Tags[k] != v {
			t.Errorf("Tags[%q] = %q, want %q", k, r.Format.Tags[k], v)
		}
	}
	if _, ok := r.Format.Tags["TITLE"]; ok {
		t.Error("uppercase tag key survived normalization")
	}
}

func TestParseJSON_FirstAudioStreamWins(t *testing.T) {
	r, err := ParseJSON([]byte(sampleWithVideo))
	if err != nil {
		t.Fatal(err)
	}

	if !r.HasVideo {
		t.Error("HasVideo = false, want true")
	}
	if r.Audio == nil {
		t.Fatal("no audio stream selected")
	}
	if r.Audio.CodecName != "aac" {
		t.Errorf("selected codec = %q, want aac (first audio stream)", r.Audio.CodecName)
	}
	if r.Audio.Channels != 2 {
		t.Errorf("channels = %d, want 2", r.Audio.Channels)
	}
}

func TestBitRate_ContainerWins(t *testing.T) {
	// Container bitrate present: stream value must be ignored even
	// though it is arguably more precise.
	r, err := ParseJSON([]byte(sampleMP3))
	if err != nil {
		t.Fatal(err)
	}
	if got := r.BitRate(); got != 191999 {
		t.Errorf("BitRate() = %d, want container value 191999", got)
	}
}

func TestBitRate_StreamFallback(t *testing.T) {
	// Container bitrate empty/zero: fall back to the stream value.
	r, err := ParseJSON([]byte(sampleWithVideo))
	if err != nil {
		t.Fatal(err)
	}
	if got := r.BitRate(); got != 128000 {
		t.Errorf("BitRate() = %d, want stream value 128000", got)
	}
}

func TestBitRate_Unknown(t *testing.T) {
	r := &Result{}
	if got := r.BitRate(); got != 0 {
		t.Errorf("BitRate() = %d, want 0", got)
	}
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte("not json at all"))
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
	if !errors.Is(err, ErrMalformedOutput) {
		t.Errorf("error = %v, want ErrMalformedOutput", err)
	}
}

func TestParseJSON_EmptyDocument(t *testing.T) {
	r, err := ParseJSON([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if r.Audio != nil || r.HasVideo {
		t.Errorf("empty document produced streams: %+v", r)
	}
	if r.Format.Duration != 0 || r.Format.BitRate != 0 {
		t.Errorf("empty document produced format values: %+v", r.Format)
	}
}

func TestNumericParsing_Defaults(t *testing.T) {
	// ffprobe numeric strings that fail to parse default to zero.
	const bad = `{
	  "streams": [
	    { "codec_type": "audio", "sample_rate": "fast", "bit_rate": "many" }
	  ],
	  "format": { "duration": "soon", "bit_rate": "" }
	}`
	r, err := ParseJSON([]byte(bad))
	if err != nil {
		t.Fatal(err)
	}
	if r.Format.Duration != 0 {
		t.Errorf("Duration = %v, want 0", r.Format.Duration)
	}
	if r.Audio.SampleRate != 0 || r.Audio.BitRate != 0 {
		t.Errorf("audio = %+v, want zeroed numerics", r.Audio)
	}
}
