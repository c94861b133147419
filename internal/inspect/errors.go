package inspect

import (
	"errors"
	"fmt"
)

// NotFoundError is the only failure that crosses the resolver boundary:
// the target path does not exist at resolution time.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// InvalidAudioFileError is reserved for content validation failures. The
// estimation fallback never raises it, but the taxonomy keeps the slot for
// future validators.
type InvalidAudioFileError struct {
	Path   string
	Reason string
}

func (e *InvalidAudioFileError) Error() string {
	return fmt.Sprintf("invalid audio file: %s - %s", e.Path, e.Reason)
}

// ToolUnavailableError reports that ffprobe is not installed. It triggers
// estimation instead of surfacing as a per-file failure.
type ToolUnavailableError struct{}

func (e *ToolUnavailableError) Error() string {
	return "ffprobe not found, install FFmpeg for accurate analysis"
}

// ToolExecutionError wraps an ffprobe invocation failure. Absorbed into
// estimation, never a per-file failure.
type ToolExecutionError struct {
	Err error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("ffprobe execution error: %v", e.Err)
}

func (e *ToolExecutionError) Unwrap() error { return e.Err }

// ProcessingError wraps malformed probe output parsing. Absorbed into
// estimation, never a per-file failure.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing error: %v", e.Err)
}

func (e *ProcessingError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
