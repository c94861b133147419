package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// Progress tracks batch completion with an atomic counter and renders a
// best-effort inline line on a TTY. The counter is display-only; the
// runner's correctness never depends on it, and rendering never blocks
// resolution beyond a short terminal write.
type Progress struct {
	total   int
	done    atomic.Int64
	enabled bool
	mu      sync.Mutex // serializes terminal writes only
}

// NewProgress returns a Progress for total targets. Rendering is active
// only when enabled (caller decides: TTY and not quiet).
func NewProgress(total int, enabled bool) *Progress {
	return &Progress{total: total, enabled: enabled}
}

// Done returns how many targets have completed so far.
func (p *Progress) Done() int {
	return int(p.done.Load())
}

// Advance records one completed target and updates the inline display.
func (p *Progress) Advance(path string) {
	current := int(p.done.Add(1))
	if !p.enabled {
		return
	}

	pct := current * 100 / p.total
	status := fmt.Sprintf("  Analyzing [%d/%d] %d%% ", current, p.total, pct)

	name := filepath.Base(path)
	const maxName = 40
	if len(name) > maxName {
		name = name[:maxName-1] + "…"
	}
	status += name

	// Pad to 80 chars to overwrite previous longer lines, then \r.
	if len(status) < 80 {
		status += strings.Repeat(" ", 80-len(status))
	}

	p.mu.Lock()
	fmt.Fprintf(os.Stdout, "\r%s", status)
	p.mu.Unlock()
}

// Finish erases the inline progress line.
func (p *Progress) Finish() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", 80))
	p.mu.Unlock()
}
