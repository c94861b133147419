// Package pipeline orchestrates file discovery, bounded-concurrency batch
// processing, and result aggregation.
package pipeline

import (
	"context"
	"sync"

	"github.com/backmassage/audioprobe/internal/gate"
	"github.com/backmassage/audioprobe/internal/inspect"
)

// Outcome is the per-target result: Info on success, Err on failure,
// never both. Path is always set.
type Outcome struct {
	Path string
	Info *inspect.AudioInfo
	Err  error
}

// ResolveFunc resolves one target. Matches (*inspect.Resolver).Resolve;
// swappable for tests.
type ResolveFunc func(ctx context.Context, path string) (*inspect.AudioInfo, error)

// Runner fans targets out across the admission gate and joins all results.
type Runner struct {
	gate     *gate.Gate
	resolve  ResolveFunc
	progress *Progress // may be nil
}

// NewRunner builds a Runner. progress may be nil to disable display.
func NewRunner(g *gate.Gate, resolve ResolveFunc, progress *Progress) *Runner {
	return &Runner{gate: g, resolve: resolve, progress: progress}
}

// Run processes every target and returns exactly one Outcome per target,
// indexed like targets. At most the gate's limit of resolutions execute
// concurrently. Individual failures are captured as Outcome.Err and never
// abort the batch; Run waits for every launched task.
func (r *Runner) Run(ctx context.Context, targets []string) []Outcome {
	outcomes := make([]Outcome, len(targets))

	var wg sync.WaitGroup
	for i, path := range targets {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			outcomes[i] = r.runOne(ctx, path)
			if r.progress != nil {
				r.progress.Advance(path)
			}
		}(i, path)
	}
	wg.Wait()

	if r.progress != nil {
		r.progress.Finish()
	}
	return outcomes
}

// runOne resolves a single target under a gate permit. Each goroutine
// writes only its own outcome slot, so no locking is needed around the
// slice.
func (r *Runner) runOne(ctx context.Context, path string) Outcome {
	release, err := r.gate.Acquire(ctx)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}
	defer release()

	info, err := r.resolve(ctx, path)
	if err != nil {
		return Outcome{Path: path, Err: err}
	}
	return Outcome{Path: path, Info: info}
}
