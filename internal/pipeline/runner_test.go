package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/backmassage/audioprobe/internal/gate"
	"github.com/backmassage/audioprobe/internal/inspect"
)

// fakeResolve returns a minimal AudioInfo for any path, failing those with
// a "bad" prefix.
func fakeResolve(ctx context.Context, path string) (*inspect.AudioInfo, error) {
	if strings.HasPrefix(path, "bad") {
		return nil, &inspect.NotFoundError{Path: path}
	}
	return &inspect.AudioInfo{FilePath: path}, nil
}

func makeTargets(n int) []string {
	targets := make([]string, n)
	for i := range targets {
		targets[i] = fmt.Sprintf("file-%03d.mp3", i)
	}
	return targets
}

func TestRun_OneOutcomePerTarget(t *testing.T) {
	const n = 25
	targets := makeTargets(n)

	for _, limit := range []int{1, n, n + 10} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			r := NewRunner(gate.New(limit), fakeResolve, nil)
			outcomes := r.Run(context.Background(), targets)

			if len(outcomes) != n {
				t.Fatalf("got %d outcomes, want %d", len(outcomes), n)
			}
			for i, o := range outcomes {
				if o.Path != targets[i] {
					t.Errorf("outcome %d has path %q, want %q", i, o.Path, targets[i])
				}
				if o.Info == nil || o.Err != nil {
					t.Errorf("outcome %d = %+v, want success", i, o)
				}
			}
		})
	}
}

func TestRun_ConcurrencyBounded(t *testing.T) {
	const limit = 3
	const n = 40

	var current, peak atomic.Int64
	resolve := func(ctx context.Context, path string) (*inspect.AudioInfo, error) {
		c := current.Add(1)
		for {
			p := peak.Load()
			if c <= p || peak.CompareAndSwap(p, c) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		current.Add(-1)
		return &inspect.AudioInfo{FilePath: path}, nil
	}

	r := NewRunner(gate.New(limit), resolve, nil)
	outcomes := r.Run(context.Background(), makeTargets(n))

	if len(outcomes) != n {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), n)
	}
	if p := peak.Load(); p > limit {
		t.Errorf("peak concurrent resolutions %d exceeded limit %d", p, limit)
	}
}

func TestRun_FailuresDoNotAbortBatch(t *testing.T) {
	targets := []string{"good-1.mp3", "bad-1.mp3", "good-2.mp3", "bad-2.mp3"}

	r := NewRunner(gate.New(2), fakeResolve, nil)
	outcomes := r.Run(context.Background(), targets)

	if len(outcomes) != len(targets) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(targets))
	}

	var failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			if !inspect.IsNotFound(o.Err) {
				t.Errorf("unexpected error type: %v", o.Err)
			}
		}
	}
	if failed != 2 {
		t.Errorf("failed = %d, want 2", failed)
	}
}

func TestRun_EmptyTargets(t *testing.T) {
	r := NewRunner(gate.New(1), fakeResolve, nil)
	outcomes := r.Run(context.Background(), nil)
	if len(outcomes) != 0 {
		t.Errorf("got %d outcomes for empty input", len(outcomes))
	}
}

func TestRun_ProgressCounterReachesTotal(t *testing.T) {
	const n = 17
	progress := NewProgress(n, false)

	r := NewRunner(gate.New(4), fakeResolve, progress)
	r.Run(context.Background(), makeTargets(n))

	if got := progress.Done(); got != n {
		t.Errorf("progress counter = %d, want %d", got, n)
	}
}
