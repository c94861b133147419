// Package gate provides a counting permit pool bounding how many analyses
// run concurrently.
//
// Acquire returns a release closure so callers follow a scoped discipline:
//
//	release, err := g.Acquire(ctx)
//	if err != nil {
//		return err
//	}
//	defer release()
//
// Permits held never exceed the configured limit and release is safe on
// every exit path.
package gate

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Gate is a fixed-capacity admission gate backed by a weighted semaphore.
type Gate struct {
	sem   *semaphore.Weighted
	limit int
}

// New returns a Gate admitting at most limit concurrent holders.
// Panics when limit < 1; config validation rejects that earlier.
func New(limit int) *Gate {
	if limit < 1 {
		panic("gate: limit must be at least 1")
	}
	return &Gate{
		sem:   semaphore.NewWeighted(int64(limit)),
		limit: limit,
	}
}

// Limit returns the configured concurrency limit.
func (g *Gate) Limit() int { return g.limit }

// Acquire blocks until a permit is available or ctx is done. On success it
// returns the release closure for the permit; calling it more than once is
// a bug (the second call would free a permit someone else holds), so
// release panics on reuse.
func (g *Gate) Acquire(ctx context.Context) (release func(), err error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	released := false
	return func() {
		if released {
			panic("gate: permit released twice")
		}
		released = true
		g.sem.Release(1)
	}, nil
}
