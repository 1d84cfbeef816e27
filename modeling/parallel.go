package modeling

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelOptions selects which phases of the simulator protocol a
// Coupled model is allowed to run concurrently. Each flag is
// independent; enabling none of them reproduces the single-threaded
// cooperative baseline. The partition that makes coupling propagation
// safe to parallelize (grouping by destination port) is built as each
// coupling is added, regardless of whether the corresponding flag is set.
type ParallelOptions struct {
	// Start runs every child's Start concurrently.
	Start bool
	// Stop runs every child's Stop concurrently.
	Stop bool
	// Collection runs every child's Collection concurrently.
	Collection bool
	// Transition runs every child's Transition concurrently.
	Transition bool
	// EOC runs distinct EOC destination groups concurrently.
	EOC bool
	// XIC runs distinct EIC and IC destination groups concurrently.
	XIC bool
}

// runGrouped applies fn to each item in items serially, in order,
// stopping at the first error.
func runGrouped[T any](ctx context.Context, items []T, fn func(T) error) error {
	for _, item := range items {
		if err := fn(item); err != nil {
			return err
		}
	}
	return nil
}

// runParallel is the concurrent counterpart of the serial loop above;
// callers pick between the two based on a ParallelOptions flag. With
// fewer than two items it runs serially (so single-item cases never pay
// goroutine overhead); otherwise it fans out through an errgroup.
func runParallel[T any](ctx context.Context, items []T, fn func(T) error) error {
	if len(items) < 2 {
		return runGrouped(ctx, items, fn)
	}
	g, _ := errgroup.WithContext(ctx)
	for _, item := range items {
		item := item
		g.Go(func() error { return fn(item) })
	}
	return g.Wait()
}
