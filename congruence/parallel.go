package congruence

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ParallelToddCoxeter races a and b to completion and returns whichever
// finishes first, cancelling the other. This is the Go analogue of
// spec.md §4.5's "run a Cayley-graph-prefilled table against a
// relation-only table, keep the winner" pattern: a is typically the
// prefilled engine and b the plain one, but the function is symmetric and
// does not care which is which.
//
// Grounded on original_source/tc.cc's run_tc / use of two threads racing
// a prefilled and a non-prefilled Congruence; context.Context substitutes
// for the source's atomic stop flag (SPEC_FULL.md §3).
func ParallelToddCoxeter(ctx context.Context, a, b *CosetTable) (*CosetTable, error) {
	g, gctx := errgroup.WithContext(ctx)

	ctxA, cancelA := context.WithCancel(gctx)
	ctxB, cancelB := context.WithCancel(gctx)
	defer cancelA()
	defer cancelB()

	g.Go(func() error {
		err := a.ToddCoxeter(ctxA)
		cancelB()
		if err != nil && !errors.Is(err, ErrCancelled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := b.ToddCoxeter(ctxB)
		cancelA()
		if err != nil && !errors.Is(err, ErrCancelled) {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if a.IsDone() {
		return a, nil
	}
	if b.IsDone() {
		return b, nil
	}
	return nil, ErrCancelled
}
