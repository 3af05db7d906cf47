package congruence

import (
	"context"
	"fmt"

	"github.com/mtorpey/libsemigroups/grid"
	"github.com/mtorpey/libsemigroups/report"
)

// ToddCoxeter runs coset enumeration to completion, tracing extra against
// coset 0 first and then repeatedly sweeping relations across every active
// coset until the active list is exhausted. A lookahead/packing phase
// triggers once the number of active cosets exceeds pack, tracing relations
// without creating new cosets to reclaim dead rows before continuing; pack
// grows by 10% after each lookahead. Safe to call repeatedly: a completed
// table returns nil immediately, and a call whose ctx is already cancelled
// returns ErrCancelled without changing the table. A table whose earlier
// run was cancelled is not marked done, so a later call with a live ctx
// resumes the enumeration.
//
// Grounded on original_source/tc.cc's todd_coxeter.
func (t *CosetTable) ToddCoxeter(ctx context.Context) error {
	if t.tcDone {
		return nil
	}

	for _, rel := range t.extra {
		t.trace(ctx, idCoset, rel, true)
		if ctx.Err() != nil {
			return ErrCancelled
		}
	}

	if len(t.relations) == 0 {
		t.tcDone = true
		return nil
	}

	for {
		for _, rel := range t.relations {
			t.trace(ctx, t.current, rel, true)
		}
		if ctx.Err() != nil {
			return ErrCancelled
		}

		if t.active > t.pack {
			t.reporter.Emit(report.Info, fmt.Sprintf(
				"%d defined, %d max, %d active, %d killed, current %d",
				t.defined, len(t.forwd), t.active, t.defined-t.active-t.killed, t.current))
			t.reporter.Emit(report.Info, "entering lookahead phase")
			t.killed = t.defined - t.active

			oldActive := t.active
			t.currentNoAdd = t.current

			for {
				for _, rel := range t.relations {
					t.trace(ctx, t.currentNoAdd, rel, false)
				}
				if ctx.Err() != nil {
					return ErrCancelled
				}
				t.currentNoAdd = t.forwd[t.currentNoAdd]
				if t.currentNoAdd == t.next || t.stopPacking {
					break
				}
			}

			t.reporter.Emit(report.Info, fmt.Sprintf("lookahead phase complete, %d killed", oldActive-t.active))
			t.pack += t.pack / 10
			t.stopPacking = false
			t.currentNoAdd = undefined
		}

		t.current = t.forwd[t.current]
		if t.current == t.next {
			break
		}
	}

	t.reporter.Emit(report.Info, fmt.Sprintf(
		"%d cosets defined, maximum %d, %d survived", t.defined, len(t.forwd), t.active))
	t.tcDone = true
	return nil
}

// NrClasses returns the number of classes of the congruence, running
// ToddCoxeter to completion first if it has not already finished.
func (t *CosetTable) NrClasses(ctx context.Context) (int, error) {
	if !t.tcDone {
		if err := t.ToddCoxeter(ctx); err != nil {
			return 0, err
		}
	}
	return t.active - 1, nil
}

// WordToCoset returns the coset that word maps to, running ToddCoxeter to
// completion first if needed. For a LEFT congruence the word is traced in
// reverse (the table was itself built over reversed relations), matching
// original_source/tc.cc's word_to_coset.
func (t *CosetTable) WordToCoset(ctx context.Context, word []int) (int, error) {
	if !t.tcDone {
		if err := t.ToddCoxeter(ctx); err != nil {
			return 0, err
		}
	}
	c := idCoset
	if t.ctype == Left {
		for i := len(word) - 1; i >= 0; i-- {
			c = t.table.Get(c, word[i])
		}
	} else {
		for _, letter := range word {
			c = t.table.Get(c, letter)
		}
	}
	return c, nil
}

// Compress relabels the live cosets 0..active-1 (in active-list order),
// discarding every dead/free row. Idempotent: a second call is a no-op.
// Grounded on original_source/tc.cc's compress.
func (t *CosetTable) Compress(ctx context.Context) error {
	if t.isCompressed {
		return nil
	}
	if !t.tcDone {
		if err := t.ToddCoxeter(ctx); err != nil {
			return err
		}
	}
	t.isCompressed = true
	if t.active == t.table.Rows() {
		return nil
	}

	newTable := grid.New(t.nrGens, t.active, undefined)
	lookup := make(map[int]int, t.active)
	nextIndex := 0
	for pos := idCoset; pos != t.next; pos = t.forwd[pos] {
		lookup[pos] = nextIndex
		nextIndex++
	}

	pos := idCoset
	for pos != t.next {
		curIndex, ok := lookup[pos]
		if !ok {
			lookup[pos] = nextIndex
			curIndex = nextIndex
			nextIndex++
		}
		for i := 0; i < t.nrGens; i++ {
			val := t.table.Get(pos, i)
			mapped, ok := lookup[val]
			if !ok {
				lookup[val] = nextIndex
				mapped = nextIndex
				nextIndex++
			}
			newTable.Set(curIndex, i, mapped)
		}
		pos = t.forwd[pos]
	}

	t.table = newTable
	return nil
}

// Table exposes the underlying coset table for inspection (e.g. by
// cmd/sgenum's report printer). The returned Grid must not be mutated.
func (t *CosetTable) Table() *grid.Grid[int] { return t.table }
