package congruence_test

import (
	"context"
	"testing"

	"github.com/mtorpey/libsemigroups/congruence"
	"github.com/mtorpey/libsemigroups/element"
	"github.com/mtorpey/libsemigroups/semigroup"
)

func smallMonoid(t *testing.T) *semigroup.Semigroup {
	t.Helper()
	t1 := element.NewTransformation([]int{0, 1, 0})
	t2 := element.NewTransformation([]int{0, 1, 2})
	s, err := semigroup.New([]element.Element{t1, t2})
	if err != nil {
		t.Fatalf("semigroup.New: %v", err)
	}
	return s
}

// The trivial congruence generated by no extra relations has exactly one
// class per semigroup element (plus the identity coset), whichever of the
// prefilled or plain construction paths builds the table.
func TestNewWithSemigroupPrefillAndPlainAgree(t *testing.T) {
	s := smallMonoid(t)
	ctx := context.Background()

	prefilled := congruence.NewWithSemigroup(congruence.Right, s, nil, true)
	plain := congruence.NewWithSemigroup(congruence.Right, s, nil, false)

	np, err := prefilled.NrClasses(ctx)
	if err != nil {
		t.Fatalf("prefilled.NrClasses: %v", err)
	}
	ns, err := plain.NrClasses(ctx)
	if err != nil {
		t.Fatalf("plain.NrClasses: %v", err)
	}
	if np != ns {
		t.Errorf("prefilled.NrClasses() = %d, plain.NrClasses() = %d, want equal", np, ns)
	}
	if np != s.Size() {
		t.Errorf("NrClasses() = %d, want %d (one class per semigroup element)", np, s.Size())
	}
}

func TestNewWithSemigroupMergesViaExtra(t *testing.T) {
	s := smallMonoid(t)
	ctx := context.Background()

	// Identify generator 0 with generator 1: the resulting right
	// congruence collapses at least the two one-letter words.
	extra := []congruence.Relation{{Lhs: []int{0}, Rhs: []int{1}}}
	table := congruence.NewWithSemigroup(congruence.Right, s, extra, false)

	a, err := table.WordToCoset(ctx, []int{0})
	if err != nil {
		t.Fatalf("WordToCoset: %v", err)
	}
	b, err := table.WordToCoset(ctx, []int{1})
	if err != nil {
		t.Fatalf("WordToCoset: %v", err)
	}
	if a != b {
		t.Errorf("word_to_class_index([0]) = %d, word_to_class_index([1]) = %d, want equal", a, b)
	}

	n, err := table.NrClasses(ctx)
	if err != nil {
		t.Fatalf("NrClasses: %v", err)
	}
	if n >= s.Size() {
		t.Errorf("NrClasses() = %d, want < %d (merging two generators must collapse at least one class)", n, s.Size())
	}
}

func TestParallelToddCoxeterPicksAWinner(t *testing.T) {
	s := smallMonoid(t)
	ctx := context.Background()

	prefilled := congruence.NewWithSemigroup(congruence.Right, s, nil, true)
	plain := congruence.NewWithSemigroup(congruence.Right, s, nil, false)

	winner, err := congruence.ParallelToddCoxeter(ctx, prefilled, plain)
	if err != nil {
		t.Fatalf("ParallelToddCoxeter: %v", err)
	}
	if !winner.IsDone() {
		t.Errorf("winner.IsDone() = false")
	}
	n, err := winner.NrClasses(ctx)
	if err != nil {
		t.Fatalf("winner.NrClasses: %v", err)
	}
	if n != s.Size() {
		t.Errorf("winner.NrClasses() = %d, want %d", n, s.Size())
	}
}
