package semigroup_test

import (
	"testing"

	"github.com/mtorpey/libsemigroups/element"
	"github.com/mtorpey/libsemigroups/semigroup"
)

func TestRelationsIncludeDuplicateGenerator(t *testing.T) {
	t1 := element.NewTransformation([]int{0, 1, 0})
	t1Again := element.NewTransformation([]int{0, 1, 0})
	t2 := element.NewTransformation([]int{0, 1, 2})

	s, err := semigroup.New([]element.Element{t1, t1Again, t2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := len(s.DuplicateGens()); got != 1 {
		t.Fatalf("len(DuplicateGens()) = %d, want 1", got)
	}

	it := s.Relations()
	rel, ok := it.Next()
	if !ok {
		t.Fatalf("expected at least one relation")
	}
	if rel.Kind != semigroup.DuplicateGenerator {
		t.Fatalf("first relation kind = %v, want DuplicateGenerator", rel.Kind)
	}
	if rel.I != 1 || rel.J != 0 {
		t.Errorf("duplicate relation = (%d, %d), want (1, 0)", rel.I, rel.J)
	}
}

func TestRelationsDescribeRightCayleyGraph(t *testing.T) {
	t1 := element.NewTransformation([]int{0, 1, 0})
	t2 := element.NewTransformation([]int{0, 1, 2})
	s, err := semigroup.New([]element.Element{t1, t2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	right := s.RightCayleyGraph()
	it := s.Relations()
	count := 0
	for {
		rel, ok := it.Next()
		if !ok {
			break
		}
		count++
		if rel.Kind != semigroup.Product {
			continue
		}
		if got := right.Get(rel.I, rel.J); got != rel.K {
			t.Errorf("relation (%d, gen %d) says %d, Cayley graph says %d", rel.I, rel.J, rel.K, got)
		}
	}
	if count == 0 {
		t.Fatalf("expected at least one relation")
	}
}

func TestRelationsResetReplaysSameSequence(t *testing.T) {
	t1 := element.NewTransformation([]int{0, 1, 0})
	t2 := element.NewTransformation([]int{0, 1, 2})
	s, err := semigroup.New([]element.Element{t1, t2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	it := s.Relations()
	var first []semigroup.Relation
	for {
		rel, ok := it.Next()
		if !ok {
			break
		}
		first = append(first, rel)
	}

	it.Reset()
	var second []semigroup.Relation
	for {
		rel, ok := it.Next()
		if !ok {
			break
		}
		second = append(second, rel)
	}

	if len(first) != len(second) {
		t.Fatalf("replayed %d relations, first pass had %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("relation %d differs across passes: %+v vs %+v", i, first[i], second[i])
		}
	}
}
