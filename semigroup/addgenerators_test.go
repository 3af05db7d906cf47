package semigroup_test

import (
	"testing"

	"github.com/mtorpey/libsemigroups/element"
	"github.com/mtorpey/libsemigroups/semigroup"
)

func TestCloneIsIndependent(t *testing.T) {
	t1, t2 := t1t2()
	s, err := semigroup.New([]element.Element{t1, t2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	clone, err := s.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if clone == s {
		t.Fatalf("Clone returned the same pointer")
	}
	if clone.Size() != s.Size() {
		t.Errorf("clone.Size() = %d, want %d", clone.Size(), s.Size())
	}
	if clone.Degree() != s.Degree() {
		t.Errorf("clone.Degree() = %d, want %d", clone.Degree(), s.Degree())
	}
}

func TestCloneAndAddSameDegree(t *testing.T) {
	t1, t2 := t1t2()
	s, err := semigroup.New([]element.Element{t1, t2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	originalSize := s.Size()

	extra := element.NewTransformation([]int{0, 2, 1})
	extended, err := s.CloneAndAdd([]element.Element{extra})
	if err != nil {
		t.Fatalf("CloneAndAdd: %v", err)
	}

	if extended.Degree() != s.Degree() {
		t.Errorf("extended.Degree() = %d, want %d", extended.Degree(), s.Degree())
	}
	if extended.NrGens() != 3 {
		t.Errorf("extended.NrGens() = %d, want 3", extended.NrGens())
	}
	if extended.Size() <= originalSize {
		t.Errorf("extended.Size() = %d, want > %d", extended.Size(), originalSize)
	}
	if s.Size() != originalSize {
		t.Errorf("original semigroup mutated: Size() = %d, want %d", s.Size(), originalSize)
	}

	pos, err := extended.Position(extra)
	if err != nil {
		t.Fatalf("Position(extra) on extended semigroup: %v", err)
	}
	if pos < 0 {
		t.Errorf("Position(extra) = %d, want >= 0", pos)
	}
}

func TestCloneAndAddPromotesDegree(t *testing.T) {
	a := element.NewTransformation([]int{1, 0})
	b := element.NewTransformation([]int{0, 1})
	s, err := semigroup.New([]element.Element{a, b})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Degree() != 2 {
		t.Fatalf("Degree() = %d, want 2", s.Degree())
	}

	c := element.NewTransformation([]int{0, 2, 1})
	extended, err := s.CloneAndAdd([]element.Element{c})
	if err != nil {
		t.Fatalf("CloneAndAdd: %v", err)
	}
	if extended.Degree() != 3 {
		t.Errorf("extended.Degree() = %d, want 3", extended.Degree())
	}
	if s.Degree() != 2 {
		t.Errorf("original semigroup degree mutated: Degree() = %d, want 2", s.Degree())
	}

	pos, err := extended.Position(c)
	if err != nil {
		t.Fatalf("Position(c): %v", err)
	}
	if pos < 0 {
		t.Errorf("Position(c) = %d, want >= 0", pos)
	}
}

func TestCloneAndAddRejectsSmallerDegree(t *testing.T) {
	t1, t2 := t1t2()
	s, err := semigroup.New([]element.Element{t1, t2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	small := element.NewTransformation([]int{1, 0})
	if _, err := s.CloneAndAdd([]element.Element{small}); err != semigroup.ErrDegreeMismatch {
		t.Errorf("CloneAndAdd(smaller degree) error = %v, want ErrDegreeMismatch", err)
	}
}

func TestCloneAndAddNoNewGeneratorsIsNoop(t *testing.T) {
	t1, t2 := t1t2()
	s, err := semigroup.New([]element.Element{t1, t2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	originalSize := s.Size()

	dup := element.NewTransformation([]int{0, 1, 0}) // equals t1
	extended, err := s.CloneAndAdd([]element.Element{dup})
	if err != nil {
		t.Fatalf("CloneAndAdd: %v", err)
	}
	if extended.Size() != originalSize {
		t.Errorf("extended.Size() = %d, want %d (duplicate generator should add nothing)", extended.Size(), originalSize)
	}
}
