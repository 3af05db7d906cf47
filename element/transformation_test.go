package element_test

import (
	"testing"

	"github.com/mtorpey/libsemigroups/element"
)

func TestTransformationEqual(t *testing.T) {
	a := element.NewTransformation([]int{0, 1, 0})
	b := element.NewTransformation([]int{0, 1, 0})
	c := element.NewTransformation([]int{0, 0, 0})
	if !a.Equal(b) {
		t.Fatalf("expected a == b")
	}
	if a.Equal(c) {
		t.Fatalf("expected a != c")
	}
}

func TestTransformationHashConsistentWithEqual(t *testing.T) {
	a := element.NewTransformation([]int{0, 1, 0})
	b := element.NewTransformation([]int{0, 1, 0})
	if a.Hash() != b.Hash() {
		t.Fatalf("equal elements must have equal hashes")
	}
}

func TestTransformationMultiplyInto(t *testing.T) {
	x := element.NewTransformation([]int{1, 2, 0}) // 0->1,1->2,2->0
	y := element.NewTransformation([]int{2, 0, 1}) // 0->2,1->0,2->1
	dst := element.NewTransformation([]int{0, 0, 0})
	dst.MultiplyInto(x, y)
	// i -> y[x[i]]
	want := []int{y.At(1), y.At(2), y.At(0)}
	for i, w := range want {
		if dst.At(i) != w {
			t.Errorf("dst[%d] = %d, want %d", i, dst.At(i), w)
		}
	}
}

func TestTransformationIdentity(t *testing.T) {
	x := element.NewTransformation([]int{1, 2, 0})
	id := x.Identity().(*element.Transformation)
	for i := 0; i < 3; i++ {
		if id.At(i) != i {
			t.Fatalf("identity[%d] = %d, want %d", i, id.At(i), i)
		}
	}
	dst := element.NewTransformation([]int{0, 0, 0})
	dst.MultiplyInto(x, id)
	for i := 0; i < 3; i++ {
		if dst.At(i) != x.At(i) {
			t.Fatalf("x*id != x at %d", i)
		}
	}
}

func TestTransformationDeepClone(t *testing.T) {
	x := element.NewTransformation([]int{1, 0})
	clonedAny, err := x.DeepClone(2)
	if err != nil {
		t.Fatalf("DeepClone: %v", err)
	}
	cloned := clonedAny.(*element.Transformation)
	if cloned.Degree() != 4 {
		t.Fatalf("Degree() = %d, want 4", cloned.Degree())
	}
	if cloned.At(0) != 1 || cloned.At(1) != 0 {
		t.Fatalf("original images not preserved")
	}
	if cloned.At(2) != 2 || cloned.At(3) != 3 {
		t.Fatalf("new points should be fixed by the extension")
	}
	// Extending the clone must not change the original's degree.
	if x.Degree() != 2 {
		t.Fatalf("original degree mutated")
	}
}

func TestTransformationLess(t *testing.T) {
	a := element.NewTransformation([]int{0, 1})
	b := element.NewTransformation([]int{0, 2})
	if !a.Less(b) {
		t.Fatalf("expected a < b")
	}
	if b.Less(a) {
		t.Fatalf("expected !(b < a)")
	}
}
