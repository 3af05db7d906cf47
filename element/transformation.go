package element

import "hash/maphash"

var transformationSeed = maphash.MakeSeed()

// Transformation is a full transformation of {0, ..., n-1}: a function
// defined on every point, stored as the list of images
// [(0)f, (1)f, ..., (n-1)f]. It is the reference Element implementation
// used by tests and cmd/sgenum (spec.md §1 and §8's worked examples both
// require a concrete element type to be testable against).
type Transformation struct {
	images []int
}

// NewTransformation constructs a Transformation with the given image list.
// images is not copied; callers must not mutate it afterwards.
func NewTransformation(images []int) *Transformation {
	return &Transformation{images: images}
}

// Degree returns n, the size of the domain {0, ..., n-1}.
func (t *Transformation) Degree() int { return len(t.images) }

// Complexity is the cost of composing two transformations of this degree:
// one pass over the domain.
func (t *Transformation) Complexity() int { return len(t.images) }

// At returns the image of pos under the transformation.
func (t *Transformation) At(pos int) int { return t.images[pos] }

// Identity returns the identity transformation of the same degree.
func (t *Transformation) Identity() Element {
	id := make([]int, len(t.images))
	for i := range id {
		id[i] = i
	}
	return &Transformation{images: id}
}

// Hash hashes the image list.
func (t *Transformation) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(transformationSeed)
	for _, v := range t.images {
		var b [8]byte
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
		h.Write(b[:])
	}
	return h.Sum64()
}

// Equal reports whether two transformations have the same image list.
func (t *Transformation) Equal(other Element) bool {
	o, ok := other.(*Transformation)
	if !ok || len(o.images) != len(t.images) {
		return false
	}
	for i, v := range t.images {
		if o.images[i] != v {
			return false
		}
	}
	return true
}

// Less imposes lexicographic order on the image lists, shorter first.
func (t *Transformation) Less(other Element) bool {
	o := other.(*Transformation)
	n := len(t.images)
	if len(o.images) < n {
		n = len(o.images)
	}
	for i := 0; i < n; i++ {
		if t.images[i] != o.images[i] {
			return t.images[i] < o.images[i]
		}
	}
	return len(t.images) < len(o.images)
}

// DeepClone returns an independent copy, extended by extraDegree points
// that are each fixed by the extension (mirroring
// original_source/elements.h's Transformation::really_copy).
func (t *Transformation) DeepClone(extraDegree int) (Element, error) {
	if extraDegree < 0 {
		extraDegree = 0
	}
	n := len(t.images)
	out := make([]int, n+extraDegree)
	copy(out, t.images)
	for i := n; i < n+extraDegree; i++ {
		out[i] = i
	}
	return &Transformation{images: out}, nil
}

// MultiplyInto writes lhs*rhs (lhs applied first, then rhs: i -> rhs[lhs[i]])
// into the receiver, following original_source/elements.h's Transformation
// redefine convention.
func (t *Transformation) MultiplyInto(lhs, rhs Element) {
	x := lhs.(*Transformation)
	y := rhs.(*Transformation)
	if len(x.images) != len(y.images) || len(x.images) != len(t.images) {
		panic("element: MultiplyInto requires equal degrees")
	}
	for i := range t.images {
		t.images[i] = y.images[x.images[i]]
	}
}
