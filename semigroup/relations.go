package semigroup

// RelationKind distinguishes the two shapes a Relation can take.
type RelationKind int

const (
	// Product relations state elements[I]*gens[J] = elements[K].
	Product RelationKind = iota
	// DuplicateGenerator relations state gens[I] and gens[J] coincide (J
	// is the earlier generator letter I was found to duplicate).
	DuplicateGenerator
)

// Relation is a single rewriting rule discovered during enumeration.
// Grounded on original_source/semigroups.h's next_relation, which packs
// the same information into a 2- or 3-element vector.
type Relation struct {
	Kind RelationKind
	I, J int
	K    int // unused (zero) for DuplicateGenerator
}

// RelationIter streams every relation known to a Semigroup so far, in the
// order the enumeration engine discovered them. It is restartable: Reset
// rewinds it to the first relation. Advancing it forces the semigroup to
// enumerate to completion, exactly like next_relation in the source.
// Grounded on original_source/semigroups.h's
// next_relation/reset_next_relation.
type RelationIter struct {
	s   *Semigroup
	pos int
	gen int
}

// Relations returns a fresh RelationIter over s.
func (s *Semigroup) Relations() *RelationIter {
	it := &RelationIter{s: s}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the first relation.
func (it *RelationIter) Reset() {
	it.pos = sentinel
	it.gen = 0
}

// Next returns the next relation and true, or a zero Relation and false
// once every relation has been produced.
func (it *RelationIter) Next() (Relation, bool) {
	s := it.s
	s.enumerate(-1)

	if it.pos == sentinel {
		if it.gen < len(s.duplicateGens) {
			d := s.duplicateGens[it.gen]
			it.gen++
			return Relation{Kind: DuplicateGenerator, I: d.I, J: d.J}, true
		}
		it.gen = 0
		it.pos = 0
	}

	if it.pos == len(s.elements) {
		return Relation{}, false
	}

	var rel Relation
	found := false
	for it.pos < len(s.elements) {
		for it.gen < s.nrGens {
			idx := s.index[it.pos]
			if !s.reduced.Get(idx, it.gen) &&
				(it.pos < s.lenIndex[1] || s.reduced.Get(s.suffix[idx], it.gen)) {
				rel = Relation{Kind: Product, I: idx, J: it.gen, K: s.right.Get(idx, it.gen)}
				found = true
				break
			}
			it.gen++
		}
		if found {
			break
		}
		it.gen = 0
		it.pos++
	}
	if !found {
		return Relation{}, false
	}

	if it.gen == s.nrGens {
		it.gen = 0
		it.pos++
	} else {
		it.gen++
	}
	return rel, true
}
