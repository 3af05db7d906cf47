package semigroup

import (
	"fmt"

	"github.com/mtorpey/libsemigroups/element"
	"github.com/mtorpey/libsemigroups/grid"
)

// Clone returns a deep, independent copy of s.
func (s *Semigroup) Clone() (*Semigroup, error) {
	return s.cloneWithDegree(s.degree)
}

// CloneAndAdd returns a deep, independent copy of s with extra added as
// additional generators (deduplicated against what the clone already
// contains). If any element of extra has a larger degree than s, every
// retained element is promoted to the new, larger degree first (spec.md
// §4.3, "add generators"). An element of extra with smaller degree than s
// is a caller error (ErrDegreeMismatch).
func (s *Semigroup) CloneAndAdd(extra []element.Element) (*Semigroup, error) {
	if len(extra) == 0 {
		return s.Clone()
	}

	newDegree := s.degree
	for _, e := range extra {
		if e.Degree() < s.degree {
			return nil, ErrDegreeMismatch
		}
		if e.Degree() > newDegree {
			newDegree = e.Degree()
		}
	}

	clone, err := s.cloneWithDegree(newDegree)
	if err != nil {
		return nil, err
	}

	promoted := make([]element.Element, len(extra))
	for i, e := range extra {
		if e.Degree() == newDegree {
			promoted[i] = e
			continue
		}
		pe, err := e.DeepClone(newDegree - e.Degree())
		if err != nil {
			return nil, err
		}
		promoted[i] = pe
	}

	clone.addGenerators(promoted)
	return clone, nil
}

// cloneWithDegree deep-copies s, promoting every retained element by
// newDegree-s.degree points via DeepClone (a no-op promotion when the
// degrees already match).
func (s *Semigroup) cloneWithDegree(newDegree int) (*Semigroup, error) {
	extraDegree := newDegree - s.degree

	clone := &Semigroup{
		reporter:      s.reporter,
		degree:        newDegree,
		nrGens:        s.nrGens,
		batchSize:     s.batchSize,
		buckets:       make(map[uint64][]int),
		pos:           s.pos,
		wordLen:       s.wordLen,
		nrRules:       s.nrRules,
		nrIdempotents: s.nrIdempotents,
		foundOne:      s.foundOne,
		posOne:        s.posOne,
		relPos:        s.relPos,
		relGen:        s.relGen,
	}

	clone.gens = make([]element.Element, len(s.gens))
	for i, g := range s.gens {
		c, err := g.DeepClone(extraDegree)
		if err != nil {
			return nil, err
		}
		clone.gens[i] = c
	}

	clone.elements = make([]element.Element, len(s.elements))
	for i, e := range s.elements {
		c, err := e.DeepClone(extraDegree)
		if err != nil {
			return nil, err
		}
		clone.elements[i] = c
		clone.insert(c, i)
	}

	id, err := s.id.DeepClone(extraDegree)
	if err != nil {
		return nil, err
	}
	clone.id = id

	tmp, err := s.tmpProduct.DeepClone(extraDegree)
	if err != nil {
		return nil, err
	}
	clone.tmpProduct = tmp

	clone.first = append([]int(nil), s.first...)
	clone.final = append([]int(nil), s.final...)
	clone.prefix = append([]int(nil), s.prefix...)
	clone.suffix = append([]int(nil), s.suffix...)
	clone.length = append([]int(nil), s.length...)
	clone.index = append([]int(nil), s.index...)
	clone.lenIndex = append([]int(nil), s.lenIndex...)
	clone.gensLookup = append([]int(nil), s.gensLookup...)
	clone.duplicateGens = append([]DuplicateGen(nil), s.duplicateGens...)

	clone.left = s.left.Clone()
	clone.right = s.right.Clone()
	clone.reduced = s.reduced.Clone()
	clone.multiplied = s.multiplied.Clone()

	if s.sorted != nil {
		clone.sorted = append([]int(nil), s.sorted...)
		clone.posSorted = append([]int(nil), s.posSorted...)
	}

	return clone, nil
}

// addGenerators extends s in place with coll as additional generators,
// re-running the general pass so that every row already multiplied under
// the old generators is extended to the new ones, and every other row is
// multiplied from scratch (spec.md §4.3). Grounded on
// original_source/semigroups.h's Semigroup::add_generators.
func (s *Semigroup) addGenerators(coll []element.Element) {
	if len(coll) == 0 {
		return
	}

	oldNrGens := s.nrGens
	oldNr := len(s.elements)
	nrOldLeft := s.pos

	var oldNew []bool
	thereAreNewGens := false

	for _, x := range coll {
		if _, ok := s.find(x); ok {
			continue
		}
		if !thereAreNewGens {
			s.index = s.index[:s.lenIndex[1]]
			oldNew = make([]bool, oldNr)
			for _, g := range s.gensLookup {
				oldNew[g] = true
			}
			thereAreNewGens = true
		}

		s.first = append(s.first, len(s.gens))
		s.final = append(s.final, len(s.gens))
		s.gens = append(s.gens, x)
		n := len(s.elements)
		s.markIfIdentity(x, n)
		s.elements = append(s.elements, x)
		s.gensLookup = append(s.gensLookup, n)
		s.index = append(s.index, n)
		s.insert(x, n)
		s.prefix = append(s.prefix, sentinel)
		s.suffix = append(s.suffix, sentinel)
		s.length = append(s.length, 1)
	}

	if !thereAreNewGens {
		return
	}

	s.nrGens = len(s.gens)
	s.nrRules = len(s.duplicateGens)
	s.nrIdempotents = 0
	s.sorted, s.posSorted = nil, nil
	s.pos = 0
	s.wordLen = 0
	s.lenIndex = []int{0, s.nrGens - len(s.duplicateGens)}

	// The reduced flags are reset wholesale rather than preserved, matching
	// the source's own add_generators (which rebuilds _reduced from
	// scratch): this costs a reuse optimisation on old rows, not
	// correctness, since a false "reduced" flag just forces an explicit
	// multiply instead of an algebraic shortcut.
	s.reduced = grid.New(s.nrGens, len(s.elements), false)
	s.left.AddCols(s.nrGens - s.left.Cols())
	s.right.AddCols(s.nrGens - s.right.Cols())
	s.left.AddRows(s.nrGens - oldNrGens)
	s.right.AddRows(s.nrGens - oldNrGens)

	for nrOldLeft > 0 {
		nrShorter := len(s.elements)
		for s.pos < s.lenIndex[s.wordLen+1] && nrOldLeft > 0 {
			i := s.index[s.pos]
			b := s.first[i]
			sfx := s.suffix[i]

			if s.isMultiplied(i) {
				nrOldLeft--
				for j := 0; j < oldNrGens; j++ {
					k := s.right.Get(i, j)
					switch {
					case !oldNew[k]:
						s.markIfIdentity(s.elements[k], k)
						s.first[k] = s.first[i]
						s.final[k] = j
						s.length[k] = s.wordLen + 2
						s.prefix[k] = i
						s.reduced.Set(i, j, true)
						if s.wordLen == 0 {
							s.suffix[k] = s.gensLookup[j]
						} else {
							s.suffix[k] = s.right.Get(sfx, j)
						}
						s.index = append(s.index, k)
						oldNew[k] = true
					case sfx == sentinel || s.reduced.Get(sfx, j):
						s.nrRules++
					}
				}
				for j := oldNrGens; j < s.nrGens; j++ {
					s.closureUpdate(i, j, b, sfx)
				}
			} else {
				s.setMultiplied(i)
				for j := 0; j < s.nrGens; j++ {
					s.closureUpdate(i, j, b, sfx)
				}
			}
			s.pos++
		}
		s.expand(len(s.elements) - nrShorter)

		if s.pos > len(s.elements) || s.pos == s.lenIndex[s.wordLen+1] {
			if s.wordLen == 0 {
				for i := 0; i < s.pos; i++ {
					b := s.final[s.index[i]]
					for j := 0; j < s.nrGens; j++ {
						s.left.Set(s.index[i], j, s.right.Get(s.gensLookup[j], b))
					}
				}
			} else {
				for i := s.lenIndex[s.wordLen]; i < s.pos; i++ {
					p := s.prefix[s.index[i]]
					b := s.final[s.index[i]]
					for j := 0; j < s.nrGens; j++ {
						s.left.Set(s.index[i], j, s.right.Get(s.left.Get(p, j), b))
					}
				}
			}
			s.lenIndex = append(s.lenIndex, len(s.index))
			s.wordLen++
		}
	}
}

// closureUpdate computes right[i][j], either by reusing an already-known
// product (tracing) or by multiplying explicitly, exactly as the general
// pass of enumerate does.
func (s *Semigroup) closureUpdate(i, j, b, sfx int) {
	if s.wordLen != 0 && !s.reduced.Get(sfx, j) {
		r := s.right.Get(sfx, j)
		switch {
		case s.foundOne && r == s.posOne:
			s.right.Set(i, j, s.gensLookup[b])
		case s.prefix[r] != sentinel:
			s.right.Set(i, j, s.right.Get(s.left.Get(s.prefix[r], b), s.final[r]))
		default:
			s.right.Set(i, j, s.right.Get(s.gensLookup[b], s.final[r]))
		}
		return
	}
	s.tmpProduct.MultiplyInto(s.elements[i], s.gens[j])
	if idx, ok := s.find(s.tmpProduct); ok {
		s.right.Set(i, j, idx)
		s.nrRules++
		return
	}
	n := len(s.elements)
	s.markIfIdentity(s.tmpProduct, n)
	cloned, err := s.tmpProduct.DeepClone(0)
	if err != nil {
		panic(fmt.Sprintf("semigroup: DeepClone during addGenerators: %v", err))
	}
	s.elements = append(s.elements, cloned)
	s.first = append(s.first, b)
	s.final = append(s.final, j)
	s.length = append(s.length, s.wordLen+2)
	s.insert(cloned, n)
	s.prefix = append(s.prefix, i)
	s.reduced.Set(i, j, true)
	s.right.Set(i, j, n)
	if s.wordLen == 0 {
		s.suffix = append(s.suffix, s.gensLookup[j])
	} else {
		s.suffix = append(s.suffix, s.right.Get(sfx, j))
	}
	s.index = append(s.index, n)
}
