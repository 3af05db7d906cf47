// Package semigroup implements the closure algorithm that, from a finite
// set of generators closed under an associative product, enumerates every
// element of the semigroup they generate, assigns it a canonical index,
// records a shortest-word factorisation, and materialises the left and
// right Cayley graphs (spec.md §4.3). It supports incremental resumption
// (SetBatchSize/Enumerate), incremental addition of generators
// (CloneAndAdd), and deduplicated equality via the element.Element
// hash/equality contract.
//
// Grounded on original_source/semigroups.h and semigroups.cc.
package semigroup

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/mtorpey/libsemigroups/element"
	"github.com/mtorpey/libsemigroups/grid"
	"github.com/mtorpey/libsemigroups/report"
)

const sentinel = -1

// defaultBatchSize matches the embedding example in spec.md §6.
const defaultBatchSize = 8192

// DuplicateGen records that generator I coincides with the earlier
// generator J (J < I); it contributes a length-2 relation to the relation
// stream (spec.md §3).
type DuplicateGen struct {
	I, J int
}

// Semigroup is an enumerated semigroup: the closure of a set of generators
// under multiplication, together with a canonical index, a shortest-word
// factorisation, and left/right Cayley graphs for every element discovered
// so far.
type Semigroup struct {
	reporter report.Reporter

	gens   []element.Element
	degree int

	elements []element.Element
	index    []int
	buckets  map[uint64][]int // element hash -> candidate indices

	first  []int
	final  []int
	prefix []int
	suffix []int
	length []int

	lenIndex []int

	right *grid.Grid[int]
	left  *grid.Grid[int]

	reduced    *grid.Grid[bool]
	multiplied *bitset.BitSet

	gensLookup    []int // generator letter -> element index
	duplicateGens []DuplicateGen

	pos     int
	wordLen int
	nrGens  int
	nrRules int

	nrIdempotents int

	id         element.Element
	tmpProduct element.Element

	batchSize int

	foundOne bool
	posOne   int

	sorted    []int // permutation of 0..N-1 into sorted order
	posSorted []int // inverse of sorted

	relPos int
	relGen int
}

// New constructs a Semigroup from gens, which must be non-empty and all of
// the same degree. Generators are owned copies (spec.md §3).
func New(gens []element.Element) (*Semigroup, error) {
	if len(gens) == 0 {
		return nil, ErrEmptyGenerators
	}
	degree := gens[0].Degree()
	for _, g := range gens[1:] {
		if g.Degree() != degree {
			return nil, ErrDegreeMismatch
		}
	}
	return newWithDegree(gens, degree)
}

func newWithDegree(gens []element.Element, degree int) (*Semigroup, error) {
	s := &Semigroup{
		reporter:  report.Nop,
		degree:    degree,
		nrGens:    len(gens),
		batchSize: defaultBatchSize,
		buckets:   make(map[uint64][]int),
		right:     grid.New(len(gens), 0, sentinel),
		left:      grid.New(len(gens), 0, sentinel),
		reduced:   grid.New(len(gens), 0, false),
	}
	s.multiplied = bitset.New(0)
	s.lenIndex = append(s.lenIndex, 0)

	s.gens = make([]element.Element, len(gens))
	for i, g := range gens {
		c, err := g.DeepClone(0)
		if err != nil {
			return nil, err
		}
		s.gens[i] = c
	}
	s.tmpProduct = s.gens[0].Identity()
	s.id = s.gens[0].Identity()

	invGensLookup := make([]int, 0, len(gens))
	for i, g := range s.gens {
		if idx, ok := s.find(g); ok {
			// Duplicate generator.
			s.gensLookup = append(s.gensLookup, idx)
			s.nrRules++
			s.duplicateGens = append(s.duplicateGens, DuplicateGen{I: i, J: invGensLookup[idx]})
			continue
		}
		invGensLookup = append(invGensLookup, len(s.gensLookup))
		n := len(s.elements)
		s.markIfIdentity(g, n)
		s.elements = append(s.elements, g)
		s.first = append(s.first, i)
		s.final = append(s.final, i)
		s.gensLookup = append(s.gensLookup, n)
		s.length = append(s.length, 1)
		s.insert(g, n)
		s.prefix = append(s.prefix, sentinel)
		s.suffix = append(s.suffix, sentinel)
		s.index = append(s.index, n)
	}
	s.expand(len(s.elements))
	s.lenIndex = append(s.lenIndex, len(s.index))
	s.relPos = sentinel
	return s, nil
}

// SetReporter installs a Reporter; engines otherwise discard progress
// messages (report.Nop).
func (s *Semigroup) SetReporter(r report.Reporter) {
	if r == nil {
		r = report.Nop
	}
	s.reporter = r
}

// SetBatchSize controls how many new elements one Enumerate call discovers
// before returning control. n must be >= 1.
func (s *Semigroup) SetBatchSize(n int) {
	if n < 1 {
		n = 1
	}
	s.batchSize = n
}

// Degree returns the common degree of every element in the semigroup.
func (s *Semigroup) Degree() int { return s.degree }

// NrGens returns the number of generators, including duplicates.
func (s *Semigroup) NrGens() int { return s.nrGens }

// Gens returns the owned generator copies, in input order.
func (s *Semigroup) Gens() []element.Element { return s.gens }

// IsDone reports whether every element has been enumerated.
func (s *Semigroup) IsDone() bool { return s.pos >= len(s.elements) }

// IsBegun reports whether every generator row has been multiplied by the
// generators, i.e. whether the first enumeration pass has run.
func (s *Semigroup) IsBegun() bool { return s.pos >= s.lenIndex[1] }

// CurrentSize returns the number of elements enumerated so far, without
// forcing further enumeration.
func (s *Semigroup) CurrentSize() int { return len(s.elements) }

// CurrentNrRules returns the number of rewriting rules discovered so far.
func (s *Semigroup) CurrentNrRules() int { return s.nrRules }

// CurrentMaxWordLength returns the longest minimal word length among
// elements enumerated so far.
func (s *Semigroup) CurrentMaxWordLength() int {
	if s.IsDone() {
		return len(s.lenIndex) - 2
	} else if len(s.elements) > s.lenIndex[len(s.lenIndex)-1] {
		return len(s.lenIndex)
	}
	return len(s.lenIndex) - 1
}

// Size runs the enumeration to completion and returns the number of
// elements.
func (s *Semigroup) Size() int {
	s.enumerate(-1)
	return len(s.elements)
}

// NrRules runs the enumeration to completion and returns the number of
// rewriting rules.
func (s *Semigroup) NrRules() int {
	s.enumerate(-1)
	return s.nrRules
}

// GensLookup returns the element index of generator letter a.
func (s *Semigroup) GensLookup(a int) int { return s.gensLookup[a] }

// DuplicateGens returns the list of (i, j) pairs such that generator i
// coincides with the earlier generator j.
func (s *Semigroup) DuplicateGens() []DuplicateGen { return s.duplicateGens }

// Length returns the length of the minimal word for elements[pos]. pos must
// be < CurrentSize().
func (s *Semigroup) Length(pos int) int { return s.length[pos] }

// FirstLetter returns the first letter of the minimal word for
// elements[pos].
func (s *Semigroup) FirstLetter(pos int) int { return s.first[pos] }

// FinalLetter returns the last letter of the minimal word for
// elements[pos].
func (s *Semigroup) FinalLetter(pos int) int { return s.final[pos] }

// Prefix returns the index of elements[pos] with its last letter removed,
// or sentinel (-1) if pos is a generator.
func (s *Semigroup) Prefix(pos int) int { return s.prefix[pos] }

// Suffix returns the index of elements[pos] with its first letter removed,
// or sentinel (-1) if pos is a generator.
func (s *Semigroup) Suffix(pos int) int { return s.suffix[pos] }

// Sentinel is the out-of-range marker spec.md §6 calls SENTINEL.
const Sentinel = sentinel

// find returns the index of e if already known, via hash+equality.
func (s *Semigroup) find(e element.Element) (int, bool) {
	for _, idx := range s.buckets[e.Hash()] {
		if s.elements[idx].Equal(e) {
			return idx, true
		}
	}
	return 0, false
}

func (s *Semigroup) insert(e element.Element, idx int) {
	h := e.Hash()
	s.buckets[h] = append(s.buckets[h], idx)
}

func (s *Semigroup) markIfIdentity(x element.Element, elementNr int) {
	if !s.foundOne && x.Equal(s.id) {
		s.posOne = elementNr
		s.foundOne = true
	}
}

// expand grows the per-row tables (left/right Cayley graphs, reduced flags,
// multiplied bitset) by nr rows.
func (s *Semigroup) expand(nr int) {
	s.left.AddRows(nr)
	s.right.AddRows(nr)
	s.reduced.AddRows(nr)
	// multiplied is a *bitset.BitSet; Set/Test auto-extend it, so no
	// explicit resize is needed here.
}

func (s *Semigroup) isMultiplied(i int) bool { return s.multiplied.Test(uint(i)) }
func (s *Semigroup) setMultiplied(i int)     { s.multiplied.Set(uint(i)) }

// At returns the element at index i, enumerating up to i+1 if necessary.
func (s *Semigroup) At(i int) (element.Element, error) {
	s.enumerate(i + 1)
	if i < 0 || i >= len(s.elements) {
		return nil, ErrOutOfRange
	}
	return s.elements[i], nil
}

// Position returns the index of e, enumerating incrementally (one batch at
// a time) until found or done.
func (s *Semigroup) Position(e element.Element) (int, error) {
	if e.Degree() != s.degree {
		return 0, ErrNotPresent
	}
	for {
		if idx, ok := s.find(e); ok {
			return idx, nil
		}
		if s.IsDone() {
			return 0, ErrNotPresent
		}
		s.enumerate(len(s.elements) + 1)
	}
}

// TestMembership reports whether e belongs to the semigroup.
func (s *Semigroup) TestMembership(e element.Element) bool {
	_, err := s.Position(e)
	return err == nil
}

// Factorisation returns the minimal word for elements[pos], built by
// walking first/suffix back to a generator.
func (s *Semigroup) Factorisation(pos int) ([]int, error) {
	if pos >= len(s.elements) && !s.IsDone() {
		s.enumerate(pos + 1)
	}
	if pos < 0 || pos >= len(s.elements) {
		return nil, ErrOutOfRange
	}
	var word []int
	for pos != sentinel {
		word = append(word, s.first[pos])
		pos = s.suffix[pos]
	}
	return word, nil
}

// ProductByReduction computes elements[i]*elements[j] by tracing the
// Cayley graph only.
func (s *Semigroup) ProductByReduction(i, j int) int {
	if s.length[i] <= s.length[j] {
		for i != sentinel {
			j = s.left.Get(j, s.final[i])
			i = s.prefix[i]
		}
		return j
	}
	for j != sentinel {
		i = s.right.Get(i, s.first[j])
		j = s.suffix[j]
	}
	return i
}

// FastProduct computes elements[i]*elements[j], choosing between
// multiplying directly and tracing the Cayley graph depending on which is
// cheaper (spec.md §4.3).
func (s *Semigroup) FastProduct(i, j int) int {
	complexity := s.tmpProduct.Complexity()
	if s.length[i] < 2*complexity || s.length[j] < 2*complexity {
		return s.ProductByReduction(i, j)
	}
	s.tmpProduct.MultiplyInto(s.elements[i], s.elements[j])
	idx, _ := s.find(s.tmpProduct)
	return idx
}

// RightCayleyGraph forces completion and returns the right Cayley graph:
// right.Get(i, a) is the index of elements[i]*gens[a].
func (s *Semigroup) RightCayleyGraph() *grid.Grid[int] {
	s.enumerate(-1)
	return s.right
}

// LeftCayleyGraph forces completion and returns the left Cayley graph:
// left.Get(i, a) is the index of gens[a]*elements[i].
func (s *Semigroup) LeftCayleyGraph() *grid.Grid[int] {
	s.enumerate(-1)
	return s.left
}

// sortElements computes (and memoises) a sorted view of the elements, in
// the order of element.Element.Less.
func (s *Semigroup) sortElements() {
	if s.sorted != nil {
		return
	}
	s.enumerate(-1)
	sorted := make([]int, len(s.elements))
	for i := range sorted {
		sorted[i] = i
	}
	// Insertion sort is adequate here: sorting is memoised and this is a
	// small-scale reference engine, not a performance-critical path.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && s.elements[sorted[j]].Less(s.elements[sorted[j-1]]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	s.sorted = sorted
	s.posSorted = make([]int, len(sorted))
	for i, e := range sorted {
		s.posSorted[e] = i
	}
}

// SortedAt returns the element at position i of the sorted view.
func (s *Semigroup) SortedAt(i int) (element.Element, error) {
	s.sortElements()
	if i < 0 || i >= len(s.sorted) {
		return nil, ErrOutOfRange
	}
	return s.elements[s.sorted[i]], nil
}

// PositionSorted returns the position of e in the sorted view.
func (s *Semigroup) PositionSorted(e element.Element) (int, error) {
	if e.Degree() != s.degree {
		return 0, ErrNotPresent
	}
	s.sortElements()
	idx, ok := s.find(e)
	if !ok {
		return 0, ErrNotPresent
	}
	return s.posSorted[idx], nil
}
