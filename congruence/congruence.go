// Package congruence implements the Todd-Coxeter coset enumeration engine:
// given a presentation (generator count plus relations) and extra relations
// defining a one- or two-sided congruence, it builds the coset table of the
// quotient by tracing relations, identifying coincident cosets, and
// reclaiming freed rows. A parallel driver races a Cayley-graph-prefilled
// instance against a relation-only instance and keeps whichever finishes
// first (spec.md §4.4, §4.5).
//
// Grounded on original_source/tc.h and tc.cc.
package congruence

import (
	"fmt"

	"github.com/mtorpey/libsemigroups/grid"
	"github.com/mtorpey/libsemigroups/report"
	"github.com/mtorpey/libsemigroups/semigroup"
)

// CongType selects which side of the presentation a congruence must
// respect.
type CongType int

const (
	Right CongType = iota
	Left
	TwoSided
)

func (c CongType) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case TwoSided:
		return "twosided"
	default:
		return "unknown"
	}
}

// ParseCongType maps the CLI's textual spelling to a CongType, mirroring
// original_source/tc.cc's type_from_string.
func ParseCongType(s string) (CongType, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "twosided":
		return TwoSided, nil
	default:
		return 0, fmt.Errorf("congruence: unknown type %q", s)
	}
}

// Relation is an equation u = v between two words in the generators.
type Relation struct {
	Lhs, Rhs []int
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseRelation(r Relation) Relation {
	lhs := append([]int(nil), r.Lhs...)
	rhs := append([]int(nil), r.Rhs...)
	reverseInts(lhs)
	reverseInts(rhs)
	return Relation{Lhs: lhs, Rhs: rhs}
}

const undefined = -1
const idCoset = 0
const defaultPack = 120000

// CosetLink is the explicit tagged replacement for the source's
// bckwd[c] < 0 "forwarding pointer" trick (spec.md §9, "Sentinel-as-
// forwarding"): a coset is either still active, in which case val is its
// predecessor in the active list, or it has been identified away, in which
// case val is the live coset it was merged into.
type CosetLink struct {
	dead bool
	val  int
}

func activeLink(prev int) CosetLink { return CosetLink{val: prev} }
func deadLink(target int) CosetLink { return CosetLink{dead: true, val: target} }

// CosetTable is a Todd-Coxeter coset table under construction or already
// complete.
type CosetTable struct {
	reporter report.Reporter

	ctype     CongType
	nrGens    int
	relations []Relation
	extra     []Relation

	active int
	pack   int

	forwd []int
	bckwd []CosetLink

	current      int
	currentNoAdd int
	last         int
	next         int

	table     *grid.Grid[int]
	preimInit *grid.Grid[int]
	preimNext *grid.Grid[int]

	lhsStack []int
	rhsStack []int

	defined     int
	killed      int
	stopPacking bool
	nextReport  int

	tcDone       bool
	isCompressed bool
}

func (t *CosetTable) resolve(c int) int {
	for t.bckwd[c].dead {
		c = t.bckwd[c].val
	}
	return c
}

// SetReporter installs a Reporter; CosetTable otherwise discards progress
// messages.
func (t *CosetTable) SetReporter(r report.Reporter) {
	if r == nil {
		r = report.Nop
	}
	t.reporter = r
}

func newBase(ctype CongType, nrGens int, relations, extra []Relation) *CosetTable {
	t := &CosetTable{
		reporter:     report.Nop,
		ctype:        ctype,
		nrGens:       nrGens,
		active:       1,
		pack:         defaultPack,
		forwd:        []int{undefined},
		bckwd:        []CosetLink{activeLink(0)},
		current:      0,
		currentNoAdd: undefined,
		last:         0,
		next:         undefined,
		table:        grid.New(nrGens, 1, undefined),
		preimInit:    grid.New(nrGens, 1, undefined),
		preimNext:    grid.New(nrGens, 1, undefined),
		defined:      1,
	}

	rels := append([]Relation(nil), relations...)
	ext := append([]Relation(nil), extra...)

	switch ctype {
	case Left:
		for i, r := range rels {
			rels[i] = reverseRelation(r)
		}
		for i, r := range ext {
			ext[i] = reverseRelation(r)
		}
	case TwoSided:
		rels = append(rels, ext...)
		ext = nil
	case Right:
		// leave alone
	}

	t.relations = rels
	t.extra = ext
	return t
}

// New constructs a CosetTable from a plain presentation.
func New(ctype CongType, nrGens int, relations, extra []Relation) *CosetTable {
	return newBase(ctype, nrGens, relations, extra)
}

// NewWithPrefill constructs a CosetTable whose table is taken as-is from
// prefilledTable. relations must be empty under this path (an assertion-
// class precondition, per spec.md §7 and original_source/tc.cc's
// "relations must be empty if we are using a completely prefilled table").
func NewWithPrefill(ctype CongType, nrGens int, relations, extra []Relation, prefilledTable *grid.Grid[int]) *CosetTable {
	if len(relations) != 0 {
		panic("congruence: NewWithPrefill requires relations to be empty")
	}
	t := newBase(ctype, nrGens, relations, extra)
	t.table = prefilledTable.Clone()
	t.initAfterPrefill()
	return t
}

// NewWithSemigroup constructs a CosetTable for a congruence on s. When
// prefill is true, table is seeded from s's left- or right-Cayley graph
// (coset 0 is the identity class, so every entry is shifted up by one and
// row 0 is seeded from s's generator lookup); when false, relations are
// drained from s.Relations() instead, factorising each (i, a, k) triple
// into a word pair, reversing both sides for a LEFT congruence.
//
// Grounded on original_source/tc.cc's Semigroup-taking constructor. Note
// that, exactly as in the source, the TwoSided merge of extra into
// relations happens unconditionally in newBase before the prefill branch
// runs, so a TwoSided+prefill congruence still carries its extra relations
// in t.relations even though the table is already complete; ToddCoxeter
// will still trace them.
func NewWithSemigroup(ctype CongType, s *semigroup.Semigroup, extra []Relation, prefill bool) *CosetTable {
	t := newBase(ctype, s.NrGens(), nil, extra)

	if prefill {
		var graph *grid.Grid[int]
		if ctype == Left {
			graph = s.LeftCayleyGraph()
		} else {
			graph = s.RightCayleyGraph()
		}
		// t.table already holds its single identity-coset row (row 0,
		// from newBase); the Cayley graph's rows are appended after it,
		// then every entry (including row 0's UNDEFINED placeholders) is
		// shifted up by one so that coset c+1 corresponds to element c.
		t.table.Append(graph)
		for r := 0; r < t.table.Rows(); r++ {
			for c := 0; c < t.table.Cols(); c++ {
				t.table.Set(r, c, t.table.Get(r, c)+1)
			}
		}
		for a := 0; a < s.NrGens(); a++ {
			t.table.Set(0, a, s.GensLookup(a)+1)
		}
		t.initAfterPrefill()
		return t
	}

	t.relations = append(t.relations, drainRelations(s, ctype == Left)...)
	return t
}

// drainRelations factorises every relation s.Relations() yields into a word
// pair, reversing both sides when reverse is true (the LEFT congruence
// case). A DuplicateGenerator relation is already a pair of one-letter
// words and needs no factorisation; the source's equivalent code path
// instead asserts false ("FIXME") on encountering one, an acknowledged gap
// this module completes rather than reproduces.
func drainRelations(s *semigroup.Semigroup, reverse bool) []Relation {
	it := s.Relations()
	var out []Relation
	for {
		rel, ok := it.Next()
		if !ok {
			break
		}
		var lhs, rhs []int
		if rel.Kind == semigroup.DuplicateGenerator {
			lhs = []int{rel.I}
			rhs = []int{rel.J}
		} else {
			lhsWord, _ := s.Factorisation(rel.I)
			lhs = append(append([]int(nil), lhsWord...), rel.J)
			rhsWord, _ := s.Factorisation(rel.K)
			rhs = append([]int(nil), rhsWord...)
		}
		if reverse {
			reverseInts(lhs)
			reverseInts(rhs)
		}
		out = append(out, Relation{Lhs: lhs, Rhs: rhs})
	}
	return out
}

func (t *CosetTable) initAfterPrefill() {
	n := t.table.Rows()
	t.active = n
	t.forwd = make([]int, n)
	t.bckwd = make([]CosetLink, n)
	t.bckwd[0] = activeLink(0)
	for i := 1; i < n; i++ {
		t.forwd[i] = i + 1
		t.bckwd[i] = activeLink(i - 1)
	}
	if n > 1 {
		t.forwd[0] = 1
	} else {
		t.forwd[0] = undefined
	}
	t.forwd[n-1] = undefined
	t.last = n - 1
	t.next = undefined

	t.preimInit.AddRows(n - t.preimInit.Rows())
	t.preimNext.AddRows(n - t.preimNext.Rows())

	for c := 0; c < n; c++ {
		for a := 0; a < t.nrGens; a++ {
			b := t.table.Get(c, a)
			t.preimNext.Set(c, a, t.preimInit.Get(b, a))
			t.preimInit.Set(b, a, c)
		}
	}
	t.defined = n
}

// NrActiveCosets returns the current number of active cosets, without
// forcing ToddCoxeter to run.
func (t *CosetTable) NrActiveCosets() int { return t.active }

// IsDone reports whether ToddCoxeter has completed (and was not
// cancelled).
func (t *CosetTable) IsDone() bool { return t.tcDone }

// IsCompressed reports whether Compress has already relabelled the table.
func (t *CosetTable) IsCompressed() bool { return t.isCompressed }

// NrGens returns the number of generators the presentation is over.
func (t *CosetTable) NrGens() int { return t.nrGens }
