package semigroup

import (
	"fmt"

	"github.com/mtorpey/libsemigroups/report"
)

// Enumerate runs the closure algorithm until either every element has been
// discovered or at least limit elements are known, whichever comes first.
// A negative limit means "run to completion". Grounded on
// original_source/semigroups.h's Semigroup::enumerate.
func (s *Semigroup) Enumerate(limit int) { s.enumerate(limit) }

func (s *Semigroup) enumerate(limit int) {
	if s.pos >= len(s.elements) || (limit >= 0 && limit <= len(s.elements)) {
		return
	}
	// A negative limit means "run to completion in this call"; mirrors the
	// source treating limit as SIZE_MAX (std::max(limit, nr+batch_size)
	// then saturates at SIZE_MAX, never tripping the stop check below).
	unbounded := limit < 0
	if !unbounded && limit < len(s.elements)+s.batchSize {
		limit = len(s.elements) + s.batchSize
	}

	// Pass 1: multiply the generators (rows of length 1) by every
	// generator.
	if s.pos < s.lenIndex[1] {
		nrShorter := len(s.elements)
		for s.pos < s.lenIndex[1] {
			i := s.index[s.pos]
			s.setMultiplied(i)
			for j := 0; j < s.nrGens; j++ {
				s.tmpProduct.MultiplyInto(s.elements[i], s.gens[j])
				if idx, ok := s.find(s.tmpProduct); ok {
					s.right.Set(i, j, idx)
					s.nrRules++
					continue
				}
				n := len(s.elements)
				s.markIfIdentity(s.tmpProduct, n)
				cloned, err := s.tmpProduct.DeepClone(0)
				if err != nil {
					panic(fmt.Sprintf("semigroup: DeepClone during enumerate: %v", err))
				}
				s.elements = append(s.elements, cloned)
				s.first = append(s.first, s.first[i])
				s.final = append(s.final, j)
				s.index = append(s.index, n)
				s.length = append(s.length, 2)
				s.insert(cloned, n)
				s.prefix = append(s.prefix, i)
				s.reduced.Set(i, j, true)
				s.right.Set(i, j, n)
				s.suffix = append(s.suffix, s.gensLookup[j])
			}
			s.pos++
		}
		for i := 0; i < s.pos; i++ {
			b := s.final[s.index[i]]
			for j := 0; j < s.nrGens; j++ {
				s.left.Set(s.index[i], j, s.right.Get(s.gensLookup[j], b))
			}
		}
		s.wordLen++
		s.expand(len(s.elements) - nrShorter)
		s.lenIndex = append(s.lenIndex, len(s.index))
		s.reporter.Emit(report.Info, fmt.Sprintf("enumerate: %d elements after length-1 pass", len(s.elements)))
	}

	// Pass 2: multiply words of length > 1 by every generator.
	stop := !unbounded && len(s.elements) >= limit
	for s.pos < len(s.elements) && !stop {
		nrShorter := len(s.elements)
		for s.pos < s.lenIndex[s.wordLen+1] && !stop {
			i := s.index[s.pos]
			b := s.first[i]
			sfx := s.suffix[i]
			s.setMultiplied(i)
			for j := 0; j < s.nrGens; j++ {
				if !s.reduced.Get(sfx, j) {
					r := s.right.Get(sfx, j)
					switch {
					case s.foundOne && r == s.posOne:
						s.right.Set(i, j, s.gensLookup[b])
					case s.prefix[r] != sentinel:
						s.right.Set(i, j, s.right.Get(s.left.Get(s.prefix[r], b), s.final[r]))
					default:
						s.right.Set(i, j, s.right.Get(s.gensLookup[b], s.final[r]))
					}
					continue
				}
				s.tmpProduct.MultiplyInto(s.elements[i], s.gens[j])
				if idx, ok := s.find(s.tmpProduct); ok {
					s.right.Set(i, j, idx)
					s.nrRules++
					continue
				}
				n := len(s.elements)
				s.markIfIdentity(s.tmpProduct, n)
				cloned, err := s.tmpProduct.DeepClone(0)
				if err != nil {
					panic(fmt.Sprintf("semigroup: DeepClone during enumerate: %v", err))
				}
				s.elements = append(s.elements, cloned)
				s.first = append(s.first, b)
				s.final = append(s.final, j)
				s.length = append(s.length, s.wordLen+2)
				s.insert(cloned, n)
				s.prefix = append(s.prefix, i)
				s.reduced.Set(i, j, true)
				s.right.Set(i, j, n)
				s.suffix = append(s.suffix, s.right.Get(sfx, j))
				s.index = append(s.index, n)
				stop = !unbounded && len(s.elements) >= limit
			}
			s.pos++
		}
		s.expand(len(s.elements) - nrShorter)

		if s.pos > len(s.elements) || s.pos == s.lenIndex[s.wordLen+1] {
			for i := s.lenIndex[s.wordLen]; i < s.pos; i++ {
				p := s.prefix[s.index[i]]
				b := s.final[s.index[i]]
				for j := 0; j < s.nrGens; j++ {
					s.left.Set(s.index[i], j, s.right.Get(s.left.Get(p, j), b))
				}
			}
			s.wordLen++
			s.lenIndex = append(s.lenIndex, len(s.index))
		}
		s.reporter.Emit(report.Info, fmt.Sprintf("enumerate: %d elements, %d rules, max word length %d",
			len(s.elements), s.nrRules, s.CurrentMaxWordLength()))
	}
	if s.IsDone() {
		s.reporter.Emit(report.Info, "enumerate: finished")
	}
}
