package semigroup

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold mirrors the source's nr_idempotents: below this size,
// splitting the work across goroutines costs more than it saves.
const parallelThreshold = 65537

// NrIdempotents runs the enumeration to completion and returns the number
// of idempotent elements (those x with x*x = x), memoising the result.
// When threads > 1 and the semigroup is large enough, the count is split
// across that many goroutines via errgroup. Grounded on
// original_source/semigroups.h's Semigroup::nr_idempotents /
// nr_idempotents_thread.
func (s *Semigroup) NrIdempotents(threads int) int {
	if s.nrIdempotents != 0 {
		return s.nrIdempotents
	}
	s.enumerate(-1)
	if threads < 1 {
		threads = 1
	}

	nr := len(s.elements)
	if threads == 1 || nr < parallelThreshold {
		s.nrIdempotents = s.nrIdempotentsSequential()
		return s.nrIdempotents
	}

	counts := make([]int, threads)
	g, _ := errgroup.WithContext(context.Background())
	chunk := nr / threads
	begin := 0
	for t := 0; t < threads; t++ {
		end := begin + chunk
		if t == threads-1 {
			end = nr
		}
		t, b, e := t, begin, end
		g.Go(func() error {
			count := 0
			for i := b; i < e; i++ {
				if s.ProductByReduction(i, i) == i {
					count++
				}
			}
			counts[t] = count
			return nil
		})
		begin = end
	}
	// Errors are impossible: the goroutines above only read shared,
	// already-enumerated state.
	_ = g.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}
	s.nrIdempotents = total
	return total
}

// nrIdempotentsSequential decides, by comparing the semigroup's
// multiplication complexity against the average word length, whether it is
// cheaper to multiply every element by itself directly or to trace the
// Cayley graph (product_by_reduction) instead.
func (s *Semigroup) nrIdempotentsSequential() int {
	sumWordLengths := 0
	for i := 1; i < len(s.lenIndex); i++ {
		sumWordLengths += i * (s.lenIndex[i] - s.lenIndex[i-1])
	}

	nr := len(s.elements)
	count := 0
	if nr*s.tmpProduct.Complexity() < sumWordLengths {
		for i := 0; i < nr; i++ {
			s.tmpProduct.MultiplyInto(s.elements[i], s.elements[i])
			if s.tmpProduct.Equal(s.elements[i]) {
				count++
			}
		}
	} else {
		for i := 0; i < nr; i++ {
			if s.ProductByReduction(i, i) == i {
				count++
			}
		}
	}
	return count
}
