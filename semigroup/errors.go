package semigroup

import "errors"

// ErrEmptyGenerators is returned by New when called with no generators.
var ErrEmptyGenerators = errors.New("semigroup: at least one generator is required")

// ErrOutOfRange is returned by At/SortedAt when the requested index exceeds
// the eventual size of the semigroup.
var ErrOutOfRange = errors.New("semigroup: index out of range")

// ErrNotPresent is returned by Position/PositionSorted when the given
// element does not belong to the semigroup.
var ErrNotPresent = errors.New("semigroup: element not present")

// ErrDegreeMismatch is returned by CloneAndAdd when a new generator has
// smaller degree than the semigroup's existing elements (promoting degree
// downwards has no well-defined meaning, so this is a caller error), and by
// New when the generators do not all share one degree.
var ErrDegreeMismatch = errors.New("semigroup: new generator has smaller degree than existing elements")
