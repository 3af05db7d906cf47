package element

import "errors"

// ErrDeepCloneUnsupported is returned by an Element's DeepClone when asked
// to increase the degree of a kind for which no well-defined
// identity-preserving extension exists (spec.md §9 notes
// MatrixOverSemiring::really_copy as the source-side example of this).
var ErrDeepCloneUnsupported = errors.New("element: degree-increasing deep clone not supported for this kind")
