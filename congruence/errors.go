package congruence

import "errors"

// ErrCancelled is returned when ToddCoxeter (or an operation that forces
// it to run) observes a cancelled context before completing.
var ErrCancelled = errors.New("congruence: cancelled")
