package dpll2wl

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel wrapped by errors returned when a
// formula (or its DIMACS encoding) cannot be parsed into a well-formed
// problem instance. It never indicates UNSAT, which is a normal result, not
// an error.
var ErrMalformedInput = errors.New("malformed input")

// ErrInternalInvariant is the sentinel wrapped by errors returned when the
// solver detects a state that should be impossible on correct inputs: a
// programmer error in the core rather than a problem with the caller's
// formula. Recovery is never attempted; the solve terminates.
var ErrInternalInvariant = errors.New("internal invariant violated")

func errNegativeVarCount(n int) error {
	return fmt.Errorf("%w: negative variable count %d", ErrMalformedInput, n)
}
