package dpll2wl

import (
	"fmt"
	"strconv"
)

// Assignment is a satisfying total assignment of truth values to variables,
// returned by Solve when the formula is satisfiable.
type Assignment struct {
	values []bool // 1-indexed; values[0] unused
}

// NumVars returns the number of variables covered by the assignment.
func (a *Assignment) NumVars() int {
	return len(a.values) - 1
}

// Value reports the truth value assigned to variable v (1-indexed).
func (a *Assignment) Value(v int) bool {
	return a.values[v]
}

// String renders the assignment as a whitespace-separated sequence of
// signed variable indices, positive if the variable is true and negative if
// false, for every variable 1..NumVars — the conventional DIMACS-adjacent
// model rendering used by the CLI driver.
func (a *Assignment) String() string {
	b := make([]byte, 0, len(a.values)*3)
	for v := 1; v < len(a.values); v++ {
		if v > 1 {
			b = append(b, ' ')
		}
		n := v
		if !a.values[v] {
			n = -n
		}
		b = strconv.AppendInt(b, int64(n), 10)
	}
	return string(b)
}

// DIMACSString is an alias of String kept for callers that want to make the
// DIMACS-style convention explicit at the call site.
func (a *Assignment) DIMACSString() string {
	return a.String()
}

// buildAssignment reads off a full model from a trail that a solver has
// claimed is a solution for f. It is an internal invariant violation for
// any variable to still be Undefined at this point.
func buildAssignment(f *Formula, tr *Trail) (*Assignment, error) {
	values := make([]bool, f.NumVars+1)
	for v := 1; v <= f.NumVars; v++ {
		lit := Literal(v)
		if tr.IsLiteralUndefined(lit) {
			return nil, fmt.Errorf("%w: variable %d still undefined at a claimed solution",
				ErrInternalInvariant, v)
		}
		values[v] = tr.IsLiteralTrue(lit)
	}
	return &Assignment{values: values}, nil
}
