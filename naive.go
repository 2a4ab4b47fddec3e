package dpll2wl

import "io"

// NaiveSolver is a DPLL solver that forgoes the watched-literal index
// entirely, linearly scanning every clause on each iteration to detect a
// conflict or a unit clause. It is simpler and slower than Solver, and the
// two are expected to agree on every input; NaiveSolver earns its keep as a
// reference implementation to check Solver's watched-literal bookkeeping
// against.
type NaiveSolver struct {
	formula *Formula
	trail   *Trail
}

// NewNaiveSolver builds a naive solver for a formula over numVars variables
// and the given clauses.
func NewNaiveSolver(numVars int, clauses []Clause) (*NaiveSolver, error) {
	if numVars < 0 {
		return nil, errNegativeVarCount(numVars)
	}
	if err := validateClauses(numVars, clauses); err != nil {
		return nil, err
	}
	return &NaiveSolver{
		formula: &Formula{NumVars: numVars, Clauses: clauses},
		trail:   NewTrail(numVars),
	}, nil
}

// NewNaiveSolverFromDIMACS parses a DIMACS CNF stream and builds a naive
// solver for it.
func NewNaiveSolverFromDIMACS(r io.Reader) (*NaiveSolver, error) {
	f, err := ParseDIMACS(r)
	if err != nil {
		return nil, err
	}
	return NewNaiveSolver(f.NumVars, f.Clauses)
}

// NumVars returns the number of variables the solver was built for.
func (s *NaiveSolver) NumVars() int {
	return s.formula.NumVars
}

// DebugString renders the solver's current trail: every variable's truth
// value followed by the assignment stack, decision points marked with "|".
func (s *NaiveSolver) DebugString() string {
	return s.trail.DebugString()
}

// Solve runs the naive search to completion: detect conflict, else find a
// unit clause and propagate it, else decide the first undefined variable,
// else report success. Conflicts are resolved by flipping the most recent
// decision via Trail.Backtrack, exactly as the fast path does.
func (s *NaiveSolver) Solve() (*Assignment, error) {
	for {
		if s.hasConflict() {
			d := s.trail.Backtrack()
			if d == NullLiteral {
				return nil, nil
			}
			if err := s.trail.Push(d.Negate(), false); err != nil {
				return nil, err
			}
			continue
		}

		if l := s.hasUnitClause(); l != NullLiteral {
			if err := s.trail.Push(l, false); err != nil {
				return nil, err
			}
			continue
		}

		if l := s.trail.FirstUndefined(); l != NullLiteral {
			if err := s.trail.Push(l, true); err != nil {
				return nil, err
			}
			continue
		}

		return buildAssignment(s.formula, s.trail)
	}
}

func (s *NaiveSolver) hasConflict() bool {
	for _, c := range s.formula.Clauses {
		if s.trail.IsClauseFalse(c) {
			return true
		}
	}
	return false
}

func (s *NaiveSolver) hasUnitClause() Literal {
	for _, c := range s.formula.Clauses {
		if l := s.trail.IsClauseUnit(c); l != NullLiteral {
			return l
		}
	}
	return NullLiteral
}
