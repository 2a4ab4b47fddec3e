package dpll2wl

import (
	"fmt"
	"strings"
)

// TruthValue is the extended truth value of a variable: True, False, or
// Undefined (the initial state of every variable).
type TruthValue byte

const (
	Undefined TruthValue = iota
	True
	False
)

func (v TruthValue) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undefined"
	}
}

// Trail holds the current partial assignment plus the stack of literals
// assigned so far, annotated with decision markers (NullLiteral pushed just
// before a decided literal) so that backtracking can unwind an entire
// decision's implications in one pass.
type Trail struct {
	values []TruthValue // indexed by variable, 1..n; values[0] unused
	stack  []Literal
}

// NewTrail returns a trail over n variables, all Undefined, with an empty
// stack.
func NewTrail(n int) *Trail {
	t := &Trail{}
	t.Reset(n)
	return t
}

// Reset reinitializes the trail to n variables, all Undefined, with an empty
// stack.
func (t *Trail) Reset(n int) {
	t.values = make([]TruthValue, n+1)
	t.stack = make([]Literal, 0, n)
}

// Push assigns the variable |l| to true (if l > 0) or false (if l < 0). If
// decide is true, a decision marker is pushed onto the stack before l,
// starting a new decision level. The variable |l| must currently be
// Undefined.
func (t *Trail) Push(l Literal, decide bool) error {
	v := l.Var()
	if t.values[v] != Undefined {
		return fmt.Errorf("%w: push of literal %d whose variable %d is already %s",
			ErrInternalInvariant, l, v, t.values[v])
	}
	if l.Positive() {
		t.values[v] = True
	} else {
		t.values[v] = False
	}
	if decide {
		t.stack = append(t.stack, NullLiteral)
	}
	t.stack = append(t.stack, l)
	return nil
}

// Backtrack pops literals from the stack, resetting each popped variable to
// Undefined, until a decision marker is consumed. It returns the decided
// literal that immediately followed the consumed marker, or NullLiteral if
// the stack contained no decision marker at all (signaling global failure:
// the search has exhausted every branch).
func (t *Trail) Backtrack() Literal {
	lastDecided := NullLiteral
	for {
		if len(t.stack) == 0 {
			return NullLiteral
		}
		last := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		if last == NullLiteral {
			return lastDecided
		}
		t.values[last.Var()] = Undefined
		lastDecided = last
	}
}

// FirstUndefined returns +v for the smallest variable v the trail was built
// for that is currently Undefined, or NullLiteral if every variable is
// assigned.
func (t *Trail) FirstUndefined() Literal {
	for v := 1; v < len(t.values); v++ {
		if t.values[v] == Undefined {
			return Literal(v)
		}
	}
	return NullLiteral
}

// IsLiteralTrue reports whether l currently evaluates to true.
func (t *Trail) IsLiteralTrue(l Literal) bool {
	if l.Positive() {
		return t.values[l.Var()] == True
	}
	return t.values[l.Var()] == False
}

// IsLiteralFalse reports whether l currently evaluates to false.
func (t *Trail) IsLiteralFalse(l Literal) bool {
	if l.Positive() {
		return t.values[l.Var()] == False
	}
	return t.values[l.Var()] == True
}

// IsLiteralUndefined reports whether l's variable is currently Undefined.
func (t *Trail) IsLiteralUndefined(l Literal) bool {
	return t.values[l.Var()] == Undefined
}

// IsClauseFalse reports whether every literal in c is currently false.
// Linear in len(c); used only by the naive solver path.
func (t *Trail) IsClauseFalse(c Clause) bool {
	for _, l := range c {
		if !t.IsLiteralFalse(l) {
			return false
		}
	}
	return true
}

// IsClauseUnit returns the single undefined literal of c if exactly one
// literal of c is undefined and every other literal is false. It returns
// NullLiteral if c is already satisfied, has two or more undefined literals,
// or is false. Used only by the naive solver path.
func (t *Trail) IsClauseUnit(c Clause) Literal {
	undef := NullLiteral
	undefCount := 0
	for _, l := range c {
		if t.IsLiteralTrue(l) {
			return NullLiteral
		}
		if t.IsLiteralUndefined(l) {
			undefCount++
			undef = l
			if undefCount > 1 {
				return NullLiteral
			}
		}
	}
	if undefCount == 1 {
		return undef
	}
	return NullLiteral
}

// DebugString renders the trail in the diagnostic dump format:
// "[ p1 ~p2 u3 ]  ||  STACK: 1 | -2", where pX means variable X is true,
// ~pX means false, uX means undefined, and stack entries are trail literals
// with decision markers rendered as "|".
func (t *Trail) DebugString() string {
	var b strings.Builder
	b.WriteString("[ ")
	for v := 1; v < len(t.values); v++ {
		switch t.values[v] {
		case True:
			fmt.Fprintf(&b, "p%d ", v)
		case False:
			fmt.Fprintf(&b, "~p%d ", v)
		case Undefined:
			fmt.Fprintf(&b, "u%d ", v)
		default:
			fmt.Fprintf(&b, "?%d ", v)
		}
	}
	b.WriteString("]  ||  STACK:")
	for _, l := range t.stack {
		if l == NullLiteral {
			b.WriteString(" |")
		} else {
			fmt.Fprintf(&b, " %d", int(l))
		}
	}
	return b.String()
}
