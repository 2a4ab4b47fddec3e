package dpll2wl

import "testing"

func TestNewWatchIndexEmptyClause(t *testing.T) {
	f := &Formula{NumVars: 1, Clauses: []Clause{{}}}
	_, _, emptyClauseConflict := newWatchIndex(f)
	if !emptyClauseConflict {
		t.Fatal("an empty clause must report emptyClauseConflict")
	}
}

func TestNewWatchIndexUnitClause(t *testing.T) {
	f := &Formula{NumVars: 1, Clauses: []Clause{{1}}}
	_, initialUnits, emptyClauseConflict := newWatchIndex(f)
	if emptyClauseConflict {
		t.Fatal("a unit clause is not an unconditional conflict")
	}
	if len(initialUnits) != 1 || initialUnits[0] != 1 {
		t.Fatalf("initialUnits = %v, want [1]", initialUnits)
	}
}

func TestNewWatchIndexDegenerateDuplicateLiteralClause(t *testing.T) {
	// Every literal in the clause is the same literal; it can only ever be
	// satisfied by variable 1 being true, so it behaves as a unit clause.
	f := &Formula{NumVars: 1, Clauses: []Clause{{1, 1, 1}}}
	_, initialUnits, emptyClauseConflict := newWatchIndex(f)
	if emptyClauseConflict {
		t.Fatal("not an unconditional conflict")
	}
	if len(initialUnits) != 1 || initialUnits[0] != 1 {
		t.Fatalf("initialUnits = %v, want [1]", initialUnits)
	}
}

func TestWatchIndexUpdatePropagatesUnit(t *testing.T) {
	f := &Formula{NumVars: 3, Clauses: []Clause{{1, 2}, {-1, 3}}}
	wi, initialUnits, emptyClauseConflict := newWatchIndex(f)
	if emptyClauseConflict || len(initialUnits) != 0 {
		t.Fatalf("unexpected construction result: units=%v conflict=%v", initialUnits, emptyClauseConflict)
	}

	tr := NewTrail(3)
	q := newPropQueue(3)
	if err := tr.Push(1, true); err != nil {
		t.Fatal(err)
	}

	if wi.update(-1, tr, q) {
		t.Fatal("asserting variable 1 true should not conflict with {-1, 3}")
	}
	if q.empty() {
		t.Fatal("clause {-1, 3} should have forced literal 3")
	}
	if l := q.pop(); l != 3 {
		t.Fatalf("forced literal = %d, want 3", l)
	}
}

func TestWatchIndexUpdateRelocatesWatch(t *testing.T) {
	f := &Formula{NumVars: 3, Clauses: []Clause{{1, 2, 3}}}
	wi, _, _ := newWatchIndex(f)

	tr := NewTrail(3)
	q := newPropQueue(3)
	if err := tr.Push(-1, true); err != nil {
		t.Fatal(err)
	}

	if wi.update(1, tr, q) {
		t.Fatal("a 3-literal clause with one watched literal falsified should relocate, not conflict")
	}
	if !q.empty() {
		t.Fatal("relocating a watch must not force anything")
	}
	if len(wi.watches[litIndex(1)]) != 0 {
		t.Fatal("clause should no longer watch the falsified literal 1")
	}
	if len(wi.watches[litIndex(3)]) != 1 {
		t.Fatal("clause should now watch the undefined literal 3")
	}
}

func TestWatchIndexUpdateDetectsConflict(t *testing.T) {
	f := &Formula{NumVars: 2, Clauses: []Clause{{1, 2}}}
	wi, _, _ := newWatchIndex(f)

	tr := NewTrail(2)
	q := newPropQueue(2)
	if err := tr.Push(-2, true); err != nil {
		t.Fatal(err)
	}
	if err := tr.Push(-1, false); err != nil {
		t.Fatal(err)
	}

	if !wi.update(1, tr, q) {
		t.Fatal("both watched literals false should be reported as a conflict")
	}
}
