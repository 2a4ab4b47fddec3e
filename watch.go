package dpll2wl

// watchIndex is the bidirectional watched-literal structure: for every
// literal, the clauses currently watching it; for every multi-literal
// clause, the pair of literals it currently watches. Clause identity is an
// integer index into the owning Formula's clause slice rather than the
// literal sequence itself, so watch replacement never hashes or compares a
// clause by value.
type watchIndex struct {
	formula *Formula

	// watches[litIndex(l)] lists the indices of clauses currently watching
	// literal l.
	watches [][]int

	// pairs[clauseIdx] holds the two literals clause clauseIdx currently
	// watches. Unit and empty clauses (which never participate in
	// watching) keep the zero value.
	pairs [][2]Literal
}

// newWatchIndex builds the initial watch structure for f. It returns the
// index, the literals of every clause that is unit at construction time
// (to be enqueued as initial implications), and true if f contains an empty
// clause (an unconditional conflict, independent of any assignment).
func newWatchIndex(f *Formula) (wi *watchIndex, initialUnits []Literal, emptyClauseConflict bool) {
	wi = &watchIndex{
		formula: f,
		watches: make([][]int, f.NumVars*2),
		pairs:   make([][2]Literal, len(f.Clauses)),
	}

	for i, c := range f.Clauses {
		switch {
		case len(c) == 0:
			emptyClauseConflict = true

		case len(c) == 1:
			initialUnits = append(initialUnits, c[0])

		default:
			w0, w1 := c[0], c[1]
			if w0 == w1 {
				w1 = NullLiteral
				for j := 1; j < len(c); j++ {
					if c[j] != w0 {
						w1 = c[j]
						break
					}
				}
			}
			if w1 == NullLiteral {
				// Every literal in c equals c[0]; it behaves as a unit
				// clause since only one distinct literal can ever make it
				// true.
				initialUnits = append(initialUnits, w0)
				continue
			}
			wi.pairs[i] = [2]Literal{w0, w1}
			wi.watches[litIndex(w0)] = append(wi.watches[litIndex(w0)], i)
			wi.watches[litIndex(w1)] = append(wi.watches[litIndex(w1)], i)
		}
	}

	return wi, initialUnits, emptyClauseConflict
}

// update is called when the trail just made l false. It scans the clauses
// currently watching l, relocating watches to undefined non-watched
// literals where possible, and reports any literal newly forced to true via
// q. It returns true if a conflict is detected, in which case q has been
// left cleared by the caller's subsequent handling (update itself never
// clears q; see Solver.Solve).
func (wi *watchIndex) update(l Literal, tr *Trail, q *propQueue) bool {
	lIdx := litIndex(l)
	watchers := wi.watches[lIdx]
	kept := watchers[:0]
	conflict := false

	for i, ci := range watchers {
		pair := wi.pairs[ci]
		c := wi.formula.Clauses[ci]

		foundTrue := false
		undef := NullLiteral
		for _, lit := range c {
			if tr.IsLiteralTrue(lit) {
				foundTrue = true
				break
			}
			if undef == NullLiteral && lit != pair[0] && lit != pair[1] && tr.IsLiteralUndefined(lit) {
				undef = lit
			}
		}

		if foundTrue {
			kept = append(kept, ci)
			continue
		}

		other := pair[0]
		if pair[0] == l {
			other = pair[1]
		}

		if undef != NullLiteral {
			if pair[0] == l {
				wi.pairs[ci] = [2]Literal{undef, other}
			} else {
				wi.pairs[ci] = [2]Literal{other, undef}
			}
			wi.watches[litIndex(undef)] = append(wi.watches[litIndex(undef)], ci)
			continue // ci leaves l's watchlist
		}

		// c is now unit or conflicting: it keeps watching l.
		kept = append(kept, ci)
		if tr.IsLiteralUndefined(other) {
			if !q.push(other) {
				conflict = true
			}
		} else {
			// other can't be true (checked above), so it's false: both
			// watched literals are false and c is unsatisfiable.
			conflict = true
		}

		if conflict {
			// Leave the not-yet-visited watchers of l untouched; they're
			// still valid once l's assignment is undone by backtracking.
			kept = append(kept, watchers[i+1:]...)
			break
		}
	}

	wi.watches[lIdx] = kept
	return conflict
}
