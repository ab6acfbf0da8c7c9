package solver

// analyze derives a learned clause from the given conflict and returns it
// together with the level to backtrack to.
// A negative level means the conflict happened at decision level 0, so the
// formula is unsatisfiable and nothing is learned.
//
// The clause is built by resolution along the implication graph: starting from
// the conflict clause, antecedents of current-level literals are resolved in,
// walking the trail backwards, until a single literal of the current level
// remains (the first unique implication point). The result is false under the
// current trail and becomes unit right after backtracking, which is what makes
// the search progress.
func (s *Solver) analyze(confl *Clause) (btLevel int, learned *Clause) {
	lvl := s.trail.Level()
	if lvl == 0 {
		return -1, nil
	}
	seen := make(map[Var]bool)
	lits := []Lit{-1} // Room for the asserting literal, set once the UIP is found
	nbLvl := 0        // Unresolved literals of the current level

	add := func(l Lit) {
		v := l.Var()
		a := s.trail.entries[v]
		if seen[v] || a.Level == 0 {
			return
		}
		seen[v] = true
		s.brancher.Bump(v)
		if a.Level == lvl {
			nbLvl++
		} else {
			lits = append(lits, l)
		}
	}

	c := confl
	idx := len(s.trail.stack) - 1
	for {
		for i := 0; i < c.Len(); i++ {
			add(c.Get(i))
		}
		// Assignments of the current level form the top of the stack, so the
		// next seen literal up there is the next resolution candidate.
		for !seen[s.trail.stack[idx].Var()] {
			idx--
		}
		asserted := s.trail.stack[idx]
		idx--
		nbLvl--
		if nbLvl == 0 {
			lits[0] = asserted.Negation()
			break
		}
		// Cannot be nil: the decision is the deepest current-level entry, and
		// reaching it means every other current-level literal was resolved.
		c = s.trail.entries[asserted.Var()].Reason
	}
	lits = s.minimizeLearned(seen, lits)
	for _, l := range lits[1:] {
		if entryLvl := s.trail.entries[l.Var()].Level; entryLvl > btLevel {
			btLevel = entryLvl
		}
	}
	return btLevel, NewLearnedClause(lits)
}

// minimizeLearned drops literals whose antecedents are entirely covered by the
// rest of the clause: they are implied and add nothing.
func (s *Solver) minimizeLearned(seen map[Var]bool, lits []Lit) []Lit {
	sz := 1
	for i := 1; i < len(lits); i++ {
		reason := s.trail.entries[lits[i].Var()].Reason
		if reason == nil {
			lits[sz] = lits[i]
			sz++
			continue
		}
		for k := 0; k < reason.Len(); k++ {
			l := reason.Get(k)
			if !seen[l.Var()] && s.trail.entries[l.Var()].Level > 0 {
				lits[sz] = lits[i]
				sz++
				break
			}
		}
	}
	return lits[:sz]
}
