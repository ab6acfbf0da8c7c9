package solver

// propagate extends the trail with every assignment forced by the current one
// and returns the first fully falsified clause it meets, or nil once a fixed
// point is reached.
//
// The whole database is rescanned until a pass assigns nothing: a clause with
// a single unassigned literal and all others false forces that literal, with
// the clause recorded as its antecedent. Watched-literal schemes avoid most of
// this rescanning but require reordering literals inside clauses; the clause
// database here is immutable, so the solver keeps the exhaustive scan.
func (s *Solver) propagate() *Clause {
	for again := true; again; {
		again = false
		for _, c := range s.formula.clauses {
			sat := false
			nbFalse := 0
			free := Lit(-1)
			for i := 0; i < c.Len(); i++ {
				lit := c.Get(i)
				if !s.trail.Assigned(lit.Var()) {
					free = lit
				} else if s.trail.Value(lit) {
					sat = true
					break
				} else {
					nbFalse++
				}
			}
			if sat {
				continue
			}
			if nbFalse == c.Len() { // All literals false: conflict
				return c
			}
			if nbFalse == c.Len()-1 && free != -1 { // Unit: the free literal is forced
				s.trail.Assign(free.Var(), free.IsPositive(), c)
				s.Stats.Propagations++
				again = true
			}
		}
	}
	return nil
}
