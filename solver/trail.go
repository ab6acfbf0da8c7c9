package solver

// An Assignment is the binding of one variable: its truth value, the decision
// level it was assigned at, and the clause that forced it.
// Reason is nil iff the assignment was a free decision.
type Assignment struct {
	Value  bool
	Level  int
	Reason *Clause
}

// A Trail records the current partial assignment.
// Bindings are kept in a map for O(1) lookup, next to a stack of the literals
// made true, in assignment order. The stack is what makes backtracking and
// conflict analysis cheap: all entries above a level form a suffix of it.
// A Trail is exclusively owned by one solve invocation.
type Trail struct {
	entries map[Var]Assignment
	stack   []Lit // Literals made true, oldest first
	level   int
}

// NewTrail returns an empty trail at decision level 0.
func NewTrail() *Trail {
	return &Trail{entries: make(map[Var]Assignment)}
}

// Level returns the current decision level.
func (t *Trail) Level() int {
	return t.level
}

// NewLevel opens a new decision level and returns it.
func (t *Trail) NewLevel() int {
	t.level++
	return t.level
}

// Size returns the number of assigned variables.
func (t *Trail) Size() int {
	return len(t.entries)
}

// Assigned reports whether v currently has a binding.
func (t *Trail) Assigned(v Var) bool {
	_, ok := t.entries[v]
	return ok
}

// Assignment returns the current binding of v, if any.
func (t *Trail) Assignment(v Var) (Assignment, bool) {
	a, ok := t.entries[v]
	return a, ok
}

// Value returns the truth value of l under the current assignment.
// A literal over an unassigned variable evaluates to false: callers that need
// to distinguish "false" from "unassigned" must check Assigned first.
func (t *Trail) Value(l Lit) bool {
	a, ok := t.entries[l.Var()]
	if !ok {
		return false
	}
	return a.Value == l.IsPositive()
}

// Assign binds v at the current decision level.
// reason must be the clause that forced the binding, or nil for a decision.
// Re-assigning a bound variable is not expected during normal operation but is
// harmless: the last write wins.
func (t *Trail) Assign(v Var, value bool, reason *Clause) {
	if _, ok := t.entries[v]; ok {
		t.dropFromStack(v)
	}
	t.entries[v] = Assignment{Value: value, Level: t.level, Reason: reason}
	t.stack = append(t.stack, v.SignedLit(!value))
}

// Unassign removes the binding of v entirely.
func (t *Trail) Unassign(v Var) {
	if _, ok := t.entries[v]; !ok {
		return
	}
	delete(t.entries, v)
	t.dropFromStack(v)
}

// dropFromStack removes v's literal from the assignment stack.
// Scans from the top since the entry is almost always recent.
func (t *Trail) dropFromStack(v Var) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i].Var() == v {
			t.stack = append(t.stack[:i], t.stack[i+1:]...)
			return
		}
	}
}

// Backtrack removes every entry assigned above the given level, leaves all
// others untouched and makes level the current decision level.
// It returns the literals that were unassigned, most recent first, so that
// branching heuristics can reclaim their variables.
func (t *Trail) Backtrack(level int) []Lit {
	i := len(t.stack)
	for i > 0 && t.entries[t.stack[i-1].Var()].Level > level {
		i--
	}
	removed := make([]Lit, 0, len(t.stack)-i)
	for j := len(t.stack) - 1; j >= i; j-- {
		lit := t.stack[j]
		removed = append(removed, lit)
		delete(t.entries, lit.Var())
	}
	t.stack = t.stack[:i]
	t.level = level
	return removed
}

// Satisfies reports whether every clause of f has at least one literal made
// true by the trail. It scans the whole database and is meant for post-solve
// verification, not for use during search.
func (t *Trail) Satisfies(f *Formula) bool {
	for _, c := range f.clauses {
		sat := false
		for i := 0; i < c.Len(); i++ {
			if t.Value(c.Get(i)) {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}
