package solver

import (
	"fmt"
	"sort"
	"strings"
)

// A Formula is a problem in conjunctive normal form: a clause database plus
// the set of variables mentioned by it.
// The database is append-only: learned clauses are added at the end and no
// clause is ever removed or modified, so clause references stay valid for the
// whole lifetime of the formula.
// A Formula must not be shared between concurrent solves.
type Formula struct {
	clauses   []*Clause
	nbInitial int   // Number of clauses the formula was built with
	vars      []Var // All variables appearing in clauses, sorted, fixed at construction
	maxVar    Var
}

// NewFormula builds a formula from the given clauses.
// The variable set is computed once here; learned clauses only ever reuse
// literals from existing clauses, so it never grows afterwards.
func NewFormula(clauses []*Clause) *Formula {
	f := &Formula{
		clauses:   clauses,
		nbInitial: len(clauses),
		maxVar:    -1,
	}
	seen := make(map[Var]bool)
	for _, c := range clauses {
		for i := 0; i < c.Len(); i++ {
			v := c.Get(i).Var()
			if !seen[v] {
				seen[v] = true
				f.vars = append(f.vars, v)
				if v > f.maxVar {
					f.maxVar = v
				}
			}
		}
	}
	sort.Slice(f.vars, func(i, j int) bool { return f.vars[i] < f.vars[j] })
	return f
}

// Variables returns all variables appearing in the formula, in increasing order.
// The returned slice is shared and must not be modified.
func (f *Formula) Variables() []Var {
	return f.vars
}

// NumVariables returns the number of distinct variables in the formula.
func (f *Formula) NumVariables() int {
	return len(f.vars)
}

// MaxVar returns the highest variable of the formula, or -1 if it has none.
func (f *Formula) MaxVar() Var {
	return f.maxVar
}

// NumClauses returns the current size of the clause database,
// learned clauses included.
func (f *Formula) NumClauses() int {
	return len(f.clauses)
}

// NumLearned returns how many clauses were learned since construction.
func (f *Formula) NumLearned() int {
	return len(f.clauses) - f.nbInitial
}

// Clause returns the ith clause of the database.
func (f *Formula) Clause(i int) *Clause {
	return f.clauses[i]
}

// Learn appends a learned clause to the database.
func (f *Formula) Learn(c *Clause) {
	f.clauses = append(f.clauses, c)
}

// CNF returns the DIMACS representation of the formula, including any
// learned clauses.
func (f *Formula) CNF() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", f.maxVar.Int(), len(f.clauses))
	for _, c := range f.clauses {
		sb.WriteString(c.CNF())
		sb.WriteByte('\n')
	}
	return sb.String()
}
