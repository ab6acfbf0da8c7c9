package solver

import (
	"fmt"
	"strings"
)

// A Clause is the disjunction of its literals.
// Clauses are immutable once created: the solver never rewrites a clause that
// was added to a formula, it only appends new ones.
type Clause struct {
	lits    []Lit
	learned bool
}

// NewClause returns a clause over the given literals.
// The slice is owned by the clause afterwards and must not be modified by the caller.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// NewLearnedClause returns a clause marked as learned, i.e derived
// from a conflict rather than part of the original problem.
func NewLearnedClause(lits []Lit) *Clause {
	return &Clause{lits: lits, learned: true}
}

// Learned is true iff c was derived through conflict analysis.
func (c *Clause) Learned() bool {
	return c.learned
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal of the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// CNF returns the DIMACS representation of the clause.
func (c *Clause) CNF() string {
	var sb strings.Builder
	for _, lit := range c.lits {
		fmt.Fprintf(&sb, "%d ", lit.Int())
	}
	sb.WriteByte('0')
	return sb.String()
}

func (c *Clause) String() string {
	ints := make([]string, len(c.lits))
	for i, lit := range c.lits {
		ints[i] = fmt.Sprintf("%d", lit.Int())
	}
	return "[" + strings.Join(ints, " ") + "]"
}
