package solver

// Basic types shared across the solver.

// Status is the state of a problem at a given moment: still unknown,
// proven satisfiable or proven unsatisfiable.
type Status byte

const (
	// Indet means the problem was not proven sat or unsat yet.
	Indet = Status(iota)
	// Sat means a satisfying assignment was found.
	Sat
	// Unsat means no satisfying assignment exists.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Indet:
		return "INDETERMINATE"
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		panic("invalid status")
	}
}

// A Var is a propositional variable. Vars start at 0, so the CNF variable 1
// is encoded as the Var 0.
type Var int32

// A Lit is a variable together with a polarity, encoded in a single value:
// the polarity is the lowest bit. The CNF literal -3 is encoded as 2*(3-1)+1 = 5.
type Lit int32

// IntToLit converts a nonzero CNF literal to a Lit.
func IntToLit(i int) Lit {
	if i < 0 {
		return Lit(2*(-i-1) + 1)
	}
	return Lit(2 * (i - 1))
}

// IntToVar converts a CNF variable to a Var.
func IntToVar(i int) Var {
	return Var(i - 1)
}

// Int returns the CNF variable associated with v.
func (v Var) Int() int {
	return int(v) + 1
}

// Lit returns the positive Lit for v.
func (v Var) Lit() Lit {
	return Lit(v * 2)
}

// SignedLit returns the Lit for v, negated iff neg is true.
func (v Var) SignedLit(neg bool) Lit {
	if neg {
		return Lit(v*2) + 1
	}
	return Lit(v * 2)
}

// Var returns the variable of l.
func (l Lit) Var() Var {
	return Var(l / 2)
}

// Int returns the equivalent CNF literal.
func (l Lit) Int() int {
	res := int(l/2) + 1
	if l&1 == 1 {
		return -res
	}
	return res
}

// IsPositive is true iff l is the positive literal of its variable.
func (l Lit) IsPositive() bool {
	return l%2 == 0
}

// Negation returns the literal of the same variable with the opposite polarity.
func (l Lit) Negation() Lit {
	return l ^ 1
}
