/*
Package solver implements a CDCL (conflict-driven clause learning) solver for
propositional formulas in conjunctive normal form.

A formula can be described in two ways:

1. parse a DIMACS stream (io.Reader). If the io.Reader produces the following content:

	p cnf 3 3
	1 2 0
	-1 2 0
	-2 3 0

the programmer can create the Formula by doing:

	f, err := solver.ParseCNF(r)

2. create the equivalent list of lists of literals. The formula above can be
created programmatically this way:

	f := solver.ParseSlice([][]int{
		{1, 2},
		{-1, 2},
		{-2, 3},
	})

To solve a formula, one creates a solver for it. Solve then searches for a
satisfying assignment and returns the corresponding status, Sat or Unsat:

	s := solver.New(f)
	status := s.Solve()

If the status is Sat, the solver can provide a model, i.e a binding for every
variable of the formula that makes all its clauses true:

	m := s.Model() // map[int]bool, keyed by CNF variable

Decisions are delegated to a Brancher. The default is an activity-based
heuristic; a seeded random brancher is also provided, and any custom policy
can be plugged in:

	s := solver.New(f, solver.WithBrancher(solver.NewRandomBrancher(42)))

Solving is a closed-form sequential computation: no goroutines, no I/O, no
cancellation. A solver must not be shared, nor may two solvers share a
Formula. Callers needing bounded-time solving can set a conflict budget with
WithMaxConflicts, in which case Solve may also return Indet.
*/
package solver
