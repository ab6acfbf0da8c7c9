package solver

import (
	"io"

	"github.com/sirupsen/logrus"
)

// How often search progress is logged, in conflicts.
const progressEvery = 1000

// Stats are counters about the search. They are provided for information
// purpose only.
type Stats struct {
	Decisions    int // How many free choices were made
	Conflicts    int // How many falsified clauses were met
	Propagations int // How many assignments were forced by unit propagation
	Learned      int // How many clauses were learned
	UnitsLearned int // How many of the learned clauses were unit
}

// A Solver decides the satisfiability of a formula.
// It owns the formula's clause database and a trail for the duration of the
// solve; neither may be shared with another solver.
type Solver struct {
	formula      *Formula
	trail        *Trail
	brancher     Brancher
	status       Status
	maxConflicts int
	log          logrus.FieldLogger
	Stats        Stats // Statistics about the solving process
}

// An Option configures a solver at construction time.
type Option func(*Solver)

// WithBrancher makes the solver use b to pick decisions.
// The default is an activity brancher over the formula's variables.
func WithBrancher(b Brancher) Option {
	return func(s *Solver) { s.brancher = b }
}

// WithMaxConflicts bounds the search: once the solver has met n conflicts,
// Solve gives up and returns Indet. Zero, the default, means no bound.
// Sat and Unsat answers are exact regardless of the bound.
func WithMaxConflicts(n int) Option {
	return func(s *Solver) { s.maxConflicts = n }
}

// WithLogger makes the solver log search progress on l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Solver) { s.log = l }
}

// New returns a solver for the given formula.
func New(f *Formula, opts ...Option) *Solver {
	s := &Solver{
		formula: f,
		trail:   NewTrail(),
		status:  Indet,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.brancher == nil {
		s.brancher = NewActivityBrancher(f)
	}
	if s.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		s.log = quiet
	}
	return s
}

// Solve searches for an assignment satisfying the formula and returns the
// resulting status.
//
// The search interleaves decisions and propagation: each decision opens a new
// level, propagation then extends the trail with everything the decision
// forces. A falsified clause triggers conflict analysis, which learns a clause
// and tells how far to backtrack; a conflict that analysis cannot resolve
// proves the formula unsatisfiable. The formula is satisfied once every
// variable is assigned.
func (s *Solver) Solve() Status {
	if s.status != Indet {
		return s.status
	}
	if confl := s.propagate(); confl != nil {
		// The formula needs no decision at all to be contradictory.
		s.status = Unsat
		return s.status
	}
	nbVars := s.formula.NumVariables()
	for s.trail.Size() < nbVars {
		v, value := s.brancher.Pick(s.formula, s.trail)
		s.trail.NewLevel()
		s.trail.Assign(v, value, nil)
		s.Stats.Decisions++
		for {
			confl := s.propagate()
			if confl == nil {
				break
			}
			s.Stats.Conflicts++
			if s.maxConflicts > 0 && s.Stats.Conflicts >= s.maxConflicts {
				s.log.WithField("conflicts", s.Stats.Conflicts).Info("conflict budget exhausted, giving up")
				return Indet
			}
			btLevel, learned := s.analyze(confl)
			if btLevel < 0 {
				s.status = Unsat
				return s.status
			}
			s.formula.Learn(learned)
			s.Stats.Learned++
			if learned.Len() == 1 {
				s.Stats.UnitsLearned++
			}
			s.brancher.Release(s.trail.Backtrack(btLevel))
			s.brancher.Decay()
			if s.Stats.Conflicts%progressEvery == 0 {
				s.log.WithFields(logrus.Fields{
					"conflicts": s.Stats.Conflicts,
					"decisions": s.Stats.Decisions,
					"learned":   s.Stats.Learned,
					"assigned":  s.trail.Size(),
					"level":     s.trail.Level(),
				}).Info("search progress")
			}
		}
	}
	s.status = Sat
	return s.status
}

// Status returns the current status of the solver's problem.
func (s *Solver) Status() Status {
	return s.status
}

// Model returns the satisfying assignment, keyed by CNF variable.
// Every variable of the formula is present. The method panics if the solver
// has not proven the formula satisfiable.
func (s *Solver) Model() map[int]bool {
	if s.status != Sat {
		panic("cannot call Model() on a non-Sat solver")
	}
	model := make(map[int]bool, s.formula.NumVariables())
	for _, v := range s.formula.Variables() {
		a, _ := s.trail.Assignment(v)
		model[v.Int()] = a.Value
	}
	return model
}

// Verify replays the full assignment against the clause database and reports
// whether every clause is satisfied. It is a post-solve check; it always
// returns false if the solver is not in the Sat state.
func (s *Solver) Verify() bool {
	return s.status == Sat && s.trail.Satisfies(s.formula)
}
