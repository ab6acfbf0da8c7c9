package solver

import (
	"math/rand"
)

const (
	defaultActivityDecay = 0.95  // By how much variable bumping decays over time
	activityRescaleLimit = 1e100 // Activities are rescaled when one crosses this
)

// A Brancher decides where the search goes next: when propagation stalls
// without resolving the formula, the solver asks it for an unassigned variable
// and a trial value.
//
// Pick must only return a variable without a current trail entry. The solver
// guarantees it is never called when all variables are assigned.
// Bump and Release are feedback hooks used by activity-based heuristics: Bump
// is called for each variable involved in a conflict, Decay once per conflict,
// and Release with the literals unassigned by backtracking. Implementations
// that do not track activity may ignore them.
//
// This is the only place nondeterminism may enter the solver: with a
// deterministic brancher, solving is fully deterministic.
type Brancher interface {
	Pick(f *Formula, t *Trail) (Var, bool)
	Bump(v Var)
	Decay()
	Release(lits []Lit)
}

// A RandomBrancher picks uniformly among unassigned variables, with a random
// polarity. It is the weakest reasonable policy, but a useful baseline: seeded
// identically, it makes whole solves reproducible.
type RandomBrancher struct {
	rng *rand.Rand
}

// NewRandomBrancher returns a random brancher with the given seed.
func NewRandomBrancher(seed int64) *RandomBrancher {
	return &RandomBrancher{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a random unassigned variable and a random polarity.
func (b *RandomBrancher) Pick(f *Formula, t *Trail) (Var, bool) {
	free := make([]Var, 0, f.NumVariables()-t.Size())
	for _, v := range f.Variables() {
		if !t.Assigned(v) {
			free = append(free, v)
		}
	}
	if len(free) == 0 {
		panic("branching with no unassigned variable left")
	}
	return free[b.rng.Intn(len(free))], b.rng.Intn(2) == 0
}

// Bump is a no-op: the random policy ignores conflict feedback.
func (b *RandomBrancher) Bump(v Var) {}

// Decay is a no-op.
func (b *RandomBrancher) Decay() {}

// Release is a no-op.
func (b *RandomBrancher) Release(lits []Lit) {}

// An ActivityBrancher implements a VSIDS-style policy: variables involved in
// recent conflicts are picked first, and each variable is first tried with the
// polarity it last had (phase saving).
type ActivityBrancher struct {
	activity []float64 // How often each var was recently involved in conflicts
	polarity []bool    // Last value each var was assigned, tried first
	queue    *activityQueue
	varInc   float64 // On each bump, by how much the activity grows
	decay    float64
}

// NewActivityBrancher returns an activity brancher covering the variables of f.
func NewActivityBrancher(f *Formula) *ActivityBrancher {
	nb := int(f.MaxVar()) + 1
	b := &ActivityBrancher{
		activity: make([]float64, nb),
		polarity: make([]bool, nb),
		varInc:   1.0,
		decay:    defaultActivityDecay,
	}
	b.queue = newActivityQueue(b.activity)
	for _, v := range f.Variables() {
		b.queue.push(v)
	}
	return b
}

// Pick returns the unassigned variable with the highest activity and its
// saved polarity.
func (b *ActivityBrancher) Pick(f *Formula, t *Trail) (Var, bool) {
	for !b.queue.empty() {
		if v := b.queue.pop(); !t.Assigned(v) {
			return v, b.polarity[v]
		}
	}
	// Variables assigned by propagation leave the queue for good when they are
	// popped, so the queue can run dry while unassigned variables remain.
	free := make([]Var, 0, f.NumVariables()-t.Size())
	for _, v := range f.Variables() {
		if !t.Assigned(v) {
			free = append(free, v)
		}
	}
	if len(free) == 0 {
		panic("branching with no unassigned variable left")
	}
	b.queue.rebuild(free)
	v := b.queue.pop()
	return v, b.polarity[v]
}

// Bump increases v's activity.
func (b *ActivityBrancher) Bump(v Var) {
	b.activity[v] += b.varInc
	if b.activity[v] > activityRescaleLimit { // Rescale to avoid overflow
		for i := range b.activity {
			b.activity[i] *= 1 / activityRescaleLimit
		}
		b.varInc *= 1 / activityRescaleLimit
	}
	b.queue.raised(v)
}

// Decay makes all previous bumps weigh less relative to future ones.
func (b *ActivityBrancher) Decay() {
	b.varInc *= 1 / b.decay
}

// Release puts backtracked variables back into the queue and saves the
// polarity they had.
func (b *ActivityBrancher) Release(lits []Lit) {
	for _, lit := range lits {
		v := lit.Var()
		b.polarity[v] = lit.IsPositive()
		b.queue.push(v)
	}
}
