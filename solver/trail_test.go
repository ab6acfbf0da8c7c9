package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrailValueUnassigned(t *testing.T) {
	tr := NewTrail()
	require.False(t, tr.Value(IntToLit(1)), "unassigned variable must evaluate to false")
	require.False(t, tr.Value(IntToLit(-1)), "negated literal of unassigned variable must evaluate to false")
	require.False(t, tr.Assigned(IntToVar(1)))
}

func TestTrailAssignValue(t *testing.T) {
	tr := NewTrail()
	tr.Assign(IntToVar(1), true, nil)
	tr.Assign(IntToVar(2), false, nil)
	require.True(t, tr.Value(IntToLit(1)))
	require.False(t, tr.Value(IntToLit(-1)))
	require.False(t, tr.Value(IntToLit(2)))
	require.True(t, tr.Value(IntToLit(-2)))
	require.Equal(t, 2, tr.Size())
}

func TestTrailLevels(t *testing.T) {
	tr := NewTrail()
	tr.Assign(IntToVar(1), true, nil)
	tr.NewLevel()
	reason := NewClause([]Lit{IntToLit(2)})
	tr.Assign(IntToVar(2), true, reason)

	a, ok := tr.Assignment(IntToVar(1))
	require.True(t, ok)
	require.Equal(t, 0, a.Level)
	require.Nil(t, a.Reason)

	a, ok = tr.Assignment(IntToVar(2))
	require.True(t, ok)
	require.Equal(t, 1, a.Level)
	require.Same(t, reason, a.Reason)
}

func TestTrailUnassign(t *testing.T) {
	tr := NewTrail()
	tr.Assign(IntToVar(1), true, nil)
	tr.Unassign(IntToVar(1))
	require.False(t, tr.Assigned(IntToVar(1)))
	require.Equal(t, 0, tr.Size())
	// Removing an absent entry is a no-op.
	tr.Unassign(IntToVar(1))
	require.Equal(t, 0, tr.Size())
}

func TestTrailOverwriteLastWriteWins(t *testing.T) {
	tr := NewTrail()
	tr.Assign(IntToVar(1), true, nil)
	tr.Assign(IntToVar(1), false, nil)
	require.Equal(t, 1, tr.Size())
	require.True(t, tr.Value(IntToLit(-1)))
	removed := tr.Backtrack(0)
	require.Empty(t, removed) // Both writes happened at level 0
	require.Equal(t, 1, tr.Size())
}

func TestTrailBacktrack(t *testing.T) {
	tr := NewTrail()
	reason := NewClause([]Lit{IntToLit(2), IntToLit(3)})
	tr.Assign(IntToVar(1), true, nil)
	tr.NewLevel()
	tr.Assign(IntToVar(2), false, nil)
	tr.Assign(IntToVar(3), true, reason)
	tr.NewLevel()
	tr.Assign(IntToVar(4), true, nil)
	tr.NewLevel()
	tr.Assign(IntToVar(5), false, nil)

	// Snapshot of what must survive a backtrack to level 1.
	kept := map[Var]Assignment{}
	for _, v := range []Var{IntToVar(1), IntToVar(2), IntToVar(3)} {
		a, ok := tr.Assignment(v)
		require.True(t, ok)
		kept[v] = a
	}

	removed := tr.Backtrack(1)
	require.Len(t, removed, 2)
	require.Equal(t, IntToLit(-5), removed[0], "most recent literal first")
	require.Equal(t, IntToLit(4), removed[1])
	require.Equal(t, 1, tr.Level())
	require.Equal(t, 3, tr.Size())
	require.False(t, tr.Assigned(IntToVar(4)))
	require.False(t, tr.Assigned(IntToVar(5)))
	for v, before := range kept {
		after, ok := tr.Assignment(v)
		require.True(t, ok)
		require.Equal(t, before, after, "entries at or below the target level must be unchanged")
	}
}

func TestTrailBacktrackToCurrentLevel(t *testing.T) {
	tr := NewTrail()
	tr.NewLevel()
	tr.Assign(IntToVar(1), true, nil)
	removed := tr.Backtrack(1)
	require.Empty(t, removed)
	require.Equal(t, 1, tr.Size())
}

func TestTrailSatisfies(t *testing.T) {
	f := ParseSlice([][]int{{1, 2}, {-1, 3}})
	tr := NewTrail()
	require.False(t, tr.Satisfies(f))
	tr.Assign(IntToVar(1), true, nil)
	require.False(t, tr.Satisfies(f))
	tr.Assign(IntToVar(3), true, nil)
	require.True(t, tr.Satisfies(f), "a partial assignment may already satisfy every clause")
}
