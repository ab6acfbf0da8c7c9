package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueOrder(t *testing.T) {
	activity := []float64{1.0, 3.0, 2.0, 0.5}
	q := newActivityQueue(activity)
	for v := Var(0); v < 4; v++ {
		q.push(v)
	}
	var order []Var
	for !q.empty() {
		order = append(order, q.pop())
	}
	require.Equal(t, []Var{1, 2, 0, 3}, order, "pop must follow decreasing activity")
}

func TestQueueRaised(t *testing.T) {
	activity := []float64{1.0, 2.0, 3.0}
	q := newActivityQueue(activity)
	for v := Var(0); v < 3; v++ {
		q.push(v)
	}
	activity[0] = 10.0
	q.raised(0)
	require.Equal(t, Var(0), q.pop())
}

func TestQueuePushIdempotent(t *testing.T) {
	q := newActivityQueue([]float64{1.0, 2.0})
	q.push(0)
	q.push(0)
	q.push(1)
	require.True(t, q.contains(0))
	require.Equal(t, Var(1), q.pop())
	require.Equal(t, Var(0), q.pop())
	require.False(t, q.contains(0))
	require.True(t, q.empty(), "duplicate pushes must not duplicate entries")
}

func TestQueueRebuild(t *testing.T) {
	activity := []float64{5.0, 1.0, 3.0, 4.0}
	q := newActivityQueue(activity)
	q.push(0)
	q.push(1)
	q.rebuild([]Var{1, 2, 3})
	require.False(t, q.contains(0))
	require.Equal(t, Var(3), q.pop())
	require.Equal(t, Var(2), q.pop())
	require.Equal(t, Var(1), q.pop())
}
