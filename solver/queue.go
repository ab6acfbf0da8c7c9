/******************************************************************************************[Heap.h]
Copyright (c) 2003-2006, Niklas Een, Niklas Sorensson
Copyright (c) 2007-2010, Niklas Sorensson

Permission is hereby granted, free of charge, to any person obtaining a copy of this software and
associated documentation files (the "Software"), to deal in the Software without restriction,
including without limitation the rights to use, copy, modify, merge, publish, distribute,
sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all copies or
substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT
NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT
OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
**************************************************************************************************/

package solver

// A max-heap of variables ordered by activity, with support for increase-key.
// Strongly inspired from Minisat's mtl/Heap.h.

type activityQueue struct {
	activity []float64 // Activity of each variable; owned by the brancher, not a copy
	content  []Var
	indices  []int // Position of each var in content; -1 means absence
}

func newActivityQueue(activity []float64) *activityQueue {
	q := &activityQueue{
		activity: activity,
		indices:  make([]int, len(activity)),
	}
	for i := range q.indices {
		q.indices[i] = -1
	}
	return q
}

func (q *activityQueue) gt(v, w Var) bool {
	return q.activity[v] > q.activity[w]
}

func heapLeft(i int) int   { return i*2 + 1 }
func heapRight(i int) int  { return (i + 1) * 2 }
func heapParent(i int) int { return (i - 1) >> 1 }

func (q *activityQueue) percolateUp(i int) {
	v := q.content[i]
	p := heapParent(i)
	for i != 0 && q.gt(v, q.content[p]) {
		q.content[i] = q.content[p]
		q.indices[q.content[p]] = i
		i = p
		p = heapParent(p)
	}
	q.content[i] = v
	q.indices[v] = i
}

func (q *activityQueue) percolateDown(i int) {
	v := q.content[i]
	for heapLeft(i) < len(q.content) {
		child := heapLeft(i)
		if r := heapRight(i); r < len(q.content) && q.gt(q.content[r], q.content[child]) {
			child = r
		}
		if !q.gt(q.content[child], v) {
			break
		}
		q.content[i] = q.content[child]
		q.indices[q.content[i]] = i
		i = child
	}
	q.content[i] = v
	q.indices[v] = i
}

func (q *activityQueue) empty() bool {
	return len(q.content) == 0
}

func (q *activityQueue) contains(v Var) bool {
	return q.indices[v] >= 0
}

// raised must be called after v's activity was increased, to restore heap order.
func (q *activityQueue) raised(v Var) {
	if q.contains(v) {
		q.percolateUp(q.indices[v])
	}
}

func (q *activityQueue) push(v Var) {
	if q.contains(v) {
		return
	}
	q.indices[v] = len(q.content)
	q.content = append(q.content, v)
	q.percolateUp(q.indices[v])
}

// pop removes and returns the variable with the highest activity.
func (q *activityQueue) pop() Var {
	v := q.content[0]
	q.content[0] = q.content[len(q.content)-1]
	q.indices[q.content[0]] = 0
	q.indices[v] = -1
	q.content = q.content[:len(q.content)-1]
	if len(q.content) > 1 {
		q.percolateDown(0)
	}
	return v
}

// rebuild resets the heap so that it contains exactly the given variables.
func (q *activityQueue) rebuild(vars []Var) {
	for _, v := range q.content {
		q.indices[v] = -1
	}
	q.content = q.content[:0]
	for i, v := range vars {
		q.indices[v] = i
		q.content = append(q.content, v)
	}
	for i := len(q.content)/2 - 1; i >= 0; i-- {
		q.percolateDown(i)
	}
}
