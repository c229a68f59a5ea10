package solver

import "shiritori/model"

type state struct {
	bits uint64
	char int
}

type item struct {
	cost model.Cost
	state
}

// queue is a min-heap of items ordered by cost, then bits, then char.
type queue []item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.cost != b.cost {
		return a.cost.Less(b.cost)
	}
	if a.bits != b.bits {
		return a.bits < b.bits
	}
	return a.char < b.char
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
