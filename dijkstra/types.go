package dijkstra

import "github.com/katalvlaran/gridpath/gridgraph"

// pqItem is one frontier entry: cumulative cost, cell, and the path that led
// to it (cell excluded).
type pqItem struct {
	cost int
	cell gridgraph.Cell
	path []gridgraph.Cell
}

// less orders entries by cost, then cell (x, then y), then path
// lexicographically. The full order makes pops deterministic whatever the
// heap's internal layout.
func (a pqItem) less(b pqItem) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.cell != b.cell {
		return a.cell.Less(b.cell)
	}
	return comparePaths(a.path, b.path) < 0
}

// comparePaths compares two cell sequences element by element; a proper
// prefix sorts first.
func comparePaths(a, b []gridgraph.Cell) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		if a[i].Less(b[i]) {
			return -1
		}
		return 1
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// costPQ is a min-heap of pqItem. Improvements are pushed as new entries;
// stale ones are skipped when popped (lazy decrease-key).
type costPQ []pqItem

// Len returns the number of items in the heap.
func (pq costPQ) Len() int { return len(pq) }

// Less defines the comparison: lower cost → higher priority.
func (pq costPQ) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps two elements in the heap.
func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element; x must be a pqItem.
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last element.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = pqItem{}
	*pq = old[:n-1]

	return item
}
