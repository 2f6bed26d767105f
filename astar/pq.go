package astar

import "github.com/katalvlaran/gridpath/gridgraph"

type openItem struct {
	cell  gridgraph.Cell
	g     int
	f     int
	seq   int // insertion order, last tie-breaker
	index int // position in the heap, kept current by Swap/Push
}

// openPQ orders the open set by f, then by larger g (deeper first), then by
// insertion order.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

func (pq openPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openPQ) Push(x any) {
	item := x.(*openItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
