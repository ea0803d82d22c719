package search

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/citypatrol/intersection"
	"github.com/katalvlaran/citypatrol/watch"
)

// Rescue runs a uniform-cost search over the view graph from intersection
// from and stops at the first popped intersection that is not watched.
// It returns the distance to it and the full hop sequence, starting with
// from itself. When from is unwatched the answer is (0, [from]).
//
// Equal distances pop in insertion order; horizontal neighbours are pushed
// before vertical ones.
func Rescue(net *intersection.Network, st *watch.State, from int) (int64, []int, error) {
	best := map[int]int64{from: 0}
	pq := rescuePQ{}
	seq := 0
	heap.Push(&pq, &rescueItem{dist: 0, seq: seq, path: []int{from}})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*rescueItem)
		p := item.path[len(item.path)-1]
		if !st.Watched(p) {
			return item.dist, item.path, nil
		}
		if item.dist > best[p] {
			continue // a cheaper entry for p was already expanded
		}
		for _, axis := range intersection.Axes {
			for _, e := range net.Views[p].Along(axis) {
				d := item.dist + e.Cost
				if b, ok := best[e.To]; ok && d >= b {
					continue
				}
				best[e.To] = d
				seq++
				path := append(slices.Clip(item.path), e.To)
				heap.Push(&pq, &rescueItem{dist: d, seq: seq, path: path})
			}
		}
	}

	return 0, nil, fmt.Errorf("%w: from intersection %d", ErrRescueExhausted, from)
}

type rescueItem struct {
	dist int64
	seq  int
	path []int
}

// rescuePQ is a min-heap of *rescueItem ordered by (dist, seq).
type rescuePQ []*rescueItem

func (pq rescuePQ) Len() int { return len(pq) }

func (pq rescuePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq rescuePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *rescuePQ) Push(x interface{}) { *pq = append(*pq, x.(*rescueItem)) }

func (pq *rescuePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
