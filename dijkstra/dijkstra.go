package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/citypatrol/grid"
)

// FromStart runs Dijkstra from start over g and records distance and
// return path for each of targets (in the order given).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be an in-bounds road cell (ErrBadStart).
//  3. every target must be reachable (ErrUnreachable).
//
// Complexity: O(n² log n) time, O(n²) space.
func FromStart(g *grid.Grid, start grid.Point, targets []grid.Point) (*Oracle, error) {
	r, err := run(g, start)
	if err != nil {
		return nil, err
	}

	o := &Oracle{
		dist: make([]int64, len(targets)),
		back: make([]string, len(targets)),
	}
	for i, p := range targets {
		if !g.InBounds(p) || r.dist[g.Index(p)] == Unreachable {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, p)
		}
		o.dist[i] = r.dist[g.Index(p)]
		o.back[i] = r.returnPath(p)
	}

	return o, nil
}

// Distances runs the same search and returns the distance of every cell in
// row-major order, Unreachable for cells never settled.
func Distances(g *grid.Grid, start grid.Point) ([]int64, error) {
	r, err := run(g, start)
	if err != nil {
		return nil, err
	}

	return r.dist, nil
}

func run(g *grid.Grid, start grid.Point) (*runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.IsRoad(start) {
		return nil, fmt.Errorf("%w: %v", ErrBadStart, start)
	}
	r := newRunner(g, start)
	r.process()

	return r, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *grid.Grid
	start   grid.Point
	dist    []int64          // cell index → best distance from start
	via     []grid.Direction // cell index → move that entered the cell
	visited []bool           // cell index → distance finalised
	pq      nodePQ
	seq     int
}

func newRunner(g *grid.Grid, start grid.Point) *runner {
	cells := g.Size * g.Size
	r := &runner{
		g:       g,
		start:   start,
		dist:    make([]int64, cells),
		via:     make([]grid.Direction, cells),
		visited: make([]bool, cells),
		pq:      make(nodePQ, 0, cells),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[g.Index(start)] = 0
	heap.Init(&r.pq)
	r.push(g.Index(start), 0)

	return r
}

func (r *runner) push(idx int, d int64) {
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: d, seq: r.seq})
	r.seq++
}

// process pops cells in increasing distance and relaxes their neighbours
// until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue // stale entry
		}
		r.visited[item.idx] = true
		r.relax(r.g.Coordinate(item.idx), item.dist)
	}
}

// relax tries to improve every road neighbour of u, whose distance d is final.
func (r *runner) relax(u grid.Point, d int64) {
	for _, dir := range grid.Directions {
		v := r.g.Step(u, dir)
		if !r.g.IsRoad(v) {
			continue
		}
		vi := r.g.Index(v)
		nd := d + r.g.At(v).Cost()
		// Strictly better only: the first discovered path keeps ties.
		if nd >= r.dist[vi] {
			continue
		}
		r.dist[vi] = nd
		r.via[vi] = dir
		r.push(vi, nd)
	}
}

// returnPath walks the predecessor chain from p to the start and emits the
// reversed moves, which read forward from p.
func (r *runner) returnPath(p grid.Point) string {
	var out []byte
	for p != r.start {
		back := r.via[r.g.Index(p)].Reverse()
		out = append(out, byte(back))
		p = r.g.Step(p, back)
	}

	return string(out)
}

// nodeItem is a cell and its tentative distance; seq orders equal distances
// by insertion.
type nodeItem struct {
	idx  int
	dist int64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
