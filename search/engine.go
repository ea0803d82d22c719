package search

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/citypatrol/dijkstra"
	"github.com/katalvlaran/citypatrol/grid"
	"github.com/katalvlaran/citypatrol/intersection"
	"github.com/katalvlaran/citypatrol/watch"
)

// engine holds all search data. The watch state and path are owned by the
// single in-flight call chain and restored before every return.
type engine struct {
	net    *intersection.Network
	oracle *dijkstra.Oracle
	watch  *watch.State
	opts   Options
	log    logrus.FieldLogger

	path     []int // current route, root first
	bestPath []int // incumbent
	stats    Stats

	err error // first invariant breach; unwinds the recursion
}

func newEngine(net *intersection.Network, oracle *dijkstra.Oracle, st *watch.State, opts Options) *engine {
	return &engine{
		net:    net,
		oracle: oracle,
		watch:  st,
		opts:   opts,
		log:    opts.Logger,
		path:   make([]int, 0, net.Len()),
	}
}

// root runs the search from one entry of the start view.
func (e *engine) root(edge intersection.Edge, best int64) int64 {
	e.path = append(e.path[:0], edge.To)

	return min(best, e.dfs(edge.To, edge.Cost, best))
}

// dfs explores from u with acc already spent; best is the incumbent bound.
// It returns the tightened bound, or the candidate total at a terminal.
func (e *engine) dfs(u int, acc, best int64) int64 {
	if e.err != nil {
		return best
	}
	e.stats.Nodes++

	if e.watch.AllWatched() {
		total := acc + e.oracle.Distance(u)
		if total < best {
			e.record(total)
		}

		return total
	}

	for _, axis := range intersection.Axes {
		if to, cost, ok := e.candidate(u, axis, acc, best); ok {
			return e.straight(u, to, axis, acc+cost, best)
		}
	}

	return e.rescue(u, acc, best)
}

// candidate returns the first entry of u's view along axis that is not
// watched and whose direct return could still beat best.
func (e *engine) candidate(u int, axis intersection.Axis, acc, best int64) (int, int64, bool) {
	for _, ed := range e.net.Views[u].Along(axis) {
		if e.watch.Watched(ed.To) {
			continue
		}
		if acc+ed.Cost+e.oracle.Distance(ed.To) >= best {
			continue
		}

		return ed.To, ed.Cost, true
	}

	return 0, 0, false
}

// straight moves from u to `to` along axis and recurses.
func (e *engine) straight(u, to int, axis intersection.Axis, acc, best int64) int64 {
	j := e.watch.Begin()
	defer j.Rollback()
	e.creditSegment(j, u, to, axis)

	return e.descend(to, acc, best, to)
}

// creditSegment records the observations of a straight run from u to `to`:
// the target on both axes, and every intersection of u's view strictly
// between the two on the perpendicular axis only.
func (e *engine) creditSegment(j *watch.Journal, u, to int, axis intersection.Axis) {
	j.CreditBoth(to)
	from, dst := e.net.Points[u], e.net.Points[to]
	cross := axis.Perpendicular()
	for _, ed := range e.net.Views[u].Along(axis) {
		if between(e.net.Points[ed.To], from, dst, axis) {
			j.Credit(ed.To, cross)
		}
	}
}

// rescue jumps from a dead end to the nearest unwatched intersection.
func (e *engine) rescue(u int, acc, best int64) int64 {
	cost, hops, err := Rescue(e.net, e.watch, u)
	if err != nil {
		e.err = err

		return best
	}
	end := hops[len(hops)-1]
	if acc+cost+e.oracle.Distance(end) >= best {
		return best
	}
	e.stats.Rescues++
	e.log.WithFields(logrus.Fields{
		"from": e.net.Points[u], "to": e.net.Points[end], "cost": cost, "hops": len(hops) - 1,
	}).Debug("rescue")

	j := e.watch.Begin()
	defer j.Rollback()
	j.CreditBoth(end)

	return e.descend(end, acc+cost, best, hops[1:]...)
}

// descend appends hops to the path, recurses from at and restores the path.
func (e *engine) descend(at int, acc, best int64, hops ...int) int64 {
	mark := len(e.path)
	e.path = append(e.path, hops...)
	defer func() { e.path = e.path[:mark] }()

	return min(best, e.dfs(at, acc, best))
}

// record commits the current path as the new incumbent.
func (e *engine) record(total int64) {
	e.bestPath = append(e.bestPath[:0], e.path...)
	e.stats.Improvements++
	e.log.WithFields(logrus.Fields{"cost": total, "depth": len(e.path)}).Debug("improved tour")
	if e.opts.OnImprove != nil {
		e.opts.OnImprove(total, slices.Clone(e.path))
	}
}

// between reports whether p lies strictly between a and b along axis.
func between(p, a, b grid.Point, axis intersection.Axis) bool {
	if axis == intersection.Horizontal {
		return min(a.X, b.X) < p.X && p.X < max(a.X, b.X)
	}

	return min(a.Y, b.Y) < p.Y && p.Y < max(a.Y, b.Y)
}
