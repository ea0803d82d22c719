package search

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/citypatrol/dijkstra"
	"github.com/katalvlaran/citypatrol/grid"
	"github.com/katalvlaran/citypatrol/intersection"
	"github.com/katalvlaran/citypatrol/watch"
)

// Search computes the minimal patrol tour from start.
//
// The intersections visible from start are credited once along the axis
// they are seen on. Then every entry of the start view is tried as a root,
// horizontal entries first; the bound carries over between roots.
//
// A network without intersections yields an empty tour of cost 0.
//
// Errors:
//   - ErrNilInput, ErrOracleMismatch for malformed arguments.
//   - ErrNoTour if no root produced a tour.
//   - ErrRescueExhausted on an internal invariant breach.
func Search(net *intersection.Network, oracle *dijkstra.Oracle, start grid.Point, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if net == nil || oracle == nil {
		return Result{}, ErrNilInput
	}
	if oracle.Len() != net.Len() {
		return Result{}, ErrOracleMismatch
	}
	if net.Len() == 0 {
		return Result{Path: []int{}}, nil
	}

	st, err := watch.New(net.Kinds)
	if err != nil {
		return Result{}, err
	}
	view := net.ViewFrom(start)
	st.Observe(view)

	e := newEngine(net, oracle, st, cfg)
	best := Infinity
	for _, axis := range intersection.Axes {
		for _, edge := range view.Along(axis) {
			best = e.root(edge, best)
			if e.err != nil {
				return Result{}, e.err
			}
		}
	}
	if e.bestPath == nil {
		return Result{}, ErrNoTour
	}

	cfg.Logger.WithFields(logrus.Fields{
		"cost":    best,
		"hops":    len(e.bestPath),
		"nodes":   e.stats.Nodes,
		"rescues": e.stats.Rescues,
	}).Info("search finished")

	return Result{Path: slices.Clone(e.bestPath), Cost: best, Stats: e.stats}, nil
}
