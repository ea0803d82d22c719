package watch

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/citypatrol/intersection"
)

// State is the per-intersection observation record. It keeps a running
// count of unsatisfied intersections so AllWatched is O(1).
// A State is not safe for concurrent use.
type State struct {
	counters  []Counter
	unwatched int
}

// New creates a State with one zero counter per kind.
func New(kinds []intersection.Kind) (*State, error) {
	s := &State{counters: make([]Counter, len(kinds))}
	for i, k := range kinds {
		c, err := NewCounter(k)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d has kind %v", err, i, k)
		}
		s.counters[i] = c
	}
	s.unwatched = len(kinds)

	return s, nil
}

// Len returns the number of counters.
func (s *State) Len() int { return len(s.counters) }

// Counter returns the counter of intersection i.
func (s *State) Counter(i int) Counter { return s.counters[i] }

// Watched reports whether intersection i is satisfied.
func (s *State) Watched(i int) bool { return s.counters[i].Watched() }

// AllWatched reports whether every intersection is satisfied.
func (s *State) AllWatched() bool { return s.unwatched == 0 }

// Unwatched returns the number of unsatisfied intersections.
func (s *State) Unwatched() int { return s.unwatched }

// Inc credits one observation of i along axis a.
func (s *State) Inc(i int, a intersection.Axis) { s.apply(i, a, 1) }

// Dec withdraws one observation of i along axis a.
// It panics with ErrUnderflow if the counter is already zero.
func (s *State) Dec(i int, a intersection.Axis) { s.apply(i, a, -1) }

func (s *State) apply(i int, a intersection.Axis, d int) {
	was := s.counters[i].Watched()
	s.counters[i] = s.counters[i].add(a, d)
	switch now := s.counters[i].Watched(); {
	case now && !was:
		s.unwatched--
	case was && !now:
		s.unwatched++
	}
}

// Observe credits every intersection of v along the axis it is seen on.
// It is used once, for the view from the start cell.
func (s *State) Observe(v intersection.View) {
	for _, e := range v.Horizontal {
		s.Inc(e.To, intersection.Horizontal)
	}
	for _, e := range v.Vertical {
		s.Inc(e.To, intersection.Vertical)
	}
}

// Snapshot returns a copy of all counters. Counters are comparable values,
// so two snapshots compare with slices.Equal.
func (s *State) Snapshot() []Counter { return slices.Clone(s.counters) }

// Begin opens a Journal on s.
func (s *State) Begin() *Journal { return &Journal{s: s} }
