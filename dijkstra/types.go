package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for cells the search never settles.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by FromStart.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadStart indicates that the start cell is out of bounds or blocked.
	ErrBadStart = errors.New("dijkstra: start must be an in-bounds road cell")

	// ErrUnreachable indicates a target that no road path connects to the start.
	ErrUnreachable = errors.New("dijkstra: target unreachable from start")
)

// Oracle holds, for every target, its minimal distance from the start and
// the moves that lead from the target back to the start.
// It is immutable once built.
type Oracle struct {
	dist []int64
	back []string
}

// Len returns the number of targets.
func (o *Oracle) Len() int { return len(o.dist) }

// Distance returns the minimal cost from the start to target i.
func (o *Oracle) Distance(i int) int64 { return o.dist[i] }

// ReturnPath returns the moves, in forward order, from target i to the start.
func (o *Oracle) ReturnPath(i int) string { return o.back[i] }
