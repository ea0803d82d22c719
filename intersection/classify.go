package intersection

import (
	"github.com/katalvlaran/citypatrol/grid"
)

// Flag computes the openness flag of the cell at p.
// Sides on the grid edge count as closed.
func Flag(g *grid.Grid, p grid.Point) uint8 {
	var flag uint8
	if g.IsRoad(grid.Point{X: p.X - 1, Y: p.Y}) {
		flag |= OpenLeft
	}
	if g.IsRoad(grid.Point{X: p.X + 1, Y: p.Y}) {
		flag |= OpenRight
	}
	if g.IsRoad(grid.Point{X: p.X, Y: p.Y - 1}) {
		flag |= OpenUp
	}
	if g.IsRoad(grid.Point{X: p.X, Y: p.Y + 1}) {
		flag |= OpenDown
	}

	return flag
}

// Classify maps an openness flag to a Kind. ok is false for flags that do
// not denote an intersection; it panics for values outside 0..15.
func Classify(flag uint8) (kind Kind, ok bool) {
	switch flag {
	case OpenLeft | OpenUp, OpenLeft | OpenDown, OpenRight | OpenUp, OpenRight | OpenDown:
		return Corner, true
	case OpenLeft | OpenRight | OpenUp, OpenLeft | OpenRight | OpenDown:
		return TJunctionMissingVertical, true
	case OpenUp | OpenDown | OpenLeft, OpenUp | OpenDown | OpenRight:
		return TJunctionMissingHorizontal, true
	case OpenLeft | OpenRight | OpenUp | OpenDown:
		return FullCross, true
	case 0, OpenLeft, OpenRight, OpenUp, OpenDown, OpenLeft | OpenRight, OpenUp | OpenDown:
		return None, false
	}
	panic(ErrBadFlag)
}
