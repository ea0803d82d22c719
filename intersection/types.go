package intersection

import (
	"github.com/katalvlaran/citypatrol/grid"
)

// Openness flag bits.
const (
	OpenLeft  = 1
	OpenRight = 2
	OpenUp    = 4
	OpenDown  = 8
)

// Kind is the observation class of an intersection.
type Kind uint8

const (
	// None marks a road cell that is not an intersection.
	None Kind = iota
	// Corner has two perpendicular open sides.
	Corner
	// TJunctionMissingVertical is open left, right and on one vertical side.
	TJunctionMissingVertical
	// TJunctionMissingHorizontal is open up, down and on one horizontal side.
	TJunctionMissingHorizontal
	// FullCross is open on all four sides.
	FullCross
)

var kindNames = [...]string{"None", "Corner", "TJunctionMissingVertical", "TJunctionMissingHorizontal", "FullCross"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(?)"
}

// Axis selects the horizontal or vertical component of a view or counter.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Axes lists both axes in expansion order.
var Axes = [2]Axis{Horizontal, Vertical}

// Perpendicular returns the other axis.
func (a Axis) Perpendicular() Axis {
	if a == Horizontal {
		return Vertical
	}

	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}

	return "vertical"
}

// Edge is one view entry: the index of another intersection and the
// cumulative entry cost of the straight road leading to it.
type Edge struct {
	To   int
	Cost int64
}

// View holds the intersections visible along each axis, in scan order
// (right then left, down then up).
type View struct {
	Horizontal []Edge
	Vertical   []Edge
}

// Along returns the edge list for axis a.
func (v View) Along(a Axis) []Edge {
	if a == Horizontal {
		return v.Horizontal
	}

	return v.Vertical
}

// Network is the immutable view graph over the intersections of a grid.
// Points, Kinds and Views are indexed by intersection index, assigned in
// row-major scan order.
type Network struct {
	Points []grid.Point
	Kinds  []Kind
	Views  []View

	g      *grid.Grid
	lookup []int // row-major cell index → intersection index, -1 if none
}
