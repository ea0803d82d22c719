package grid

import "fmt"

// Cell is a single grid cell: Block, or a road with a travel cost in 0..9.
type Cell int8

// Block marks an impassable cell.
const Block Cell = -1

// MaxCost is the largest cost a road cell may carry.
const MaxCost = 9

// Road returns the road cell with the given cost.
// It panics if cost is outside 0..MaxCost.
func Road(cost int) Cell {
	if cost < 0 || cost > MaxCost {
		panic(fmt.Sprintf("grid: road cost %d out of range", cost))
	}

	return Cell(cost)
}

// IsBlock reports whether c is impassable.
func (c Cell) IsBlock() bool { return c == Block }

// Cost returns the entry cost of a road cell, 0 for a block.
func (c Cell) Cost() int64 {
	if c.IsBlock() {
		return 0
	}

	return int64(c)
}

// String renders the cell the way it appears in the input.
func (c Cell) String() string {
	if c.IsBlock() {
		return "#"
	}

	return string(rune('0' + c))
}

// Point addresses a cell: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is a unit move. Its value is the byte emitted in route strings.
type Direction byte

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Directions lists the four moves in relaxation order: left, right, up, down.
var Directions = [4]Direction{Left, Right, Up, Down}

// Delta returns the (dx, dy) offset of d; ok is false for an unknown byte.
func (d Direction) Delta() (dx, dy int, ok bool) {
	switch d {
	case Up:
		return 0, -1, true
	case Down:
		return 0, 1, true
	case Left:
		return -1, 0, true
	case Right:
		return 1, 0, true
	}

	return 0, 0, false
}

// String returns the single-letter move.
func (d Direction) String() string { return string(rune(d)) }

// Reverse returns the opposite move.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}

	return d
}

// Grid is a square city map. It is immutable once built.
// Size is the side length; cells[y][x] holds the parsed cell.
type Grid struct {
	Size  int
	cells [][]Cell
}
