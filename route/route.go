package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/citypatrol/grid"
)

var (
	// ErrNotAligned indicates consecutive stops sharing neither row nor column.
	ErrNotAligned = errors.New("route: consecutive stops are not aligned")
	// ErrBadMove indicates a byte outside {U, D, L, R}.
	ErrBadMove = errors.New("route: unknown move")
	// ErrOutOfBounds indicates a move leaving the grid.
	ErrOutOfBounds = errors.New("route: move leaves the grid")
	// ErrBlocked indicates a move into a block.
	ErrBlocked = errors.New("route: move enters a block")
)

// Moves serialises the tour start → stops[0] → … → stops[k-1] and appends
// ret, the moves from the last stop back to start.
func Moves(start grid.Point, stops []grid.Point, ret string) (string, error) {
	var sb strings.Builder
	cur := start
	for i, p := range stops {
		if err := leg(&sb, cur, p); err != nil {
			return "", fmt.Errorf("%w: stop %d %v → %v", err, i, cur, p)
		}
		cur = p
	}
	sb.WriteString(ret)

	return sb.String(), nil
}

func leg(sb *strings.Builder, from, to grid.Point) error {
	switch {
	case from.X == to.X && to.Y < from.Y:
		sb.WriteString(strings.Repeat(grid.Up.String(), from.Y-to.Y))
	case from.X == to.X:
		sb.WriteString(strings.Repeat(grid.Down.String(), to.Y-from.Y))
	case from.Y == to.Y && to.X < from.X:
		sb.WriteString(strings.Repeat(grid.Left.String(), from.X-to.X))
	case from.Y == to.Y:
		sb.WriteString(strings.Repeat(grid.Right.String(), to.X-from.X))
	default:
		return ErrNotAligned
	}

	return nil
}

// Trace is the outcome of replaying a move string.
type Trace struct {
	// Cells lists every cell occupied, starting with the start cell.
	Cells []grid.Point
	// Cost sums the entry cost of every move.
	Cost int64
}

// End returns the final cell.
func (t Trace) End() grid.Point { return t.Cells[len(t.Cells)-1] }

// Replay walks moves over g from start.
func Replay(g *grid.Grid, start grid.Point, moves string) (Trace, error) {
	tr := Trace{Cells: make([]grid.Point, 1, len(moves)+1)}
	tr.Cells[0] = start
	cur := start
	for i := 0; i < len(moves); i++ {
		d := grid.Direction(moves[i])
		if _, _, ok := d.Delta(); !ok {
			return Trace{}, fmt.Errorf("%w: %q at %d", ErrBadMove, moves[i], i)
		}
		next := g.Step(cur, d)
		if !g.InBounds(next) {
			return Trace{}, fmt.Errorf("%w: %v at move %d", ErrOutOfBounds, next, i)
		}
		if g.At(next).IsBlock() {
			return Trace{}, fmt.Errorf("%w: %v at move %d", ErrBlocked, next, i)
		}
		tr.Cost += g.At(next).Cost()
		tr.Cells = append(tr.Cells, next)
		cur = next
	}

	return tr, nil
}
