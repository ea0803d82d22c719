package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Parse reads a city description from r and returns the grid and the
// start cell. Tokens are whitespace separated; see the package doc for
// the layout. The start is given as "row col" and mapped to
// Point{X: col, Y: row}.
func Parse(r io.Reader) (*Grid, Point, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("%w: reading %s: %v", ErrMalformedInput, what, err)
			}

			return "", fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
		}

		return sc.Text(), nil
	}
	nextInt := func(what string) (int, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedInput, what, tok)
		}

		return v, nil
	}

	n, err := nextInt("grid size")
	if err != nil {
		return nil, Point{}, err
	}
	if n <= 0 {
		return nil, Point{}, ErrEmptyGrid
	}
	row, err := nextInt("start row")
	if err != nil {
		return nil, Point{}, err
	}
	col, err := nextInt("start column")
	if err != nil {
		return nil, Point{}, err
	}

	lines := make([]string, n)
	for y := 0; y < n; y++ {
		if lines[y], err = next(fmt.Sprintf("row %d", y)); err != nil {
			return nil, Point{}, err
		}
	}
	cells, err := decodeRows(lines)
	if err != nil {
		return nil, Point{}, err
	}
	g, err := New(cells)
	if err != nil {
		return nil, Point{}, err
	}

	start := Point{X: col, Y: row}
	if !g.InBounds(start) {
		return nil, Point{}, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start, n, n)
	}
	if g.At(start).IsBlock() {
		return nil, Point{}, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	return g, start, nil
}

// decodeRows converts textual rows into cells.
func decodeRows(rows []string) ([][]Cell, error) {
	cells := make([][]Cell, len(rows))
	for y, line := range rows {
		cells[y] = make([]Cell, len(line))
		for x := 0; x < len(line); x++ {
			switch b := line[x]; {
			case b == '#':
				cells[y][x] = Block
			case b >= '0' && b <= '9':
				cells[y][x] = Cell(b - '0')
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, b, x, y)
			}
		}
	}

	return cells, nil
}
