package grid

// New constructs a Grid from a non-empty square matrix of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows is empty, ErrNonSquare if any row length
// differs from len(rows).
// Complexity: O(n²) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]Cell, n)
	for y := 0; y < n; y++ {
		cells[y] = make([]Cell, n)
		copy(cells[y], rows[y])
	}

	return &Grid{Size: n, cells: cells}, nil
}

// MustParseRows builds a Grid from textual rows ('#' or digits).
// It panics on malformed rows; intended for tests and examples.
func MustParseRows(rows ...string) *Grid {
	cells, err := decodeRows(rows)
	if err != nil {
		panic(err)
	}
	g, err := New(cells)
	if err != nil {
		panic(err)
	}

	return g
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Point) Cell { return g.cells[p.Y][p.X] }

// IsRoad reports whether p is in bounds and not a block.
func (g *Grid) IsRoad(p Point) bool {
	return g.InBounds(p) && !g.At(p).IsBlock()
}

// Step returns the neighbour of p in direction d. The result may lie
// outside the grid; callers check with InBounds or IsRoad.
func (g *Grid) Step(p Point, d Direction) Point {
	dx, dy, _ := d.Delta()

	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Index maps p to a row-major index: Y*Size + X.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Size + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Size, Y: idx / g.Size}
}

// Rows renders the grid back into its textual rows.
func (g *Grid) Rows() []string {
	out := make([]string, g.Size)
	buf := make([]byte, g.Size)
	for y, row := range g.cells {
		for x, c := range row {
			buf[x] = c.String()[0]
		}
		out[y] = string(buf)
	}

	return out
}
