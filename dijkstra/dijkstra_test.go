// Package dijkstra_test checks the distance oracle against a brute-force
// relaxation and pins return paths on a small ring.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypatrol/dijkstra"
	"github.com/katalvlaran/citypatrol/grid"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// randomGrid builds an n×n grid with roughly one block in four cells.
func randomGrid(rng *rand.Rand, n int) *grid.Grid {
	rows := make([][]grid.Cell, n)
	for y := range rows {
		rows[y] = make([]grid.Cell, n)
		for x := range rows[y] {
			if rng.Intn(4) == 0 {
				rows[y][x] = grid.Block
			} else {
				rows[y][x] = grid.Road(rng.Intn(10))
			}
		}
	}
	g, err := grid.New(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// referenceDistances is a Bellman-Ford style fixed point over all cells.
func referenceDistances(g *grid.Grid, start grid.Point) []int64 {
	dist := make([]int64, g.Size*g.Size)
	for i := range dist {
		dist[i] = dijkstra.Unreachable
	}
	dist[g.Index(start)] = 0
	for changed := true; changed; {
		changed = false
		for i := range dist {
			if dist[i] == dijkstra.Unreachable {
				continue
			}
			u := g.Coordinate(i)
			for _, d := range grid.Directions {
				v := g.Step(u, d)
				if !g.IsRoad(v) {
					continue
				}
				if nd := dist[i] + g.At(v).Cost(); nd < dist[g.Index(v)] {
					dist[g.Index(v)] = nd
					changed = true
				}
			}
		}
	}

	return dist
}

// walkBack replays moves from p and returns the end cell plus the cost the
// forward trip (end → p) pays on entry.
func walkBack(t *testing.T, g *grid.Grid, p grid.Point, moves string) (grid.Point, int64) {
	t.Helper()
	var cost int64
	for _, m := range []byte(moves) {
		require.True(t, g.IsRoad(p), "walked onto %v", p)
		cost += g.At(p).Cost()
		p = g.Step(p, grid.Direction(m))
	}
	require.True(t, g.IsRoad(p))

	return p, cost
}

// ------------------------------------------------------------------------
// Validation
// ------------------------------------------------------------------------

func TestFromStart_Errors(t *testing.T) {
	g := grid.MustParseRows(
		"1#1",
		"1#1",
		"1#1",
	)
	_, err := dijkstra.FromStart(nil, grid.Point{}, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	_, err = dijkstra.FromStart(g, grid.Point{X: 1, Y: 0}, nil)
	assert.ErrorIs(t, err, dijkstra.ErrBadStart)

	_, err = dijkstra.FromStart(g, grid.Point{X: 3, Y: 0}, nil)
	assert.ErrorIs(t, err, dijkstra.ErrBadStart)

	_, err = dijkstra.FromStart(g, grid.Point{X: 0, Y: 0}, []grid.Point{{X: 2, Y: 2}})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, err = dijkstra.Distances(nil, grid.Point{})
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

// ------------------------------------------------------------------------
// Correctness
// ------------------------------------------------------------------------

func TestFromStart_Ring(t *testing.T) {
	g := grid.MustParseRows(
		"31223",
		"1###2",
		"1###2",
		"1###2",
		"11111",
	)
	targets := []grid.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}}
	o, err := dijkstra.FromStart(g, grid.Point{X: 1, Y: 0}, targets)
	require.NoError(t, err)
	require.Equal(t, 4, o.Len())

	wantDist := []int64{3, 7, 7, 11}
	wantBack := []string{"R", "LLL", "UUUUR", "LLLLUUUUR"}
	for i := range targets {
		assert.Equal(t, wantDist[i], o.Distance(i), "dist %d", i)
		assert.Equal(t, wantBack[i], o.ReturnPath(i), "path %d", i)
	}
}

func TestFromStart_StartIsTarget(t *testing.T) {
	g := grid.MustParseRows("11", "11")
	o, err := dijkstra.FromStart(g, grid.Point{X: 1, Y: 1}, []grid.Point{{X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), o.Distance(0))
	assert.Equal(t, "", o.ReturnPath(0))
}

// TestDistances_MatchReference compares every cell against the reference
// relaxation on a batch of seeded random grids.
func TestDistances_MatchReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		n := 2 + rng.Intn(9)
		g := randomGrid(rng, n)
		start := grid.Point{X: rng.Intn(n), Y: rng.Intn(n)}
		if !g.IsRoad(start) {
			continue
		}
		got, err := dijkstra.Distances(g, start)
		require.NoError(t, err)
		assert.Equal(t, referenceDistances(g, start), got, "trial %d", trial)
	}
}

// TestFromStart_ReturnPathsAreShortest replays every recorded return path
// and checks it ends at the start with the recorded cost.
func TestFromStart_ReturnPathsAreShortest(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 3 + rng.Intn(7)
		g := randomGrid(rng, n)
		start := grid.Point{X: rng.Intn(n), Y: rng.Intn(n)}
		if !g.IsRoad(start) {
			continue
		}
		ref := referenceDistances(g, start)
		var targets []grid.Point
		for i, d := range ref {
			if d != dijkstra.Unreachable {
				targets = append(targets, g.Coordinate(i))
			}
		}
		o, err := dijkstra.FromStart(g, start, targets)
		require.NoError(t, err)
		for i, p := range targets {
			end, cost := walkBack(t, g, p, o.ReturnPath(i))
			assert.Equal(t, start, end, "trial %d target %v", trial, p)
			assert.Equal(t, o.Distance(i), cost, "trial %d target %v", trial, p)
			assert.Equal(t, ref[g.Index(p)], o.Distance(i))
		}
	}
}
