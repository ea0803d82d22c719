// Package search_test drives Search and Rescue on small hand-checked cities.
package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citypatrol/dijkstra"
	"github.com/katalvlaran/citypatrol/grid"
	"github.com/katalvlaran/citypatrol/intersection"
	"github.com/katalvlaran/citypatrol/search"
	"github.com/katalvlaran/citypatrol/watch"
)

// ---------------------------
// Local helpers (small only).
// ---------------------------

func setup(t *testing.T, start grid.Point, rows ...string) (*intersection.Network, *dijkstra.Oracle) {
	t.Helper()
	g := grid.MustParseRows(rows...)
	net := intersection.Build(g)
	o, err := dijkstra.FromStart(g, start, net.Points)
	require.NoError(t, err)

	return net, o
}

// ringThree: four unit-cost corners around one block.
var ringThree = []string{
	"111",
	"1#1",
	"111",
}

// ringFive: corners (0,0)=0, (4,0)=1, (0,4)=2, (4,4)=3 seen from (1,0) at
// costs 3 (left) and 7 (right).
var ringFive = []string{
	"31223",
	"1###2",
	"1###2",
	"1###2",
	"11111",
}

// plus: a single FullCross reachable from the start along one axis only.
var plus = []string{
	"#1#",
	"111",
	"#1#",
}

// ---------------------------
// Search
// ---------------------------

func TestSearch_Validation(t *testing.T) {
	net, o := setup(t, grid.Point{X: 1, Y: 0}, ringThree...)
	_, err := search.Search(nil, o, grid.Point{})
	assert.ErrorIs(t, err, search.ErrNilInput)
	_, err = search.Search(net, nil, grid.Point{})
	assert.ErrorIs(t, err, search.ErrNilInput)

	other, o2 := setup(t, grid.Point{X: 1, Y: 0}, plus...)
	require.NotEqual(t, other.Len(), net.Len())
	_, err = search.Search(net, o2, grid.Point{X: 1, Y: 0})
	assert.ErrorIs(t, err, search.ErrOracleMismatch)
}

func TestSearch_NoIntersections(t *testing.T) {
	net, o := setup(t, grid.Point{X: 0, Y: 0}, "11", "##")
	res, err := search.Search(net, o, grid.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Equal(t, int64(0), res.Cost)
}

// TestSearch_StartIsOnlyIntersection: an L-shaped road whose elbow is the
// start has nothing in view, so no root exists.
func TestSearch_StartIsOnlyIntersection(t *testing.T) {
	start := grid.Point{X: 0, Y: 0}
	net, o := setup(t, start, "11", "1#")
	require.Equal(t, 1, net.Len())
	_, err := search.Search(net, o, start)
	assert.ErrorIs(t, err, search.ErrNoTour)
}

func TestSearch_RingThree(t *testing.T) {
	start := grid.Point{X: 1, Y: 0}
	net, o := setup(t, start, ringThree...)
	res, err := search.Search(net, o, start)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, res.Path)
	assert.Equal(t, int64(8), res.Cost)
	assert.Equal(t, 1, res.Stats.Improvements)
	assert.Equal(t, 0, res.Stats.Rescues)
}

// TestSearch_TwoCornersOnStartRow: the right corner (cost 7) is explored
// first and yields 25; the left corner (cost 3) then tightens to 22. The
// bound never increases and the result equals the last incumbent.
func TestSearch_TwoCornersOnStartRow(t *testing.T) {
	start := grid.Point{X: 1, Y: 0}
	net, o := setup(t, start, ringFive...)

	var costs []int64
	var paths [][]int
	res, err := search.Search(net, o, start, search.WithOnImprove(func(cost int64, path []int) {
		costs = append(costs, cost)
		paths = append(paths, path)
	}))
	require.NoError(t, err)

	assert.Equal(t, []int64{25, 22}, costs)
	assert.Equal(t, [][]int{{1, 3, 2}, {0, 2, 3}}, paths)
	assert.Equal(t, []int{0, 2, 3}, res.Path)
	assert.Equal(t, costs[len(costs)-1], res.Cost)
	assert.Equal(t, 2, res.Stats.Improvements)
}

// TestSearch_RescueCreditsCrossInPlace: the cross is seen vertically from
// the start, has no view of its own, and gets its horizontal credit from
// the rescue that returns it as its own nearest unwatched intersection.
func TestSearch_RescueCreditsCrossInPlace(t *testing.T) {
	start := grid.Point{X: 1, Y: 0}
	net, o := setup(t, start, plus...)
	require.Equal(t, []intersection.Kind{intersection.FullCross}, net.Kinds)

	res, err := search.Search(net, o, start)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Path)
	assert.Equal(t, int64(2), res.Cost)
	assert.Equal(t, 1, res.Stats.Rescues)
}

func TestSearch_Deterministic(t *testing.T) {
	start := grid.Point{X: 2, Y: 0}
	rows := []string{
		"11111",
		"1#1#1",
		"11111",
		"1#1#1",
		"11111",
	}
	net, o := setup(t, start, rows...)
	first, err := search.Search(net, o, start)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := search.Search(net, o, start)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// ---------------------------
// Rescue
// ---------------------------

func ringFiveState(t *testing.T, net *intersection.Network, watched ...int) *watch.State {
	t.Helper()
	st, err := watch.New(net.Kinds)
	require.NoError(t, err)
	for _, i := range watched {
		st.Inc(i, intersection.Horizontal)
	}

	return st
}

func TestRescue_NearestUnwatched(t *testing.T) {
	net, _ := setup(t, grid.Point{X: 1, Y: 0}, ringFive...)

	st := ringFiveState(t, net, 0, 1)
	cost, path, err := search.Rescue(net, st, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cost)
	assert.Equal(t, []int{0, 2}, path)

	// With 2 watched too, 3 is reached through 2 (4+4) rather than 1 (8+7).
	st = ringFiveState(t, net, 0, 1, 2)
	cost, path, err = search.Rescue(net, st, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(8), cost)
	assert.Equal(t, []int{0, 2, 3}, path)
}

func TestRescue_OriginUnwatched(t *testing.T) {
	net, _ := setup(t, grid.Point{X: 1, Y: 0}, ringFive...)
	st := ringFiveState(t, net)
	cost, path, err := search.Rescue(net, st, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)
	assert.Equal(t, []int{3}, path)
}

func TestRescue_Exhausted(t *testing.T) {
	net, _ := setup(t, grid.Point{X: 1, Y: 0}, ringFive...)
	st := ringFiveState(t, net, 0, 1, 2, 3)
	_, _, err := search.Rescue(net, st, 1)
	assert.ErrorIs(t, err, search.ErrRescueExhausted)
}

// TestRescue_LeavesStateUntouched: Rescue only reads the watch state.
func TestRescue_LeavesStateUntouched(t *testing.T) {
	net, _ := setup(t, grid.Point{X: 1, Y: 0}, ringFive...)
	st := ringFiveState(t, net, 0)
	before := st.Snapshot()
	_, _, err := search.Rescue(net, st, 0)
	require.NoError(t, err)
	assert.Equal(t, before, st.Snapshot())
}
