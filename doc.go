// Package patrol computes a minimum-cost closed patrol route through a grid
// city.
//
// 🚓 What it does
//
//	Given a square map of blocks and weighted road cells and a start cell,
//	patrol finds a closed tour that "observes" every intersection along the
//	axes its shape requires, and prints it as a string of U/D/L/R moves.
//
// Pipeline:
//
//	grid/         - parse and hold the immutable city map
//	intersection/ - classify intersections, build the straight-line view graph
//	dijkstra/     - distances and return paths from the start cell
//	watch/        - per-intersection observation counters with rollback
//	search/       - branch-and-bound tour search with rescue fallback
//	route/        - move-string serialisation and replay
//
// Quick example:
//
//	    1 1 1          start at (row 0, col 1)
//	    1 # 1    ──▶   RDDLLUUR
//	    1 1 1
//
// The command in cmd/patrol reads the city on stdin and writes the tour on
// stdout.
package patrol
