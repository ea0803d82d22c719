// Package route turns a search result into the output move string and
// replays move strings over a grid.
//
// Moves walks the winning intersections in order. Consecutive stops share
// a row or a column, so each leg is one direction repeated |Δ| times
// (L/R along x, U/D along y). The oracle's return string for the last stop
// is appended.
//
// Replay walks a move string from the start cell, failing on the first
// move that leaves the grid or enters a block, and reports the visited
// cells and the entry cost paid.
package route
