// Package dijkstra is the distance oracle of the patrol solver: a
// single-source shortest-path search from the start cell over the raw grid.
//
// Every road cell is a node; moving into a cell costs that cell's value.
// The search settles cells in increasing distance using a min-heap with
// lazy decrease-key. When a settled cell is a target (an intersection), its
// distance is recorded together with the move string that leads from the
// target back to the start.
//
// Tie-breaking:
//
// Equal distances pop in insertion order and neighbours are relaxed left,
// right, up, down. Among equal-cost paths the one discovered first wins; no
// particular move sequence is preferred beyond that.
//
// Complexity:
//
//   - Time:  O(n² log n) for an n×n grid.
//   - Space: O(n²) for distances and predecessors.
//
// Errors:
//
//   - ErrNilGrid:      the grid pointer is nil.
//   - ErrBadStart:     the start cell is outside the grid or a block.
//   - ErrUnreachable:  a target cannot be reached from the start.
package dijkstra
