// Package intersection classifies the road cells of a grid and builds
// the view graph that the route search walks.
//
// Classification:
//
// Every road cell gets a 4-bit openness flag (left=1, right=2, up=4,
// down=8; a side is open when the neighbour is an in-bounds road). The
// flag decides the Kind once, for the lifetime of the program:
//
//	Corner                       5, 6, 9, 10   two perpendicular sides
//	TJunctionMissingVertical     7, 11         left, right and one vertical
//	TJunctionMissingHorizontal   13, 14        up, down and one horizontal
//	FullCross                    15            all four
//	(not an intersection)        0-4, 8, 12    dead end, straight, isolated
//
// Views:
//
// For each intersection the builder scans right then left, and down then
// up, accumulating entry costs until a block or the grid edge. Every
// intersection the scan lands on is recorded as an Edge with the cost
// accumulated so far, so within one scan direction costs strictly
// increase unless zero-cost cells are crossed.
//
// Complexity: Build is O(n² + k·n) for k intersections on an n×n grid.
package intersection
