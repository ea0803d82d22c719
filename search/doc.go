// Package search builds the minimal patrol tour over the intersection view
// graph.
//
// Search runs a branch-and-bound depth-first search seeded from every
// intersection visible from the start cell. From the current intersection
// u it:
//
//  1. Returns acc + dist(u → start) once every intersection is watched,
//     recording the path when it beats the incumbent.
//  2. Otherwise takes the first horizontal view entry that is still
//     unwatched and passes the lower-bound prune
//     (acc + edge + dist(entry → start) < best), credits it on both axes,
//     credits the intersections passed over on the perpendicular axis,
//     and recurses. At most one branch is taken per call.
//  3. Falls back to the vertical list the same way.
//  4. If neither axis expands, asks Rescue for the nearest unwatched
//     intersection and, if the prune allows, jumps there.
//
// The pruning bound is threaded as a parameter and a return value. Every
// credit is made through a watch.Journal whose Rollback is deferred, so the
// watch state and the path are restored on every exit path.
//
// Rescue is a uniform-cost search over the view graph that stops at the
// first popped intersection that is not yet watched.
//
// Complexity: exponential in the worst case; the single-branch rule keeps
// the practical tree narrow. Rescue is O(E log E) per call with path
// copies on every improved frontier entry.
package search
