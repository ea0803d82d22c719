// Package watch tracks how often each intersection has been observed along
// the route under construction.
//
// Each intersection owns a Counter whose concrete type is fixed by its
// intersection.Kind when the State is created:
//
//	Corner          one counter; both axes bump it
//	Cross           independent H and V counters, both must be > 0
//	HorizontalOnly  TJunctionMissingVertical: H only, V credits are no-ops
//	VerticalOnly    TJunctionMissingHorizontal: V only, H credits are no-ops
//
// Counters never go negative; a decrement below zero is an invariant breach
// and panics with ErrUnderflow.
//
// Mutation during search goes through a Journal: every credit is recorded
// and Rollback undoes them in reverse order, so a caller that defers
// Rollback restores the State bit for bit on every exit path.
package watch
