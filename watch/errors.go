package watch

import "errors"

var (
	// ErrNotIntersection indicates a Kind that carries no counter.
	ErrNotIntersection = errors.New("watch: kind is not an intersection")
	// ErrUnderflow indicates a decrement of a zero counter.
	ErrUnderflow = errors.New("watch: counter underflow")
	// ErrOverflow indicates a counter beyond its 16-bit range.
	ErrOverflow = errors.New("watch: counter overflow")
)
