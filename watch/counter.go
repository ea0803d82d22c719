package watch

import (
	"github.com/katalvlaran/citypatrol/intersection"
)

// Counter is the observation state of one intersection. Implementations
// are small comparable values; State replaces them on every update.
type Counter interface {
	// Watched reports whether the intersection is satisfied.
	Watched() bool
	// Kind returns the intersection kind the counter was created for.
	Kind() intersection.Kind

	add(axis intersection.Axis, delta int) Counter
}

// Corner is observed from either axis.
type Corner struct{ N uint16 }

func (c Corner) Watched() bool           { return c.N > 0 }
func (c Corner) Kind() intersection.Kind { return intersection.Corner }
func (c Corner) add(_ intersection.Axis, d int) Counter {
	return Corner{N: bump(c.N, d)}
}

// Cross must be observed along both axes.
type Cross struct{ H, V uint16 }

func (c Cross) Watched() bool           { return c.H > 0 && c.V > 0 }
func (c Cross) Kind() intersection.Kind { return intersection.FullCross }
func (c Cross) add(a intersection.Axis, d int) Counter {
	if a == intersection.Horizontal {
		c.H = bump(c.H, d)
	} else {
		c.V = bump(c.V, d)
	}

	return c
}

// HorizontalOnly counts horizontal observations of a T-junction whose
// vertical stem is missing on one side.
type HorizontalOnly struct{ H uint16 }

func (c HorizontalOnly) Watched() bool           { return c.H > 0 }
func (c HorizontalOnly) Kind() intersection.Kind { return intersection.TJunctionMissingVertical }
func (c HorizontalOnly) add(a intersection.Axis, d int) Counter {
	if a == intersection.Horizontal {
		c.H = bump(c.H, d)
	}

	return c
}

// VerticalOnly counts vertical observations of a T-junction whose
// horizontal arm is missing on one side.
type VerticalOnly struct{ V uint16 }

func (c VerticalOnly) Watched() bool           { return c.V > 0 }
func (c VerticalOnly) Kind() intersection.Kind { return intersection.TJunctionMissingHorizontal }
func (c VerticalOnly) add(a intersection.Axis, d int) Counter {
	if a == intersection.Vertical {
		c.V = bump(c.V, d)
	}

	return c
}

// NewCounter returns the zero counter for kind k.
func NewCounter(k intersection.Kind) (Counter, error) {
	switch k {
	case intersection.Corner:
		return Corner{}, nil
	case intersection.FullCross:
		return Cross{}, nil
	case intersection.TJunctionMissingVertical:
		return HorizontalOnly{}, nil
	case intersection.TJunctionMissingHorizontal:
		return VerticalOnly{}, nil
	}

	return nil, ErrNotIntersection
}

func bump(n uint16, d int) uint16 {
	v := int(n) + d
	if v < 0 {
		panic(ErrUnderflow)
	}
	if v > int(^uint16(0)) {
		panic(ErrOverflow)
	}

	return uint16(v)
}
