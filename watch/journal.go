package watch

import (
	"github.com/katalvlaran/citypatrol/intersection"
)

type credit struct {
	i    int
	axis intersection.Axis
}

// Journal records credits applied to a State so they can be undone.
type Journal struct {
	s   *State
	ops []credit
}

// Credit increments i along axis a and records it.
func (j *Journal) Credit(i int, a intersection.Axis) {
	j.s.Inc(i, a)
	j.ops = append(j.ops, credit{i: i, axis: a})
}

// CreditBoth credits i along both axes.
func (j *Journal) CreditBoth(i int) {
	j.Credit(i, intersection.Horizontal)
	j.Credit(i, intersection.Vertical)
}

// Len returns the number of recorded credits.
func (j *Journal) Len() int { return len(j.ops) }

// Rollback undoes every recorded credit in reverse order and empties the
// journal. Calling it twice is harmless.
func (j *Journal) Rollback() {
	for k := len(j.ops) - 1; k >= 0; k-- {
		j.s.Dec(j.ops[k].i, j.ops[k].axis)
	}
	j.ops = j.ops[:0]
}
