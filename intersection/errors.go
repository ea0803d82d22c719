package intersection

import "errors"

// ErrBadFlag indicates an openness flag outside the 4-bit range.
var ErrBadFlag = errors.New("intersection: openness flag out of range")
