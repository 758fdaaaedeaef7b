package concat

import "errors"

// ErrOutOfBounds is returned by Slice when the requested range is malformed
// or extends past the container's logical length.
var ErrOutOfBounds = errors.New("concat: slice range out of bounds")

// Range is a half-open interval [Start, End) over logical element indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements the range covers.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) IsEmpty() bool { return r.End <= r.Start }

// wellFormed reports 0 <= Start <= End. Bounds against a logical length are
// checked by the container, which knows it.
func (r Range) wellFormed() bool {
	return r.Start >= 0 && r.Start <= r.End
}
