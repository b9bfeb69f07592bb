package shape

import (
	"fmt"
	"strings"
)

// Shape is a region of the plane that can be queried for points and
// rectangles.
//
// All methods treat NaN and infinite coordinates as lying outside of every
// shape.
type Shape interface {
	// Contains reports whether pt lies in the filled interior of the shape.
	Contains(pt Point) bool
	// OutlineContains reports whether pt lies on the shape's outline, that
	// is within MinOutlineDistance plus tolerance of it.
	OutlineContains(pt Point, tolerance float64) bool
	// IntersectsRect reports whether the filled shape and r overlap.
	IntersectsRect(r Rect) bool
	// BoundingBox returns an axis-aligned rectangle enclosing the shape.
	BoundingBox() Rect
}

// ContainsOptions selects between fill and outline containment.
type ContainsOptions struct {
	// Outline restricts the test to the shape's outline.
	Outline bool
	// Tolerance is added to the outline's thickness. It has no effect
	// unless Outline is set.
	Tolerance float64
}

// Contains reports whether s contains pt, using fill or outline containment
// as selected by opts.
func Contains(s Shape, pt Point, opts ContainsOptions) bool {
	if opts.Outline {
		return s.OutlineContains(pt, opts.Tolerance)
	}
	return s.Contains(pt)
}

// ContainsXY is like [Contains] but takes the point as separate coordinates.
func ContainsXY(s Shape, x, y float64, opts ContainsOptions) bool {
	return Contains(s, Pt(x, y), opts)
}

// WindingRule decides how crossing numbers map to inside and outside.
type WindingRule int

const (
	// EvenOdd considers points inside if a ray cast from them crosses the
	// outline an odd number of times.
	EvenOdd WindingRule = iota
	// NonZero considers points inside if the outline winds around them at
	// least once, in either direction.
	NonZero
)

func (w WindingRule) String() string {
	switch w {
	case EvenOdd:
		return "even-odd"
	case NonZero:
		return "non-zero"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(w))
	}
}

// Valid reports whether w is one of the defined winding rules.
func (w WindingRule) Valid() bool {
	return w == EvenOdd || w == NonZero
}

// pointMask is the mask applied to point crossing numbers.
func (w WindingRule) pointMask() int {
	if w == NonZero {
		return -1
	}
	return 1
}

// rectMask is the mask applied to rectangle crossing numbers, which count
// each edge of the rectangle's shadow once.
func (w WindingRule) rectMask() int {
	if w == NonZero {
		return -1
	}
	return 2
}

// ParseWindingRule parses the names of winding rules. It accepts the output
// of [WindingRule.String] as well as a few common spellings, ignoring case.
func ParseWindingRule(s string) (WindingRule, error) {
	switch strings.ToLower(s) {
	case "even-odd", "even_odd", "evenodd", "wind_even_odd":
		return EvenOdd, nil
	case "non-zero", "non_zero", "nonzero", "wind_non_zero":
		return NonZero, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWindingRule, s)
	}
}
