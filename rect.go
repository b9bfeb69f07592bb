package shape

import (
	"iter"
	"math"
)

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1).
//
// Most functions treat rectangles with X1 ≤ X0 or Y1 ≤ Y0 as empty.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ Shape = Rect{}

// NewRect returns the rectangle with top-left corner (x, y) and the given width
// and height. A non-positive width or height results in an empty rectangle.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		X0: x,
		Y0: y,
		X1: x + width,
		Y1: y + height,
	}
}

// NewSquare returns the square with top-left corner (x, y) and the given side
// length.
func NewSquare(x, y, length float64) Rect {
	return NewRect(x, y, length, length)
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsEmpty reports whether the rectangle has no usable interior, either
// because its width or height isn't positive or because one of its
// coordinates is NaN or infinite.
func (r Rect) IsEmpty() bool {
	return !(r.Width() > 0 && r.Height() > 0) || r.IsInf()
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside r or on its boundary. Empty
// rectangles contain no points.
func (r Rect) Contains(pt Point) bool {
	if r.IsEmpty() || !pt.IsFinite() {
		return false
	}
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// containsStrict reports whether pt lies in the interior of r.
func (r Rect) containsStrict(pt Point) bool {
	return pt.X > r.X0 &&
		pt.X < r.X1 &&
		pt.Y > r.Y0 &&
		pt.Y < r.Y1
}

// Edges returns the four sides of the rectangle, in clockwise order in a y-down
// space, starting at the origin.
func (r Rect) Edges() [4]Line {
	p0 := Pt(r.X0, r.Y0)
	p1 := Pt(r.X1, r.Y0)
	p2 := Pt(r.X1, r.Y1)
	p3 := Pt(r.X0, r.Y1)
	return [4]Line{{p0, p1}, {p1, p2}, {p2, p3}, {p3, p0}}
}

// OutlineContains reports whether pt lies on one of the rectangle's edges,
// within tolerance.
func (r Rect) OutlineContains(pt Point, tolerance float64) bool {
	for _, edge := range r.Edges() {
		if edge.OutlineContains(pt, tolerance) {
			return true
		}
	}
	return false
}

// Intersects reports whether the interiors of r and o overlap. Rectangles
// that merely touch don't intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.X1 > r.X0 &&
		o.Y1 > r.Y0 &&
		o.X0 < r.X1 &&
		o.Y0 < r.Y1
}

// IntersectsRect implements [Shape]. It is the same as [Rect.Intersects].
func (r Rect) IntersectsRect(o Rect) bool {
	return r.Intersects(o)
}

// Outcodes as used by Cohen–Sutherland line clipping.
const (
	outLeft = 1 << iota
	outTop
	outRight
	outBottom
)

func (r Rect) outcode(pt Point) int {
	var out int
	if r.Width() <= 0 {
		out |= outLeft | outRight
	} else if pt.X < r.X0 {
		out |= outLeft
	} else if pt.X > r.X1 {
		out |= outRight
	}
	if r.Height() <= 0 {
		out |= outTop | outBottom
	} else if pt.Y < r.Y0 {
		out |= outTop
	} else if pt.Y > r.Y1 {
		out |= outBottom
	}
	return out
}

// IntersectsLine reports whether the line segment l touches r, boundary
// included.
func (r Rect) IntersectsLine(l Line) bool {
	if l.IsNaN() || r.IsNaN() || r.IsInf() {
		return false
	}
	x1, y1 := l.P0.Splat()
	x2, y2 := l.P1.Splat()
	out2 := r.outcode(l.P1)
	if out2 == 0 {
		return true
	}
	for {
		out1 := r.outcode(Pt(x1, y1))
		if out1 == 0 {
			return true
		}
		if out1&out2 != 0 {
			return false
		}
		// Move the start point onto the edge it is outside of.
		if out1&(outLeft|outRight) != 0 {
			x := r.X0
			if out1&outRight != 0 {
				x = r.X1
			}
			y1 = y1 + (x-x1)*(y2-y1)/(x2-x1)
			x1 = x
		} else {
			y := r.Y0
			if out1&outBottom != 0 {
				y = r.Y1
			}
			x1 = x1 + (y-y1)*(x2-x1)/(y2-y1)
			y1 = y
		}
		if math.IsNaN(x1) || math.IsNaN(y1) {
			return false
		}
	}
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
//
// The logic simply applies the amount in each direction. If rectangle
// area or added dimensions are negative, this could give odd results.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

func (r Rect) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}
