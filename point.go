package shape

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

var _ Shape = Point{}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// IsFinite reports whether both x and y are neither infinite nor NaN.
func (pt Point) IsFinite() bool {
	// x*0 is 0 for finite x and NaN for ±Inf and NaN.
	return pt.X*0+pt.Y*0 == 0
}

// Contains reports whether o has exactly the coordinates of pt.
func (pt Point) Contains(o Point) bool {
	return pt.IsFinite() && pt == o
}

// OutlineContains reports whether o is within tolerance of pt. With a tolerance
// of zero it is equivalent to [Point.Contains].
func (pt Point) OutlineContains(o Point, tolerance float64) bool {
	if tolerance <= 0 {
		return pt.Contains(o)
	}
	if !o.IsFinite() {
		return false
	}
	return pt.Distance(o) <= tolerance
}

// IntersectsRect reports whether pt lies within r, boundary included.
func (pt Point) IntersectsRect(r Rect) bool {
	return r.Contains(pt)
}

// BoundingBox returns the zero-area rectangle at pt.
func (pt Point) BoundingBox() Rect {
	return Rect{pt.X, pt.Y, pt.X, pt.Y}
}
