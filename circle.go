package shape

import (
	"iter"
)

// Circle is a circle with a center and a radius.
type Circle struct {
	Center Point
	Radius float64
}

var _ Shape = Circle{}

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 {
	return 2 * c.Radius
}

// Ellipse returns the circle as an ellipse with equal radii.
func (c Circle) Ellipse() Ellipse {
	return NewEllipseFromCenter(c.Center, c.Radius, c.Radius)
}

// Arc returns the circle as an open arc spanning 360°.
func (c Circle) Arc() Arc {
	return c.Ellipse().Arc()
}

func (c Circle) Translate(v Vec2) Circle {
	c.Center = c.Center.Translate(v)
	return c
}

func (c Circle) Contains(pt Point) bool {
	return c.Ellipse().Contains(pt)
}

func (c Circle) OutlineContains(pt Point, tolerance float64) bool {
	return c.Ellipse().OutlineContains(pt, tolerance)
}

func (c Circle) IntersectsRect(r Rect) bool {
	return c.Ellipse().IntersectsRect(r)
}

func (c Circle) BoundingBox() Rect {
	return c.Ellipse().BoundingBox()
}

func (c Circle) PathElements() iter.Seq[PathElement] {
	return c.Ellipse().PathElements()
}
