package shape

import (
	"iter"
)

// Ellipse is the axis-aligned ellipse inscribed in the rectangle at (X, Y)
// with the given width and height.
//
// An ellipse behaves like a full, open [Arc]. Unlike Arc, it has no type,
// start or extent that could be changed.
type Ellipse struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var _ Shape = Ellipse{}

// NewEllipseFromCenter returns the ellipse centered at center with the given
// radii.
func NewEllipseFromCenter(center Point, rx, ry float64) Ellipse {
	return Ellipse{
		X:      center.X - rx,
		Y:      center.Y - ry,
		Width:  2 * rx,
		Height: 2 * ry,
	}
}

// Arc returns the ellipse as an open arc spanning 360°.
func (e Ellipse) Arc() Arc {
	return Arc{
		Type:   OpenArc,
		X:      e.X,
		Y:      e.Y,
		Width:  e.Width,
		Height: e.Height,
		Start:  0,
		Extent: 360,
	}
}

func (e Ellipse) Center() Point {
	return Point{
		X: e.X + e.Width/2,
		Y: e.Y + e.Height/2,
	}
}

func (e Ellipse) Radii() Vec2 {
	return Vec2{
		X: e.Width / 2,
		Y: e.Height / 2,
	}
}

func (e Ellipse) IsEmpty() bool {
	return !(e.Width > 0 && e.Height > 0)
}

func (e Ellipse) MinX() float64 { return e.X }
func (e Ellipse) MinY() float64 { return e.Y }
func (e Ellipse) MaxX() float64 { return e.X + e.Width }
func (e Ellipse) MaxY() float64 { return e.Y + e.Height }

func (e Ellipse) Translate(v Vec2) Ellipse {
	e.X += v.X
	e.Y += v.Y
	return e
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	if !pt.IsFinite() || e.IsEmpty() {
		return false
	}
	nx := (pt.X-e.X)/e.Width - 0.5
	ny := (pt.Y-e.Y)/e.Height - 0.5
	return nx*nx+ny*ny < 0.25
}

// OutlineContains reports whether pt lies on the ellipse's outline. See
// [Arc.OutlineContains].
func (e Ellipse) OutlineContains(pt Point, tolerance float64) bool {
	return e.Arc().OutlineContains(pt, tolerance)
}

// IntersectsRect reports whether the ellipse and r overlap. It finds the
// point of r nearest to the ellipse's center, in the ellipse's normalized
// space, and checks whether it lies inside.
func (e Ellipse) IntersectsRect(r Rect) bool {
	if r.IsEmpty() || e.IsEmpty() {
		return false
	}
	nx0 := (r.X0-e.X)/e.Width - 0.5
	nx1 := nx0 + r.Width()/e.Width
	ny0 := (r.Y0-e.Y)/e.Height - 0.5
	ny1 := ny0 + r.Height()/e.Height
	var nearX, nearY float64
	if nx0 > 0 {
		nearX = nx0
	} else if nx1 < 0 {
		nearX = nx1
	}
	if ny0 > 0 {
		nearY = ny0
	} else if ny1 < 0 {
		nearY = ny1
	}
	return nearX*nearX+nearY*nearY < 0.25
}

func (e Ellipse) BoundingBox() Rect {
	return NewRect(e.X, e.Y, e.Width, e.Height)
}

func (e Ellipse) PathElements() iter.Seq[PathElement] {
	return e.Arc().PathElements()
}
