package shape

import (
	"fmt"
	"iter"
	"math"
)

// ArcType describes how an arc is closed.
type ArcType int

const (
	// OpenArc has no closing segment. Its fill is the same as that of ChordArc.
	OpenArc ArcType = iota
	// ChordArc is closed by the line between its end points.
	ChordArc
	// PieArc is closed by the two lines from its end points to the center of
	// its ellipse.
	PieArc
)

func (typ ArcType) String() string {
	switch typ {
	case OpenArc:
		return "open"
	case ChordArc:
		return "chord"
	case PieArc:
		return "pie"
	default:
		return fmt.Sprintf("ArcType(%d)", int(typ))
	}
}

// Arc is a section of the ellipse inscribed in the rectangle at (X, Y) with
// the given width and height.
//
// Angles are in degrees. The section begins at Start and spans Extent
// degrees, where 0° points towards positive x and positive angles turn
// towards negative y. That is, in a y-down coordinate space angles go
// counterclockwise. A negative extent goes the other way.
type Arc struct {
	Type   ArcType
	X      float64
	Y      float64
	Width  float64
	Height float64
	Start  float64
	Extent float64
}

var _ Shape = Arc{}

// NewArcFromCenter returns the arc of the ellipse centered at center with
// the given radii.
func NewArcFromCenter(typ ArcType, center Point, rx, ry, start, extent float64) Arc {
	return Arc{
		Type:   typ,
		X:      center.X - rx,
		Y:      center.Y - ry,
		Width:  2 * rx,
		Height: 2 * ry,
		Start:  start,
		Extent: extent,
	}
}

// Center returns the center of the arc's ellipse.
func (a Arc) Center() Point {
	return Point{
		X: a.X + a.Width/2,
		Y: a.Y + a.Height/2,
	}
}

// Radii returns the radii of the arc's ellipse.
func (a Arc) Radii() Vec2 {
	return Vec2{
		X: a.Width / 2,
		Y: a.Height / 2,
	}
}

// WithCenter returns the arc moved so that its ellipse is centered at c.
func (a Arc) WithCenter(c Point) Arc {
	r := a.Radii()
	a.X = c.X - r.X
	a.Y = c.Y - r.Y
	return a
}

// WithRadii returns the arc with its radii changed, keeping its center.
func (a Arc) WithRadii(rx, ry float64) Arc {
	c := a.Center()
	a.Width = 2 * rx
	a.Height = 2 * ry
	a.X = c.X - rx
	a.Y = c.Y - ry
	return a
}

func (a Arc) Translate(v Vec2) Arc {
	a.X += v.X
	a.Y += v.Y
	return a
}

// IsEmpty reports whether the arc's ellipse has no area.
func (a Arc) IsEmpty() bool {
	return !(a.Width > 0 && a.Height > 0)
}

func (a Arc) MinX() float64 { return a.X }
func (a Arc) MinY() float64 { return a.Y }
func (a Arc) MaxX() float64 { return a.X + a.Width }
func (a Arc) MaxY() float64 { return a.Y + a.Height }

// Frame returns the rectangle the arc's ellipse is inscribed in.
func (a Arc) Frame() Rect {
	return NewRect(a.X, a.Y, a.Width, a.Height)
}

// pointAt returns the point on the ellipse at the given angle.
func (a Arc) pointAt(deg float64) Point {
	sin, cos := math.Sincos(toRadians(-deg))
	return Point{
		X: a.X + (cos*0.5+0.5)*a.Width,
		Y: a.Y + (sin*0.5+0.5)*a.Height,
	}
}

// StartPoint returns the point at which the arc begins.
func (a Arc) StartPoint() Point {
	return a.pointAt(a.Start)
}

// EndPoint returns the point at which the arc ends.
func (a Arc) EndPoint() Point {
	return a.pointAt(a.Start + a.Extent)
}

// ContainsAngle reports whether the angle, in degrees, lies within the arc's
// angular span. The span includes its start but not its end.
func (a Arc) ContainsAngle(angle float64) bool {
	ext := a.Extent
	backwards := ext < 0
	if backwards {
		ext = -ext
	}
	if ext >= 360 {
		return true
	}
	angle = normalizeDegrees(angle) - normalizeDegrees(a.Start)
	if backwards {
		angle = -angle
	}
	if angle < 0 {
		angle += 360
	}
	return angle >= 0 && angle < ext
}

// Contains reports whether pt lies in the area enclosed by the arc and its
// closing segments. Open arcs are treated like chord arcs.
func (a Arc) Contains(pt Point) bool {
	if !pt.IsFinite() || a.IsEmpty() {
		return false
	}
	// Normalize to the unit circle, scaled by ½.
	nx := (pt.X-a.X)/a.Width - 0.5
	ny := (pt.Y-a.Y)/a.Height - 0.5
	if nx*nx+ny*ny >= 0.25 {
		return false
	}
	ext := math.Abs(a.Extent)
	if ext >= 360 {
		return true
	}
	inArc := a.ContainsAngle(-toDegrees(math.Atan2(ny, nx)))
	if a.Type == PieArc {
		return inArc
	}
	if inArc {
		if ext >= 180 {
			return true
		}
		// pt must be outside of the pie triangle.
	} else {
		if ext <= 180 {
			return false
		}
		// pt must be inside of the pie triangle.
	}
	// pt is inside of the pie triangle iff it is on the same side of the
	// chord as the center.
	s1, c1 := math.Sincos(toRadians(-a.Start))
	s2, c2 := math.Sincos(toRadians(-a.Start - a.Extent))
	p1 := Pt(c1, s1)
	p2 := Pt(c2, s2)
	inside := RelativeCCW(p1, p2, Pt(2*nx, 2*ny))*RelativeCCW(p1, p2, Point{}) >= 0
	if inArc {
		return !inside
	}
	return inside
}

// OutlineContains reports whether pt lies on the arc's outline.
//
// The outline is the region inside of the arc grown by half the outline
// thickness and outside of the arc shrunk by the same amount, where the
// thickness is MinOutlineDistance plus twice the tolerance. The center of a
// pie arc is part of its outline.
func (a Arc) OutlineContains(pt Point, tolerance float64) bool {
	if !pt.IsFinite() {
		return false
	}
	if a.Type == PieArc && pt == a.Center() {
		return true
	}
	delta := (MinOutlineDistance + 2*tolerance) / 2
	r := a.Radii()
	outer := a.WithRadii(r.X+delta, r.Y+delta)
	inner := a.WithRadii(r.X-delta, r.Y-delta)
	return outer.Contains(pt) && !inner.Contains(pt)
}

// IntersectsRect reports whether the filled arc overlaps r.
func (a Arc) IntersectsRect(r Rect) bool {
	if r.IsEmpty() || a.IsEmpty() {
		return false
	}
	ext := a.Extent
	if ext == 0 {
		return false
	}
	ax, ay := a.X, a.Y
	axw, ayh := a.MaxX(), a.MaxY()
	x, y, xw, yh := r.X0, r.Y0, r.X1, r.Y1
	if x >= axw || y >= ayh || xw <= ax || yh <= ay {
		return false
	}

	c := a.Center()
	sp := a.StartPoint()
	ep := a.EndPoint()

	// Catch arcs that pass through the rectangle at one of their
	// axis-aligned extremes.
	if c.Y >= y && c.Y <= yh {
		if (sp.X < xw && ep.X < xw && c.X < xw && axw > x && a.ContainsAngle(0)) ||
			(sp.X > x && ep.X > x && c.X > x && ax < xw && a.ContainsAngle(180)) {
			return true
		}
	}
	if c.X >= x && c.X <= xw {
		if (sp.Y > y && ep.Y > y && c.Y > y && ay < yh && a.ContainsAngle(90)) ||
			(sp.Y < yh && ep.Y < yh && c.Y < yh && ayh > y && a.ContainsAngle(270)) {
			return true
		}
	}

	// Arcs spanning more than 180° need the radii, too, to catch rectangles
	// between the center and the chord.
	if a.Type == PieArc || math.Abs(ext) > 180 {
		if r.IntersectsLine(Line{c, sp}) || r.IntersectsLine(Line{c, ep}) {
			return true
		}
	} else {
		if r.IntersectsLine(Line{sp, ep}) {
			return true
		}
	}

	return a.Contains(Pt(x, y)) ||
		a.Contains(Pt(xw, y)) ||
		a.Contains(Pt(x, yh)) ||
		a.Contains(Pt(xw, yh))
}

// BoundingBox returns the rectangle the arc's ellipse is inscribed in, the
// same as [Arc.Frame]. Use [Arc.TightBounds] for the bounds of the arc alone.
func (a Arc) BoundingBox() Rect {
	return a.Frame()
}

// TightBounds returns the smallest rectangle enclosing the arc and, for pie
// arcs, the center of its ellipse.
func (a Arc) TightBounds() Rect {
	if a.IsEmpty() {
		return NewRect(a.X, a.Y, a.Width, a.Height)
	}
	var x1, y1, x2, y2 float64
	if a.Type != PieArc {
		x1, y1 = 1, 1
		x2, y2 = -1, -1
	}
	include := func(deg float64) {
		sin, cos := math.Sincos(toRadians(-deg))
		x1 = min(x1, cos)
		y1 = min(y1, sin)
		x2 = max(x2, cos)
		y2 = max(y2, sin)
	}
	for _, deg := range [...]float64{90, 180, 270, 360} {
		if a.ContainsAngle(deg) {
			include(deg)
		}
	}
	include(a.Start)
	include(a.Start + a.Extent)

	w, h := a.Width, a.Height
	return Rect{
		X0: a.X + (x1*0.5+0.5)*w,
		Y0: a.Y + (y1*0.5+0.5)*h,
		X1: a.X + (x2*0.5+0.5)*w,
		Y1: a.Y + (y2*0.5+0.5)*h,
	}
}

// arcCubics yields the cubic Béziers approximating the arc, at most one per
// 90°.
func (a Arc) arcCubics(yield func(PathElement) bool) bool {
	r := a.Radii()
	c := a.Center()
	ext := -a.Extent
	var n int
	var step, arm float64
	if ext >= 360 || ext <= -360 {
		n = 4
		step = math.Pi / 2
		arm = 0.5522847498307933
		if ext < 0 {
			step, arm = -step, -arm
		}
	} else {
		n = int(math.Ceil(math.Abs(ext) / 90))
		step = toRadians(ext / float64(n))
		arm = (4.0 / 3.0) * math.Tan(step/4)
		if arm == 0 {
			n = 0
		}
	}
	angle := toRadians(-a.Start)
	for range n {
		s0, c0 := math.Sincos(angle)
		angle += step
		s1, c1 := math.Sincos(angle)
		if !yield(CubicTo(
			Pt(c.X+(c0-arm*s0)*r.X, c.Y+(s0+arm*c0)*r.Y),
			Pt(c.X+(c1+arm*s1)*r.X, c.Y+(s1-arm*c1)*r.Y),
			Pt(c.X+c1*r.X, c.Y+s1*r.Y),
		)) {
			return false
		}
	}
	return true
}

// elements yields the arc's drawing commands, reaching its start point with
// start. Closing segments are drawn as explicit lines so that the arc can be
// embedded in a larger path.
func (a Arc) elements(start func(Point) PathElement, yield func(PathElement) bool) bool {
	if a.Width < 0 || a.Height < 0 {
		return true
	}
	sp := a.StartPoint()
	if !yield(start(sp)) || !a.arcCubics(yield) {
		return false
	}
	switch a.Type {
	case ChordArc:
		return yield(LineTo(sp))
	case PieArc:
		return yield(LineTo(a.Center())) && yield(LineTo(sp))
	default:
		return true
	}
}

// PathElements returns the arc as a sequence of cubic Béziers. Chord and pie
// arcs are closed.
func (a Arc) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if a.Width < 0 || a.Height < 0 {
			return
		}
		if !yield(MoveTo(a.StartPoint())) || !a.arcCubics(yield) {
			return
		}
		switch a.Type {
		case ChordArc:
			yield(ClosePath())
		case PieArc:
			_ = yield(LineTo(a.Center())) && yield(ClosePath())
		}
	}
}
