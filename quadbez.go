package shape

import (
	"iter"
)

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

var _ Shape = QuadBez{}
var _ ParametricCurve = QuadBez{}

// BoundingBox returns the tight bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	return CurveBoundingBox(q)
}

// ControlBox returns the bounding box of the curve's control points.
func (q QuadBez) ControlBox() Rect {
	return NewRectFromPoints(q.P0, q.P2).UnionPoint(q.P1)
}

func (q QuadBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(q.P0)) &&
			yield(QuadTo(q.P1, q.P2))
	}
}

// Raise raises the order by 1, returning the equivalent cubic Bézier.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() ||
		q.P1.IsInf() ||
		q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() ||
		q.P1.IsNaN() ||
		q.P2.IsNaN()
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Subdivide splits the curve at t = ½, using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// Subdivisions splits the curve into 2^level curves by recursively halving
// it. The curves are returned in order, each starting where the previous one
// ends. A level of zero or less returns the curve itself.
func (q QuadBez) Subdivisions(level int) []QuadBez {
	return subdivisions(q, level)
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Chord returns the line between the curve's end points.
func (q QuadBez) Chord() Line {
	return Line{q.P0, q.P2}
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// Contains reports whether pt lies in the region enclosed by the curve and
// its chord.
//
// Because quadratic curves are convex, this is decided without subdivision:
// the line through pt parallel to the curve's second derivative meets the
// chord and the curve at the same parameter t, and pt is inside if it lies
// between those two points.
func (q QuadBez) Contains(pt Point) bool {
	if !pt.IsFinite() {
		return false
	}
	x, y := pt.Splat()
	x1, y1 := q.P0.Splat()
	xc, yc := q.P1.Splat()
	x2, y2 := q.P2.Splat()

	kx := x1 - 2*xc + x2
	ky := y1 - 2*yc + y2
	dx := x - x1
	dy := y - y1
	dxl := x2 - x1
	dyl := y2 - y1

	t0 := (dx*ky - dy*kx) / (dxl*ky - dyl*kx)
	if t0 < 0 || t0 > 1 || t0 != t0 {
		return false
	}

	xb := kx*t0*t0 + 2*(xc-x1)*t0 + x1
	yb := ky*t0*t0 + 2*(yc-y1)*t0 + y1
	xl := dxl*t0 + x1
	yl := dyl*t0 + y1

	return (x >= xb && x < xl) ||
		(x >= xl && x < xb) ||
		(y >= yb && y < yl) ||
		(y >= yl && y < yb)
}

// PointDistance approximates the distance from pt to the curve, stopping
// early once it is below threshold. See [CubicBez.PointDistance] for the
// search this uses.
func (q QuadBez) PointDistance(pt Point, threshold float64) float64 {
	return nearestMidpointDistance(q, pt, threshold)
}

// OutlineContains reports whether pt lies within MinOutlineDistance plus
// tolerance of the curve.
func (q QuadBez) OutlineContains(pt Point, tolerance float64) bool {
	if !pt.IsFinite() {
		return false
	}
	threshold := MinOutlineDistance + tolerance
	return q.PointDistance(pt, threshold) < threshold
}

// IntersectsRect reports whether r overlaps the region enclosed by the curve
// and its chord.
func (q QuadBez) IntersectsRect(r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	crossings := 0
	if chord := q.Chord(); !chord.IsDegenerate() {
		crossings = RectCrossingsForLine(crossings, r, chord.P0, chord.P1)
		if crossings == RectIntersects {
			return true
		}
	}
	// Walk the curve backwards so that chord and curve form a closed loop.
	crossings = RectCrossingsForQuad(crossings, r, q.P2, q.P1, q.P0, 0)
	return crossings != 0
}

// PointCrossingsForQuad returns the number of times a ray cast from pt
// towards negative x crosses the quadratic curve p0, c, p1, with the same
// conventions as [PointCrossingsForLine].
//
// The curve is subdivided until each piece lies entirely on one side of pt
// or until level exceeds [MaxSubdivisionLevel], after which a piece is
// treated as the line between its end points. Callers start at level 0.
func PointCrossingsForQuad(pt, p0, c, p1 Point, level int) int {
	px, py := pt.Splat()
	if py < p0.Y && py < c.Y && py < p1.Y {
		return 0
	}
	if py >= p0.Y && py >= c.Y && py >= p1.Y {
		return 0
	}
	// p0.Y may equal p1.Y, with c above or below.
	if px < p0.X && px < c.X && px < p1.X {
		return 0
	}
	if px >= p0.X && px >= c.X && px >= p1.X {
		return endpointCrossings(py, p0.Y, p1.Y)
	}
	if level > MaxSubdivisionLevel {
		debug("quadratic reached subdivision limit, using chord", "p0", p0, "p1", p1)
		return PointCrossingsForLine(pt, p0, p1)
	}
	a, b := QuadBez{p0, c, p1}.Subdivide()
	if a.P2.IsNaN() {
		debug("quadratic subdivision produced NaN", "p0", p0, "c", c, "p1", p1)
		return 0
	}
	return PointCrossingsForQuad(pt, a.P0, a.P1, a.P2, level+1) +
		PointCrossingsForQuad(pt, b.P0, b.P1, b.P2, level+1)
}

// RectCrossingsForQuad accumulates the crossings of the quadratic curve p0,
// c, p1 through the left shadow of r, with the same conventions as
// [RectCrossingsForLine]. Callers start at level 0.
func RectCrossingsForQuad(crossings int, r Rect, p0, c, p1 Point, level int) int {
	if p0.Y >= r.Y1 && c.Y >= r.Y1 && p1.Y >= r.Y1 {
		return crossings
	}
	if p0.Y <= r.Y0 && c.Y <= r.Y0 && p1.Y <= r.Y0 {
		return crossings
	}
	if p0.X >= r.X1 && c.X >= r.X1 && p1.X >= r.X1 {
		return crossings
	}
	if p0.X <= r.X0 && c.X <= r.X0 && p1.X <= r.X0 {
		// The curve is to the left of the rectangle and overlaps its y
		// range. Only the end points decide how often it passes through the
		// shadow; the control point may be the sole reason for the overlap.
		return shadowCrossingsForCurve(crossings, r, p0.Y, p1.Y)
	}
	if r.containsStrict(p0) || r.containsStrict(p1) {
		return RectIntersects
	}
	if level > MaxSubdivisionLevel {
		debug("quadratic reached subdivision limit, using chord", "p0", p0, "p1", p1)
		return RectCrossingsForLine(crossings, r, p0, p1)
	}
	a, b := QuadBez{p0, c, p1}.Subdivide()
	if a.P2.IsNaN() {
		debug("quadratic subdivision produced NaN", "p0", p0, "c", c, "p1", p1)
		return 0
	}
	crossings = RectCrossingsForQuad(crossings, r, a.P0, a.P1, a.P2, level+1)
	if crossings != RectIntersects {
		crossings = RectCrossingsForQuad(crossings, r, b.P0, b.P1, b.P2, level+1)
	}
	return crossings
}
