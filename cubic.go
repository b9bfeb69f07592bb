package shape

import (
	"iter"
	"sort"
)

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ Shape = CubicBez{}
var _ ParametricCurve = CubicBez{}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// BoundingBox returns the tight bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	return CurveBoundingBox(c)
}

// ControlBox returns the bounding box of the curve's control points.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P3).UnionPoint(c.P1).UnionPoint(c.P2)
}

func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subdivisions splits the curve into 2^level curves by recursively halving
// it. The curves are returned in order, each starting where the previous one
// ends. A level of zero or less returns the curve itself.
func (c CubicBez) Subdivisions(level int) []CubicBez {
	return subdivisions(c, level)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Chord returns the line between the curve's end points.
func (c CubicBez) Chord() Line {
	return Line{c.P0, c.P3}
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// Contains reports whether pt lies in the region enclosed by the curve and
// its chord, using the even-odd rule.
func (c CubicBez) Contains(pt Point) bool {
	if !pt.IsFinite() {
		return false
	}
	chord := c.Chord()
	crossings := PointCrossingsForLine(pt, chord.P0, chord.P1) +
		PointCrossingsForCubic(pt, c.P0, c.P1, c.P2, c.P3, 0)
	return crossings&1 == 1
}

// PointDistance approximates the distance from pt to the curve.
//
// Starting with the whole curve, it repeatedly halves the curve and keeps the
// half whose midpoint is nearer to pt, until the distance to that midpoint
// drops below threshold or stops decreasing. If it dropped below threshold,
// that distance is returned, otherwise the smallest distance seen.
//
// This is a greedy search. It is fast and suited for hit testing, but for
// points that aren't close to the curve, the result may be larger than the
// true distance.
func (c CubicBez) PointDistance(pt Point, threshold float64) float64 {
	return nearestMidpointDistance(c, pt, threshold)
}

// OutlineContains reports whether pt lies within MinOutlineDistance plus
// tolerance of the curve.
func (c CubicBez) OutlineContains(pt Point, tolerance float64) bool {
	if !pt.IsFinite() {
		return false
	}
	threshold := MinOutlineDistance + tolerance
	return c.PointDistance(pt, threshold) < threshold
}

// IntersectsRect reports whether r overlaps the region enclosed by the curve
// and its chord.
func (c CubicBez) IntersectsRect(r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	crossings := 0
	if chord := c.Chord(); !chord.IsDegenerate() {
		crossings = RectCrossingsForLine(crossings, r, chord.P0, chord.P1)
		if crossings == RectIntersects {
			return true
		}
	}
	// Walk the curve backwards so that chord and curve form a closed loop.
	crossings = RectCrossingsForCubic(crossings, r, c.P3, c.P2, c.P1, c.P0, 0)
	return crossings != 0
}

// PointCrossingsForCubic returns the number of times a ray cast from pt
// towards negative x crosses the cubic curve p0, c0, c1, p1. It works like
// [PointCrossingsForQuad].
func PointCrossingsForCubic(pt, p0, c0, c1, p1 Point, level int) int {
	px, py := pt.Splat()
	if py < p0.Y && py < c0.Y && py < c1.Y && py < p1.Y {
		return 0
	}
	if py >= p0.Y && py >= c0.Y && py >= c1.Y && py >= p1.Y {
		return 0
	}
	if px < p0.X && px < c0.X && px < c1.X && px < p1.X {
		return 0
	}
	if px >= p0.X && px >= c0.X && px >= c1.X && px >= p1.X {
		return endpointCrossings(py, p0.Y, p1.Y)
	}
	if level > MaxSubdivisionLevel {
		debug("cubic reached subdivision limit, using chord", "p0", p0, "p1", p1)
		return PointCrossingsForLine(pt, p0, p1)
	}
	a, b := CubicBez{p0, c0, c1, p1}.Subdivide()
	if a.P3.IsNaN() {
		debug("cubic subdivision produced NaN", "p0", p0, "c0", c0, "c1", c1, "p1", p1)
		return 0
	}
	return PointCrossingsForCubic(pt, a.P0, a.P1, a.P2, a.P3, level+1) +
		PointCrossingsForCubic(pt, b.P0, b.P1, b.P2, b.P3, level+1)
}

// RectCrossingsForCubic accumulates the crossings of the cubic curve p0, c0,
// c1, p1 through the left shadow of r. It works like [RectCrossingsForQuad].
func RectCrossingsForCubic(crossings int, r Rect, p0, c0, c1, p1 Point, level int) int {
	if p0.Y >= r.Y1 && c0.Y >= r.Y1 && c1.Y >= r.Y1 && p1.Y >= r.Y1 {
		return crossings
	}
	if p0.Y <= r.Y0 && c0.Y <= r.Y0 && c1.Y <= r.Y0 && p1.Y <= r.Y0 {
		return crossings
	}
	if p0.X >= r.X1 && c0.X >= r.X1 && c1.X >= r.X1 && p1.X >= r.X1 {
		return crossings
	}
	if p0.X <= r.X0 && c0.X <= r.X0 && c1.X <= r.X0 && p1.X <= r.X0 {
		return shadowCrossingsForCurve(crossings, r, p0.Y, p1.Y)
	}
	if r.containsStrict(p0) || r.containsStrict(p1) {
		return RectIntersects
	}
	if level > MaxSubdivisionLevel {
		debug("cubic reached subdivision limit, using chord", "p0", p0, "p1", p1)
		return RectCrossingsForLine(crossings, r, p0, p1)
	}
	a, b := CubicBez{p0, c0, c1, p1}.Subdivide()
	if a.P3.IsNaN() {
		debug("cubic subdivision produced NaN", "p0", p0, "c0", c0, "c1", c1, "p1", p1)
		return 0
	}
	crossings = RectCrossingsForCubic(crossings, r, a.P0, a.P1, a.P2, a.P3, level+1)
	if crossings != RectIntersects {
		crossings = RectCrossingsForCubic(crossings, r, b.P0, b.P1, b.P2, b.P3, level+1)
	}
	return crossings
}
