package shape

import (
	"iter"
)

// Line represents a line segment. It is both a [Shape] and a [ParametricCurve].
//
// Lines have no interior, so their fill and outline are the same: points
// within MinOutlineDistance of the segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Shape = Line{}
var _ ParametricCurve = Line{}

// IsDegenerate reports whether the line's start and end points coincide.
func (l Line) IsDegenerate() bool {
	return l.P0 == l.P1
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

// Subdivisions splits the line into 2^level lines of equal length.
func (l Line) Subdivisions(level int) []Line {
	return subdivisions(l, level)
}

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

// RelativeCCW reports on which side of the line pt lies. See [RelativeCCW].
func (l Line) RelativeCCW(pt Point) int {
	return RelativeCCW(l.P0, l.P1, pt)
}

// Distance returns the distance from pt to the closest point on the line.
func (l Line) Distance(pt Point) float64 {
	return PointSegmentDistance(l.P0, l.P1, pt)
}

// Contains reports whether pt lies within MinOutlineDistance of the line.
func (l Line) Contains(pt Point) bool {
	return l.OutlineContains(pt, 0)
}

// OutlineContains reports whether pt lies within MinOutlineDistance plus
// tolerance of the line.
func (l Line) OutlineContains(pt Point, tolerance float64) bool {
	if !pt.IsFinite() {
		return false
	}
	return l.Distance(pt) < MinOutlineDistance+tolerance
}

// IntersectsLine reports whether the two segments touch or cross.
func (l Line) IntersectsLine(o Line) bool {
	return RelativeCCW(l.P0, l.P1, o.P0)*RelativeCCW(l.P0, l.P1, o.P1) <= 0 &&
		RelativeCCW(o.P0, o.P1, l.P0)*RelativeCCW(o.P0, o.P1, l.P1) <= 0
}

// IntersectsRect reports whether the line touches r. See [Rect.IntersectsLine].
func (l Line) IntersectsRect(r Rect) bool {
	return r.IntersectsLine(l)
}
