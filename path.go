package shape

import (
	"fmt"
	"iter"
	"slices"
)

type PartKind int

const (
	// Move to a point, starting a new subpath.
	PointPartKind PartKind = iota + 1
	// Continue with a line to a point.
	LinePartKind
	// Continue with a quadratic Bézier.
	QuadPartKind
	// Continue with a cubic Bézier.
	CubicPartKind
	// Embed an arc, which gets decomposed into cubic Béziers.
	ArcPartKind
)

func (k PartKind) String() string {
	switch k {
	case PointPartKind:
		return "Point"
	case LinePartKind:
		return "Line"
	case QuadPartKind:
		return "Quad"
	case CubicPartKind:
		return "Cubic"
	case ArcPartKind:
		return "Arc"
	default:
		return fmt.Sprintf("PartKind(%d)", int(k))
	}
}

// Part is one element of a [Path]. Lines and curves continue from where the
// previous part ended.
//
// Parts are created with PointPart, LinePart, QuadPart, CubicPart, ArcPart,
// EllipsePart and CirclePart.
type Part struct {
	Kind PartKind
	// Points of the part. Only the first Kind-specific number of points is
	// used: one for points and lines, two for quadratic and three for cubic
	// Béziers.
	P0, P1, P2 Point
	// Arc is only used by ArcPartKind.
	Arc Arc
}

func PointPart(pt Point) Part {
	return Part{Kind: PointPartKind, P0: pt}
}

func LinePart(to Point) Part {
	return Part{Kind: LinePartKind, P0: to}
}

func QuadPart(c, to Point) Part {
	return Part{Kind: QuadPartKind, P0: c, P1: to}
}

func CubicPart(c1, c2, to Point) Part {
	return Part{Kind: CubicPartKind, P0: c1, P1: c2, P2: to}
}

func ArcPart(a Arc) Part {
	return Part{Kind: ArcPartKind, Arc: a}
}

func EllipsePart(e Ellipse) Part {
	return ArcPart(e.Arc())
}

func CirclePart(c Circle) Part {
	return ArcPart(c.Arc())
}

// BoundingBox returns the bounding box of the part's own points. For arcs,
// this is the frame of the arc's ellipse.
func (part Part) BoundingBox() Rect {
	switch part.Kind {
	case PointPartKind, LinePartKind:
		return part.P0.BoundingBox()
	case QuadPartKind:
		return NewRectFromPoints(part.P0, part.P1)
	case CubicPartKind:
		return NewRectFromPoints(part.P0, part.P1).UnionPoint(part.P2)
	case ArcPartKind:
		return part.Arc.BoundingBox()
	default:
		return Rect{}
	}
}

// elements yields the part's drawing commands. Arcs are reached with a
// LineTo if connect is true and with a MoveTo otherwise.
func (part Part) elements(connect bool, yield func(PathElement) bool) bool {
	switch part.Kind {
	case PointPartKind:
		return yield(MoveTo(part.P0))
	case LinePartKind:
		return yield(LineTo(part.P0))
	case QuadPartKind:
		return yield(QuadTo(part.P0, part.P1))
	case CubicPartKind:
		return yield(CubicTo(part.P0, part.P1, part.P2))
	case ArcPartKind:
		start := MoveTo
		if connect {
			start = LineTo
		}
		return part.Arc.elements(start, yield)
	default:
		return true
	}
}

// end returns the point at which the part's drawing commands end.
func (part Part) end() Point {
	switch part.Kind {
	case QuadPartKind:
		return part.P1
	case CubicPartKind:
		return part.P2
	case ArcPartKind:
		if part.Arc.Type == OpenArc {
			return part.Arc.EndPoint()
		}
		return part.Arc.StartPoint()
	default:
		return part.P0
	}
}

// PathOption configures a Path during creation.
type PathOption func(*pathOptions)

type pathOptions struct {
	rule                WindingRule
	closed              bool
	lineToComplexShapes bool
}

// WithWindingRule sets the path's winding rule. The default is EvenOdd.
func WithWindingRule(rule WindingRule) PathOption {
	return func(o *pathOptions) {
		o.rule = rule
	}
}

// WithClosed sets whether the path ends with a line back to its start.
func WithClosed(closed bool) PathOption {
	return func(o *pathOptions) {
		o.closed = closed
	}
}

// WithLineToComplexShapes sets whether arcs are connected to the preceding
// part by a line. By default, they start a new subpath.
func WithLineToComplexShapes(b bool) PathOption {
	return func(o *pathOptions) {
		o.lineToComplexShapes = b
	}
}

// Path is a sequence of parts forming one or more subpaths.
//
// A path's drawing commands and points are derived from its parts and can't
// be set directly.
type Path struct {
	parts []Part
	opts  pathOptions
}

var _ Shape = Path{}

// NewPath returns a path consisting of parts. It returns an error wrapping
// ErrInvalidWindingRule if the winding rule isn't valid.
func NewPath(parts []Part, opts ...PathOption) (Path, error) {
	var o pathOptions
	for _, opt := range opts {
		opt(&o)
	}
	if !o.rule.Valid() {
		return Path{}, fmt.Errorf("%w: %d", ErrInvalidWindingRule, int(o.rule))
	}
	return Path{
		parts: slices.Clone(parts),
		opts:  o,
	}, nil
}

// Parts returns a copy of the path's parts.
func (p Path) Parts() []Part {
	return slices.Clone(p.parts)
}

func (p Path) WindingRule() WindingRule  { return p.opts.rule }
func (p Path) Closed() bool              { return p.opts.closed }
func (p Path) LineToComplexShapes() bool { return p.opts.lineToComplexShapes }

// DrawingCommands returns the path as drawing commands.
//
// The first command is always a MoveTo; a path beginning with a line or
// curve moves to the part's end point instead. Closed paths end with a
// ClosePath.
func (p Path) DrawingCommands() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		first := true
		emit := func(el PathElement) bool {
			if first {
				first = false
				if el.Kind != MoveToKind {
					end, _ := el.End()
					el = MoveTo(end)
				}
			}
			return yield(el)
		}
		for _, part := range p.parts {
			if !part.elements(p.opts.lineToComplexShapes && !first, emit) {
				return
			}
		}
		if p.opts.closed && !first {
			yield(ClosePath())
		}
	}
}

// Points returns the points of all drawing commands, control points
// included, in order.
func (p Path) Points() []Point {
	var out []Point
	for el := range p.DrawingCommands() {
		out = append(out, el.Points()...)
	}
	return out
}

// DisconnectedSegments returns the path's outline as independent shapes:
// lines, quadratic and cubic Béziers that carry their own start points, and
// arcs. Points that only start subpaths contribute no shape. Closed paths
// end with a line back to the path's first point.
func (p Path) DisconnectedSegments() []Shape {
	var out []Shape
	var cur, first Point
	started := false
	for _, part := range p.parts {
		if !started {
			started = true
			if part.Kind != ArcPartKind {
				cur = part.end()
				first = cur
				continue
			}
			first = part.Arc.StartPoint()
			cur = first
		}
		switch part.Kind {
		case PointPartKind:
		case LinePartKind:
			out = append(out, Line{cur, part.P0})
		case QuadPartKind:
			out = append(out, QuadBez{cur, part.P0, part.P1})
		case CubicPartKind:
			out = append(out, CubicBez{cur, part.P0, part.P1, part.P2})
		case ArcPartKind:
			if sp := part.Arc.StartPoint(); p.opts.lineToComplexShapes && sp != cur {
				out = append(out, Line{cur, sp})
			}
			out = append(out, part.Arc)
		}
		cur = part.end()
	}
	if p.opts.closed && started && cur != first {
		out = append(out, Line{cur, first})
	}
	return out
}

// pointCrossings sums the crossings of a ray cast from pt towards negative x
// with all subpaths, closing each one with a line.
func (p Path) pointCrossings(pt Point) int {
	var cur, mov Point
	started := false
	crossings := 0
	for el := range p.DrawingCommands() {
		switch el.Kind {
		case MoveToKind:
			if started && cur.Y != mov.Y {
				crossings += PointCrossingsForLine(pt, cur, mov)
			}
			mov, cur = el.P0, el.P0
			started = true
		case LineToKind:
			crossings += PointCrossingsForLine(pt, cur, el.P0)
			cur = el.P0
		case QuadToKind:
			crossings += PointCrossingsForQuad(pt, cur, el.P0, el.P1, 0)
			cur = el.P1
		case CubicToKind:
			crossings += PointCrossingsForCubic(pt, cur, el.P0, el.P1, el.P2, 0)
			cur = el.P2
		case ClosePathKind:
			if cur.Y != mov.Y {
				crossings += PointCrossingsForLine(pt, cur, mov)
			}
			cur = mov
		}
	}
	if started && cur.Y != mov.Y {
		crossings += PointCrossingsForLine(pt, cur, mov)
	}
	return crossings
}

// rectCrossings is like pointCrossings but accumulates crossings through the
// left shadow of r, stopping early at RectIntersects.
func (p Path) rectCrossings(r Rect) int {
	var cur, mov Point
	started := false
	crossings := 0
	for el := range p.DrawingCommands() {
		switch el.Kind {
		case MoveToKind:
			if started && cur != mov {
				crossings = RectCrossingsForLine(crossings, r, cur, mov)
			}
			mov, cur = el.P0, el.P0
			started = true
		case LineToKind:
			crossings = RectCrossingsForLine(crossings, r, cur, el.P0)
			cur = el.P0
		case QuadToKind:
			crossings = RectCrossingsForQuad(crossings, r, cur, el.P0, el.P1, 0)
			cur = el.P1
		case CubicToKind:
			crossings = RectCrossingsForCubic(crossings, r, cur, el.P0, el.P1, el.P2, 0)
			cur = el.P2
		case ClosePathKind:
			if cur != mov {
				crossings = RectCrossingsForLine(crossings, r, cur, mov)
			}
			cur = mov
		}
		if crossings == RectIntersects {
			return crossings
		}
	}
	if started && cur != mov {
		crossings = RectCrossingsForLine(crossings, r, cur, mov)
	}
	return crossings
}

// Contains reports whether pt lies inside the path according to its winding
// rule. Every subpath is implicitly closed.
func (p Path) Contains(pt Point) bool {
	if !pt.IsFinite() {
		return false
	}
	n := 0
	for range p.DrawingCommands() {
		n++
		if n == 2 {
			break
		}
	}
	if n < 2 {
		return false
	}
	return p.pointCrossings(pt)&p.opts.rule.pointMask() != 0
}

// OutlineContains reports whether pt lies on the outline of any of the
// path's disconnected segments.
func (p Path) OutlineContains(pt Point, tolerance float64) bool {
	if !pt.IsFinite() {
		return false
	}
	for _, s := range p.DisconnectedSegments() {
		if s.OutlineContains(pt, tolerance) {
			return true
		}
	}
	return false
}

// IntersectsRect reports whether the filled path overlaps r.
func (p Path) IntersectsRect(r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	crossings := p.rectCrossings(r)
	return crossings == RectIntersects || crossings&p.opts.rule.rectMask() != 0
}

// BoundingBox returns the bounding box of all points of the path's drawing
// commands, control points included. It is the zero rectangle for empty
// paths.
func (p Path) BoundingBox() Rect {
	bbox, _ := ControlBox(p.DrawingCommands())
	return bbox
}

// Center returns the center of the path's bounding box.
func (p Path) Center() Point {
	return p.BoundingBox().Center()
}

func (p Path) MinX() float64 { return p.BoundingBox().MinX() }
func (p Path) MinY() float64 { return p.BoundingBox().MinY() }
func (p Path) MaxX() float64 { return p.BoundingBox().MaxX() }
func (p Path) MaxY() float64 { return p.BoundingBox().MaxY() }
func (p Path) Width() float64 {
	return p.BoundingBox().Width()
}
func (p Path) Height() float64 {
	return p.BoundingBox().Height()
}
