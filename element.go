package shape

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath with a line back to its start.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is a single drawing command.
//
// A valid command stream has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s(%s)", el.Kind, el.P0)
	case QuadToKind:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	default:
		return fmt.Sprintf("%s()", el.Kind)
	}
}

// Points returns the points the element carries: one for MoveTo and LineTo,
// two for QuadTo, three for CubicTo and none for ClosePath.
func (el PathElement) Points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case QuadToKind:
		return []Point{el.P0, el.P1}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// End returns the point the element ends at. It reports false for ClosePath,
// which ends wherever its subpath started.
func (el PathElement) End() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// ControlBox returns the smallest rectangle enclosing all points of all
// elements, control points included. It reports false if there are no
// points.
func ControlBox(seq iter.Seq[PathElement]) (Rect, bool) {
	var bbox Rect
	found := false
	for el := range seq {
		for _, pt := range el.Points() {
			if !found {
				bbox = Rect{pt.X, pt.Y, pt.X, pt.Y}
				found = true
			} else {
				bbox = bbox.UnionPoint(pt)
			}
		}
	}
	return bbox, found
}
