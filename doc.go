// Package shape answers two questions about 2D shapes: whether a shape
// contains a point and whether it intersects an axis-aligned rectangle.
//
// # Shapes
//
// Every shape implements [Shape]. The package provides the following shapes:
//   - [Point]
//   - [Line]
//   - [QuadBez]
//   - [CubicBez]
//   - [Rect]
//   - [Arc], including [Ellipse] and [Circle], which behave like full arcs
//   - [Polygon]
//   - [Path], a sequence of [Part] values forming one or more subpaths
//   - [Composite], the union of other shapes
//
// Coordinates are y-down: y grows towards the bottom. Angles of arcs are in
// degrees and grow counterclockwise on screen, that is from positive x
// towards negative y.
//
// # Containment
//
// [Shape.Contains] tests whether a point lies in the filled interior of a
// shape. Curves are filled as if closed by their chord and arcs as described
// by their [ArcType]. Polygons and paths decide what is inside using their
// [WindingRule].
//
// [Shape.OutlineContains] tests whether a point lies on a shape's outline,
// which has a thickness of [MinOutlineDistance]. A tolerance widens the
// outline further. [Contains] and [ContainsXY] select between the two tests
// with [ContainsOptions].
//
// Points with NaN or infinite coordinates are never contained.
//
// # Rectangle intersection
//
// [Shape.IntersectsRect] tests whether the filled shape and a rectangle
// overlap. Empty rectangles, and rectangles with NaN or infinite
// coordinates, intersect nothing.
//
// Curves and paths are tested by casting the rectangle's left edge towards
// negative x and counting how often the outline crosses the swept band, its
// "shadow". The crossing functions [PointCrossingsForLine],
// [PointCrossingsForQuad], [PointCrossingsForCubic] and their rectangle
// counterparts are exported for building custom shapes. They return
// [RectIntersects] as soon as the outline enters the rectangle.
//
// Curves are subdivided until their pieces are monotonic relative to the
// query, but at most [MaxSubdivisionLevel] times.
//
// # Building shapes
//
// Rectangles, arcs, ellipses and circles can be built from a mix of
// dimensions using [BuildRect], [BuildSquare], [BuildArc], [BuildEllipse]
// and [BuildCircle]. Values that describe the same dimension must agree;
// otherwise, the functions return an error wrapping [ErrConflict].
//
// # Logging
//
// The package logs nothing by default. Use [SetLogger] to receive debug
// diagnostics about curve subdivision.
package shape
