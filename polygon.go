package shape

import (
	"fmt"
	"slices"
)

// Polygon is a closed polygon. The last point connects back to the first.
type Polygon struct {
	Points []Point
	Rule   WindingRule
}

var _ Shape = Polygon{}

// NewPolygon returns a polygon with a copy of points. It returns an error
// wrapping ErrInvalidWindingRule if rule isn't valid.
func NewPolygon(points []Point, rule WindingRule) (Polygon, error) {
	if !rule.Valid() {
		return Polygon{}, fmt.Errorf("%w: %d", ErrInvalidWindingRule, int(rule))
	}
	return Polygon{Points: slices.Clone(points), Rule: rule}, nil
}

// Edges returns the polygon's edges, including the one from the last point
// back to the first.
func (pg Polygon) Edges() []Line {
	if len(pg.Points) == 0 {
		return nil
	}
	out := make([]Line, len(pg.Points))
	last := pg.Points[len(pg.Points)-1]
	for i, pt := range pg.Points {
		out[i] = Line{last, pt}
		last = pt
	}
	// Start with the edge leaving the first point.
	return append(out[1:], out[0])
}

// Path returns the polygon as a closed path of lines.
func (pg Polygon) Path() Path {
	parts := make([]Part, len(pg.Points))
	for i, pt := range pg.Points {
		if i == 0 {
			parts[i] = PointPart(pt)
		} else {
			parts[i] = LinePart(pt)
		}
	}
	return Path{
		parts: parts,
		opts: pathOptions{
			rule:   pg.Rule,
			closed: true,
		},
	}
}

// Contains reports whether pt lies inside the polygon according to its
// winding rule.
func (pg Polygon) Contains(pt Point) bool {
	if !pt.IsFinite() || len(pg.Points) <= 2 {
		return false
	}
	if pg.Rule == NonZero {
		return pg.Path().Contains(pt)
	}
	bbox := pg.BoundingBox()
	if pt.X < bbox.X0 || pt.X > bbox.X1 || pt.Y < bbox.Y0 || pt.Y > bbox.Y1 {
		return false
	}

	// Count the edges crossed by a ray cast towards negative x. Each edge's
	// y range is half-open so that shared vertices count once.
	hits := 0
	last := pg.Points[len(pg.Points)-1]
	for _, cur := range pg.Points {
		p0, p1 := last, cur
		last = cur
		if p0.Y == p1.Y {
			continue
		}
		if pt.X < p0.X && pt.X < p1.X {
			continue
		}
		if pt.Y < min(p0.Y, p1.Y) || pt.Y >= max(p0.Y, p1.Y) {
			continue
		}
		if pt.X >= p0.X && pt.X >= p1.X {
			hits++
			continue
		}
		xIntercept := p0.X + (pt.Y-p0.Y)*(p1.X-p0.X)/(p1.Y-p0.Y)
		if pt.X >= xIntercept {
			hits++
		}
	}
	return hits&1 != 0
}

// OutlineContains reports whether pt lies on one of the polygon's edges.
func (pg Polygon) OutlineContains(pt Point, tolerance float64) bool {
	if !pt.IsFinite() {
		return false
	}
	for _, edge := range pg.Edges() {
		if edge.OutlineContains(pt, tolerance) {
			return true
		}
	}
	return false
}

// IntersectsRect reports whether the filled polygon overlaps r.
func (pg Polygon) IntersectsRect(r Rect) bool {
	return pg.Path().IntersectsRect(r)
}

// BoundingBox returns the bounding box of the polygon's points. It is the
// zero rectangle for polygons without points.
func (pg Polygon) BoundingBox() Rect {
	if len(pg.Points) == 0 {
		return Rect{}
	}
	bbox := pg.Points[0].BoundingBox()
	for _, pt := range pg.Points[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

func (pg Polygon) Center() Point {
	return pg.BoundingBox().Center()
}
