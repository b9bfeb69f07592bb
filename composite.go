package shape

// Composite is the union of its shapes.
type Composite []Shape

var _ Shape = Composite(nil)

func (c Composite) Contains(pt Point) bool {
	for _, s := range c {
		if s.Contains(pt) {
			return true
		}
	}
	return false
}

func (c Composite) OutlineContains(pt Point, tolerance float64) bool {
	for _, s := range c {
		if s.OutlineContains(pt, tolerance) {
			return true
		}
	}
	return false
}

func (c Composite) IntersectsRect(r Rect) bool {
	for _, s := range c {
		if s.IntersectsRect(r) {
			return true
		}
	}
	return false
}

// Bounds returns the union of the members' bounding boxes. It reports false
// if the composite has no members.
func (c Composite) Bounds() (Rect, bool) {
	if len(c) == 0 {
		return Rect{}, false
	}
	bbox := c[0].BoundingBox().Abs()
	for _, s := range c[1:] {
		bbox = bbox.Union(s.BoundingBox().Abs())
	}
	return bbox, true
}

// BoundingBox is like Bounds but returns the zero rectangle for empty
// composites.
func (c Composite) BoundingBox() Rect {
	bbox, _ := c.Bounds()
	return bbox
}

// Center returns the center of the composite's bounds. It reports false if
// the composite has no members.
func (c Composite) Center() (Point, bool) {
	bbox, ok := c.Bounds()
	if !ok {
		return Point{}, false
	}
	return bbox.Center(), true
}
