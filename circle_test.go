package shape

import (
	"testing"
)

func TestCircle(t *testing.T) {
	c := Circle{Center: Pt(10, 10), Radius: 5}
	diff(t, 10.0, c.Diameter())
	diff(t, Rect{5, 5, 15, 15}, c.BoundingBox())
	diff(t, Ellipse{X: 5, Y: 5, Width: 10, Height: 10}, c.Ellipse())
	diff(t, Circle{Center: Pt(12, 7), Radius: 5}, c.Translate(Vec2{2, -3}))

	if !c.Contains(Pt(10, 10)) {
		t.Error("circle doesn't contain its center")
	}
	if c.Contains(Pt(15, 10)) {
		t.Error("circle contains point on its outline")
	}
	if !c.OutlineContains(Pt(15, 10), 0) {
		t.Error("outline doesn't contain (15, 10)")
	}
	if !c.OutlineContains(Pt(13, 14), 0) {
		t.Error("outline doesn't contain (13, 14)")
	}
	if c.OutlineContains(Pt(12, 12), 0) {
		t.Error("outline contains interior point")
	}

	if c.IntersectsRect(Rect{14, 14, 20, 20}) {
		t.Error("circle intersects rectangle in its frame's corner")
	}
	if !c.IntersectsRect(Rect{13, 13, 20, 20}) {
		t.Error("circle doesn't intersect overlapping rectangle")
	}
}
