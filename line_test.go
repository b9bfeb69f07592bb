package shape

import (
	"math"
	"testing"
)

func TestLineIsInf(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("line is infinite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}

	if !(Line{Pt(0.0, 0.0), Pt(0.0, math.Inf(1))}).IsInf() {
		t.Errorf("line is finite but shouldn't be")
	}
}

func TestRelativeCCW(t *testing.T) {
	p1 := Pt(0, 0)
	p2 := Pt(10, 0)
	tests := []struct {
		pt   Point
		want int
	}{
		// Below the line in a y-down space.
		{Pt(5, 5), -1},
		{Pt(5, -5), 1},
		// Collinear.
		{Pt(5, 0), 0},
		{Pt(0, 0), 0},
		{Pt(10, 0), 0},
		{Pt(-1, 0), -1},
		{Pt(11, 0), 1},
	}
	for _, tt := range tests {
		if got := RelativeCCW(p1, p2, tt.pt); got != tt.want {
			t.Errorf("RelativeCCW(%s, %s, %s) = %d, want %d", p1, p2, tt.pt, got, tt.want)
		}
	}
}

func TestPointSegmentDistanceSquared(t *testing.T) {
	p1 := Pt(0, 0)
	p2 := Pt(10, 0)
	tests := []struct {
		pt   Point
		want float64
	}{
		{Pt(5, 0), 0},
		{Pt(5, 3), 9},
		{Pt(-3, 4), 25},
		{Pt(13, -4), 25},
	}
	for _, tt := range tests {
		if got := PointSegmentDistanceSquared(p1, p2, tt.pt); got != tt.want {
			t.Errorf("distance² of %s: got %v, want %v", tt.pt, got, tt.want)
		}
	}

	// Degenerate segments measure the distance to their single point.
	if got := PointSegmentDistanceSquared(p1, p1, Pt(3, 4)); got != 25 {
		t.Errorf("got %v, want 25", got)
	}
}

func TestPointCrossingsForLine(t *testing.T) {
	up := [2]Point{Pt(0, 0), Pt(0, 10)}
	down := [2]Point{Pt(0, 10), Pt(0, 0)}
	tests := []struct {
		pt   Point
		line [2]Point
		want int
	}{
		{Pt(5, 5), up, 1},
		{Pt(5, 5), down, -1},
		{Pt(-5, 5), up, 0},
		// The lower y is included, the upper y isn't.
		{Pt(5, 0), up, 1},
		{Pt(5, 10), up, 0},
		{Pt(5, 11), up, 0},
		// Points on the line count as crossing it.
		{Pt(0, 5), up, 1},
	}
	for _, tt := range tests {
		if got := PointCrossingsForLine(tt.pt, tt.line[0], tt.line[1]); got != tt.want {
			t.Errorf("crossings of %s with %v: got %d, want %d", tt.pt, tt.line, got, tt.want)
		}
	}

	diagonal := [2]Point{Pt(0, 0), Pt(10, 10)}
	if got := PointCrossingsForLine(Pt(6, 5), diagonal[0], diagonal[1]); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := PointCrossingsForLine(Pt(4, 5), diagonal[0], diagonal[1]); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestRectCrossingsForLine(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	tests := []struct {
		name   string
		p0, p1 Point
		want   int
	}{
		{"through shadow upwards", Pt(0, 0), Pt(0, 30), 2},
		{"through shadow downwards", Pt(0, 30), Pt(0, 0), -2},
		{"into shadow", Pt(0, 0), Pt(0, 15), 1},
		{"right of rect", Pt(25, 0), Pt(25, 30), 0},
		{"above rect", Pt(0, 0), Pt(30, 5), 0},
		{"end point inside", Pt(0, 0), Pt(15, 15), RectIntersects},
		{"crossing rect", Pt(0, 15), Pt(30, 15), RectIntersects},
		{"leaving shadow", Pt(0, 12), Pt(12, 0), -1},
		{"passing rect's corner", Pt(12, 0), Pt(30, 18), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectCrossingsForLine(0, r, tt.p0, tt.p1); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLineContains(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 10)}
	if !l.Contains(Pt(5, 5)) {
		t.Error("line doesn't contain its midpoint")
	}
	if l.Contains(Pt(5, 5.1)) {
		t.Error("line contains a point off of it")
	}
	if !l.OutlineContains(Pt(5, 5.1), 0.1) {
		t.Error("line doesn't contain a point within tolerance")
	}
	if l.Contains(Pt(11, 11)) {
		t.Error("line contains a point beyond its end")
	}
	if l.Contains(Pt(math.NaN(), 5)) {
		t.Error("line contains NaN")
	}
}

func TestLineIntersectsLine(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	if !hLine.IntersectsLine(vLine) {
		t.Error("crossing lines don't intersect")
	}
	vLine2 := Line{Pt(110.0, -10.0), Pt(110.0, 10.0)}
	if hLine.IntersectsLine(vLine2) {
		t.Error("disjoint lines intersect")
	}
	touching := Line{Pt(100, 0), Pt(100, 10)}
	if !hLine.IntersectsLine(touching) {
		t.Error("touching lines don't intersect")
	}
}

func TestLineIntersectsRect(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	if !(Line{Pt(0, 0), Pt(30, 30)}).IntersectsRect(r) {
		t.Error("diagonal through rect doesn't intersect it")
	}
	if !(Line{Pt(0, 10), Pt(30, 10)}).IntersectsRect(r) {
		t.Error("line along rect's edge doesn't intersect it")
	}
	if (Line{Pt(0, 0), Pt(30, 5)}).IntersectsRect(r) {
		t.Error("line above rect intersects it")
	}
	if (Line{Pt(0, 0), Pt(30, 30)}).IntersectsRect(Rect{10, 10, 10, 20}) {
		t.Error("line intersects empty rect")
	}
}

func TestLineSubdivisions(t *testing.T) {
	l := Line{Pt(0, 0), Pt(8, 0)}
	got := l.Subdivisions(2)
	want := []Line{
		{Pt(0, 0), Pt(2, 0)},
		{Pt(2, 0), Pt(4, 0)},
		{Pt(4, 0), Pt(6, 0)},
		{Pt(6, 0), Pt(8, 0)},
	}
	diff(t, want, got)
}
