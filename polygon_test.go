package shape

import (
	"errors"
	"math"
	"testing"
)

func pentagram(rule WindingRule) Polygon {
	var pts []Point
	for i := range 5 {
		angle := math.Pi/2 + float64(2*i%5)*2*math.Pi/5
		pts = append(pts, Pt(100*math.Cos(angle), -100*math.Sin(angle)))
	}
	return Polygon{Points: pts, Rule: rule}
}

func TestNewPolygon(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	pg, err := NewPolygon(pts, NonZero)
	if err != nil {
		t.Fatal(err)
	}
	pts[0] = Pt(5, 5)
	diff(t, Pt(0, 0), pg.Points[0])

	if _, err := NewPolygon(pts, WindingRule(-1)); !errors.Is(err, ErrInvalidWindingRule) {
		t.Errorf("got error %v, want %v", err, ErrInvalidWindingRule)
	}
}

func TestPolygonContains(t *testing.T) {
	tri := Polygon{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(0, 10)}}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(2, 2), true},
		{Pt(4.9, 4.9), true},
		{Pt(6, 6), false},
		{Pt(-1, 1), false},
		{Pt(2, 20), false},
		{Pt(math.NaN(), 2), false},
	}
	for _, tt := range tests {
		if got := tri.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}

	line := Polygon{Points: []Point{Pt(0, 0), Pt(10, 10)}}
	if line.Contains(Pt(5, 5)) {
		t.Error("two-point polygon contains a point")
	}
}

func TestPolygonWindingRules(t *testing.T) {
	if pentagram(EvenOdd).Contains(Pt(0, 0)) {
		t.Error("even-odd pentagram contains its center")
	}
	if !pentagram(NonZero).Contains(Pt(0, 0)) {
		t.Error("non-zero pentagram doesn't contain its center")
	}
	// A point in one of the star's tips.
	tip := Pt(0, -80)
	if !pentagram(EvenOdd).Contains(tip) || !pentagram(NonZero).Contains(tip) {
		t.Errorf("pentagram doesn't contain %s", tip)
	}
}

func TestPolygonContainsMatchesPath(t *testing.T) {
	polys := []Polygon{
		pentagram(EvenOdd),
		{Points: []Point{Pt(-50, -50), Pt(60, -40), Pt(0, 0), Pt(70, 70), Pt(-40, 30)}},
		{Points: []Point{Pt(-100, 0), Pt(0, -100), Pt(100, 0), Pt(0, 100)}},
	}
	for i, pg := range polys {
		p := pg.Path()
		for y := -110.0; y <= 110; y += 5 {
			for x := -110.0; x <= 110; x += 5 {
				pt := Pt(x, y)
				if got, want := pg.Contains(pt), p.Contains(pt); got != want {
					t.Errorf("polygon %d: Contains(%s) = %t, path says %t", i, pt, got, want)
				}
			}
		}
	}
}

func TestPolygonEdges(t *testing.T) {
	pg := Polygon{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}}
	want := []Line{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(10, 10)},
		{Pt(10, 10), Pt(0, 10)},
		{Pt(0, 10), Pt(0, 0)},
	}
	diff(t, want, pg.Edges())
	if got := (Polygon{}).Edges(); got != nil {
		t.Errorf("empty polygon has edges %v", got)
	}

	if !pg.OutlineContains(Pt(0, 5), 0) {
		t.Error("outline doesn't contain point on closing edge")
	}
	if !pg.OutlineContains(Pt(5, 0.5), 0.5) {
		t.Error("outline doesn't contain point within tolerance")
	}
	if pg.OutlineContains(Pt(5, 5), 0) {
		t.Error("outline contains the center")
	}

	diff(t, Rect{0, 0, 10, 10}, pg.BoundingBox())
	diff(t, Pt(5, 5), pg.Center())
}

func TestPolygonIntersectsRect(t *testing.T) {
	tri := Polygon{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(0, 10)}}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{1, 1, 2, 2}, true},
		{"across hypotenuse", Rect{4, 4, 6, 6}, true},
		{"beyond hypotenuse", Rect{8, 8, 9, 9}, false},
		{"containing", Rect{-1, -1, 11, 11}, true},
		{"left", Rect{-5, 1, -1, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.IntersectsRect(tt.r); got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
		})
	}
}
