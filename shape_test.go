package shape

import (
	"errors"
	"math"
	"testing"
)

func testShapes() map[string]Shape {
	return map[string]Shape{
		"point":     Pt(5, 5),
		"line":      Line{Pt(0, 0), Pt(10, 10)},
		"quad":      QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)},
		"cubic":     CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)},
		"rect":      NewRect(2, 2, 6, 6),
		"arc":       Arc{Type: PieArc, Width: 10, Height: 10, Start: 30, Extent: 200},
		"ellipse":   Ellipse{X: 0, Y: 2, Width: 10, Height: 6},
		"circle":    Circle{Center: Pt(5, 5), Radius: 4},
		"polygon":   Polygon{Points: []Point{Pt(0, 0), Pt(10, 2), Pt(3, 9)}},
		"composite": Composite{Pt(1, 1), NewRect(6, 6, 3, 3)},
	}
}

func TestContainsXYMatchesContains(t *testing.T) {
	opts := []ContainsOptions{
		{},
		{Outline: true},
		{Outline: true, Tolerance: 0.75},
	}
	for name, s := range testShapes() {
		for _, opt := range opts {
			for y := -1.0; y <= 11; y += 0.5 {
				for x := -1.0; x <= 11; x += 0.5 {
					got := ContainsXY(s, x, y, opt)
					var want bool
					if opt.Outline {
						want = s.OutlineContains(Pt(x, y), opt.Tolerance)
					} else {
						want = s.Contains(Pt(x, y))
					}
					if got != want {
						t.Errorf("%s %+v: ContainsXY(%v, %v) = %t, method says %t", name, opt, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestContainsOptions(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !Contains(r, Pt(5, 5), ContainsOptions{}) {
		t.Error("fill test doesn't contain the center")
	}
	if Contains(r, Pt(5, 5), ContainsOptions{Outline: true}) {
		t.Error("outline test contains the center")
	}
	if !Contains(r, Pt(5, 10.5), ContainsOptions{Outline: true, Tolerance: 1}) {
		t.Error("outline test with tolerance doesn't contain nearby point")
	}
	// Tolerance is ignored for fill tests.
	if Contains(r, Pt(5, 10.5), ContainsOptions{Tolerance: 1}) {
		t.Error("fill test used the tolerance")
	}
}

func TestNonFinitePoints(t *testing.T) {
	bad := []Point{
		Pt(math.NaN(), 5),
		Pt(5, math.NaN()),
		Pt(math.Inf(1), 5),
		Pt(5, math.Inf(-1)),
	}
	for name, s := range testShapes() {
		for _, pt := range bad {
			if s.Contains(pt) {
				t.Errorf("%s contains %s", name, pt)
			}
			if s.OutlineContains(pt, 1) {
				t.Errorf("%s outline contains %s", name, pt)
			}
		}
	}
}

func TestNonFiniteRects(t *testing.T) {
	inf := math.Inf(1)
	bad := []Rect{
		{0, 0, inf, inf},
		{-inf, -inf, inf, inf},
		{-inf, 0, 10, 10},
		{0, -inf, 10, 10},
		{math.NaN(), 0, 10, 10},
		{0, 0, 10, math.NaN()},
	}
	for name, s := range testShapes() {
		for _, r := range bad {
			if s.IntersectsRect(r) {
				t.Errorf("%s intersects %v", name, r)
			}
		}
	}
	if (Line{Pt(-5, 5), Pt(15, 5)}).IntersectsRect(Rect{0, 0, inf, 10}) {
		t.Error("line intersects infinite rectangle")
	}
}

func TestBoundingBoxContainsFill(t *testing.T) {
	for name, s := range testShapes() {
		bbox := s.BoundingBox()
		for y := -1.0; y <= 11; y += 0.25 {
			for x := -1.0; x <= 11; x += 0.25 {
				pt := Pt(x, y)
				if s.Contains(pt) && !bbox.Abs().Inflate(1e-9, 1e-9).Contains(pt) {
					t.Errorf("%s contains %s outside of its bounding box %v", name, pt, bbox)
				}
			}
		}
	}
}

func TestWindingRule(t *testing.T) {
	diff(t, "even-odd", EvenOdd.String())
	diff(t, "non-zero", NonZero.String())
	diff(t, "WindingRule(5)", WindingRule(5).String())

	tests := []struct {
		in   string
		want WindingRule
		err  error
	}{
		{"even-odd", EvenOdd, nil},
		{"EvenOdd", EvenOdd, nil},
		{"WIND_EVEN_ODD", EvenOdd, nil},
		{"non-zero", NonZero, nil},
		{"nonzero", NonZero, nil},
		{"wind_non_zero", NonZero, nil},
		{"odd", 0, ErrInvalidWindingRule},
		{"", 0, ErrInvalidWindingRule},
	}
	for _, tt := range tests {
		got, err := ParseWindingRule(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseWindingRule(%q): got error %v, want %v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWindingRule(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
