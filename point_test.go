package shape

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(10, -4)), Pt(5, -2))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(-1e300, 1e300), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.Inf(1)), false},
		{Pt(math.Inf(-1), math.NaN()), false},
	}
	for _, tt := range tests {
		if got := tt.pt.IsFinite(); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestPointContains(t *testing.T) {
	pt := Pt(3, 4)
	if !pt.Contains(Pt(3, 4)) {
		t.Error("point doesn't contain itself")
	}
	if pt.Contains(Pt(3, 4.0001)) {
		t.Error("point contains a different point")
	}
	if !pt.OutlineContains(Pt(3, 4.5), 0.5) {
		t.Error("point doesn't contain a point within tolerance")
	}
	if pt.OutlineContains(Pt(3, 5), 0.5) {
		t.Error("point contains a point outside of tolerance")
	}
	nan := Pt(math.NaN(), math.NaN())
	if nan.Contains(nan) {
		t.Error("NaN point contains itself")
	}
}
