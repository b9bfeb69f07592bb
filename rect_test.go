package shape

import (
	"math"
	"slices"
	"testing"
)

func TestNewRect(t *testing.T) {
	diff(t, Rect{1, 2, 4, 6}, NewRect(1, 2, 3, 4))
	diff(t, Rect{1, 2, 4, 5}, NewSquare(1, 2, 3))
	diff(t, Rect{1, 2, 4, 6}, NewRectFromPoints(Pt(4, 2), Pt(1, 6)))
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{NewRect(0, 0, 10, 10), false},
		{NewRect(0, 0, 0, 10), true},
		{NewRect(0, 0, 10, -1), true},
		{NewRect(0, 0, math.NaN(), 10), true},
		{Rect{0, 0, math.Inf(1), 10}, true},
		{Rect{math.Inf(-1), math.Inf(-1), 0, 0}, true},
	}
	for _, tt := range tests {
		if got := tt.r.IsEmpty(); got != tt.want {
			t.Errorf("%v.IsEmpty() = %t, want %t", tt.r, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 10)
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(15, 15), true},
		{Pt(10, 10), true},
		{Pt(30, 20), true},
		{Pt(30.001, 20), false},
		{Pt(5, 15), false},
		{Pt(math.NaN(), 15), false},
		{Pt(15, math.Inf(1)), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}

	if NewRect(10, 10, 0, 10).Contains(Pt(10, 15)) {
		t.Error("empty rectangle contains a point")
	}
}

func TestRectOutlineContainsCorners(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 10, 10),
		NewRect(-3.5, 7.25, 0.5, 100),
		NewRect(1e6, -1e6, 1e-3, 1e-3),
	}
	for _, r := range rects {
		for _, edge := range r.Edges() {
			if !r.OutlineContains(edge.P0, 0) {
				t.Errorf("%v: outline doesn't contain corner %s", r, edge.P0)
			}
			if !r.OutlineContains(edge.Eval(0.5), 0) {
				t.Errorf("%v: outline doesn't contain %s", r, edge.Eval(0.5))
			}
		}
	}

	r := NewRect(0, 0, 10, 10)
	if r.OutlineContains(Pt(5, 5), 0) {
		t.Error("outline contains the center")
	}
	if !r.OutlineContains(Pt(5, 9), 1) {
		t.Error("outline doesn't contain point within tolerance")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(0, 0, 2, 1)
	want := [4]Line{
		{Pt(0, 0), Pt(2, 0)},
		{Pt(2, 0), Pt(2, 1)},
		{Pt(2, 1), Pt(0, 1)},
		{Pt(0, 1), Pt(0, 0)},
	}
	diff(t, want, r.Edges())
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(2, 2, 1, 1), true},
		{"containing", NewRect(-5, -5, 20, 20), true},
		{"touching", NewRect(10, 0, 5, 5), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"empty", NewRect(5, 5, 0, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.o); got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
			if got := tt.o.IntersectsRect(r); got != tt.want {
				t.Errorf("reversed: got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestRectIntersectsLine(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		l    Line
		want bool
	}{
		{"inside", Line{Pt(2, 2), Pt(3, 3)}, true},
		{"crossing", Line{Pt(-5, 5), Pt(15, 5)}, true},
		{"diagonal", Line{Pt(-5, -5), Pt(15, 15)}, true},
		{"ending inside", Line{Pt(-5, 15), Pt(5, 5)}, true},
		{"touching corners", Line{Pt(-5, 15), Pt(15, -5)}, true},
		{"cutting corner", Line{Pt(-5, 14), Pt(14, -5)}, true},
		{"outside", Line{Pt(-5, 26), Pt(26, -5)}, false},
		{"beside", Line{Pt(11, -5), Pt(11, 15)}, false},
		{"NaN", Line{Pt(math.NaN(), 0), Pt(5, 5)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IntersectsLine(tt.l); got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	r := NewRect(0, 0, 1, 1).Union(NewRect(5, -2, 1, 1))
	diff(t, Rect{0, -2, 6, 1}, r)
	diff(t, Rect{0, -2, 6, 3}, r.UnionPoint(Pt(3, 3)))
	diff(t, Rect{-1, -4, 7, 3}, r.Inflate(1, 2))
}

func TestRectPathElements(t *testing.T) {
	got := slices.Collect(NewRect(0, 0, 2, 1).PathElements())
	want := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(2, 0)),
		LineTo(Pt(2, 1)),
		LineTo(Pt(0, 1)),
		ClosePath(),
	}
	diff(t, want, got)
}
