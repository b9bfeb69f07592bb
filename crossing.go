package shape

import (
	"math"
)

// MaxSubdivisionLevel is the deepest level to which curves get subdivided when
// counting crossings. A float64 has 52 bits of mantissa; halving a curve more
// often than that no longer changes its control points, so beyond this level
// curves are treated as the straight line between their end points.
const MaxSubdivisionLevel = 52

// RectIntersects is the crossing count returned by the RectCrossingsFor*
// functions once a segment is known to intersect the interior of the
// rectangle. It is never produced by counting actual crossings.
const RectIntersects = math.MinInt

// RelativeCCW reports on which side of the directed segment p1→p2 the point p
// lies. It returns 1 if p is counterclockwise from the segment in a y-up space
// (clockwise in y-down space), -1 if it is on the other side, and 0 if p lies on
// the segment.
//
// Collinear points are ordered along the line: a point beyond p2 returns 1, a
// point before p1 returns -1, so that the result is consistent for points on
// the infinite extension of the segment.
func RelativeCCW(p1, p2, p Point) int {
	d := p2.Sub(p1)
	v := p.Sub(p1)
	ccw := v.X*d.Y - v.Y*d.X
	if ccw == 0 {
		// p is collinear. Project it onto the segment to see whether it is
		// before p1, between p1 and p2, or beyond p2.
		ccw = v.Dot(d)
		if ccw > 0 {
			// Beyond p1; measure relative to p2.
			ccw = p.Sub(p2).Dot(d)
			if ccw < 0 {
				ccw = 0
			}
		}
	}
	switch {
	case ccw < 0:
		return -1
	case ccw > 0:
		return 1
	default:
		return 0
	}
}

// PointSegmentDistanceSquared returns the squared distance from p to the
// closest point on the closed segment p1–p2.
func PointSegmentDistanceSquared(p1, p2, p Point) float64 {
	d := p2.Sub(p1)
	v := p.Sub(p1)
	var projLenSq float64
	if dot := v.Dot(d); dot > 0 {
		// Measure from p2 instead so that points beyond p2 project onto it.
		v = d.Sub(v)
		if dot = v.Dot(d); dot > 0 {
			projLenSq = dot * dot / d.Hypot2()
		}
	}
	lenSq := v.Hypot2() - projLenSq
	if lenSq < 0 {
		lenSq = 0
	}
	return lenSq
}

// PointSegmentDistance returns the distance from p to the closest point on the
// closed segment p1–p2.
func PointSegmentDistance(p1, p2, p Point) float64 {
	return math.Sqrt(PointSegmentDistanceSquared(p1, p2, p))
}

// PointCrossingsForLine returns the number of times a ray cast from pt towards
// negative x crosses the line p0–p1. The result is +1 for lines that increase in
// y, -1 for lines that decrease, and 0 if the ray misses.
//
// The y range of the line is half-open: a ray at the line's lower y counts, one
// at its upper y doesn't. This way, rays through a vertex shared by two
// consecutive lines are counted exactly once.
func PointCrossingsForLine(pt, p0, p1 Point) int {
	px, py := pt.Splat()
	x0, y0 := p0.Splat()
	x1, y1 := p1.Splat()
	if py < y0 && py < y1 {
		return 0
	}
	if py >= y0 && py >= y1 {
		return 0
	}
	// y0 != y1 from here on.
	if px < x0 && px < x1 {
		return 0
	}
	sign := 1
	if y1 < y0 {
		sign = -1
	}
	if px >= x0 && px >= x1 {
		return sign
	}
	xIntercept := x0 + (py-y0)*(x1-x0)/(y1-y0)
	if px < xIntercept {
		return 0
	}
	return sign
}

// RectCrossingsForLine accumulates the crossings of the line p0–p1 through the
// left shadow of r, that is the band of r's y range extending to negative
// infinity from r's left edge. A line passing fully through the shadow adds ±2,
// one that enters or leaves it adds ±1.
//
// If the line touches the interior of r, RectIntersects is returned instead.
// r is expected to have non-negative width and height.
func RectCrossingsForLine(crossings int, r Rect, p0, p1 Point) int {
	x0, y0 := p0.Splat()
	x1, y1 := p1.Splat()
	if y0 >= r.Y1 && y1 >= r.Y1 {
		return crossings
	}
	if y0 <= r.Y0 && y1 <= r.Y0 {
		return crossings
	}
	if x0 >= r.X1 && x1 >= r.X1 {
		return crossings
	}
	if x0 <= r.X0 && x1 <= r.X0 {
		// The line is entirely to the left of the rectangle and overlaps its
		// y range, so it is at least partially in the shadow.
		return shadowCrossingsForLine(crossings, r, y0, y1)
	}
	// Both ranges overlap by a non-empty amount.
	if r.containsStrict(p0) || r.containsStrict(p1) {
		return RectIntersects
	}
	// Clip the line to the rectangle's y range and see where the
	// clipped x coordinates fall.
	xi0 := x0
	if y0 < r.Y0 {
		xi0 += (r.Y0 - y0) * (x1 - x0) / (y1 - y0)
	} else if y0 > r.Y1 {
		xi0 += (r.Y1 - y0) * (x1 - x0) / (y1 - y0)
	}
	xi1 := x1
	if y1 < r.Y0 {
		xi1 += (r.Y0 - y1) * (x0 - x1) / (y0 - y1)
	} else if y1 > r.Y1 {
		xi1 += (r.Y1 - y1) * (x0 - x1) / (y0 - y1)
	}
	if xi0 >= r.X1 && xi1 >= r.X1 {
		return crossings
	}
	if xi0 <= r.X0 && xi1 <= r.X0 {
		return shadowCrossingsForLine(crossings, r, y0, y1)
	}
	return RectIntersects
}

func shadowCrossingsForLine(crossings int, r Rect, y0, y1 float64) int {
	if y0 < y1 {
		// We know that y0 < r.Y1 and y1 > r.Y0.
		if y0 <= r.Y0 {
			crossings++
		}
		if y1 >= r.Y1 {
			crossings++
		}
	} else if y1 < y0 {
		// We know that y1 < r.Y1 and y0 > r.Y0.
		if y1 <= r.Y0 {
			crossings--
		}
		if y0 >= r.Y1 {
			crossings--
		}
	}
	return crossings
}

// shadowCrossingsForCurve is like shadowCrossingsForLine, but for curves that
// may touch the shadow's edges without entering it.
func shadowCrossingsForCurve(crossings int, r Rect, y0, y1 float64) int {
	if y0 < y1 {
		if y0 <= r.Y0 && y1 > r.Y0 {
			crossings++
		}
		if y0 < r.Y1 && y1 >= r.Y1 {
			crossings++
		}
	} else if y1 < y0 {
		if y1 <= r.Y0 && y0 > r.Y0 {
			crossings--
		}
		if y1 < r.Y1 && y0 >= r.Y1 {
			crossings--
		}
	}
	return crossings
}

// endpointCrossings is the crossing contribution of a monotonic piece of curve
// that lies entirely to the left of a ray's origin.
func endpointCrossings(py, y0, y1 float64) int {
	if py >= y0 {
		if py < y1 {
			return 1
		}
	} else if py >= y1 {
		return -1
	}
	// py is outside of [y0, y1), or y0 == y1.
	return 0
}
