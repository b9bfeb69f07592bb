package shape

// subdivider is implemented by curves that can be split at t = ½.
type subdivider[T any] interface {
	Eval(t float64) Point
	Subdivide() (T, T)
}

// subdivisions splits c into 2^level pieces of equal parameter length, in
// order.
func subdivisions[T subdivider[T]](c T, level int) []T {
	if level <= 0 {
		return []T{c}
	}
	a, b := c.Subdivide()
	if level == 1 {
		return []T{a, b}
	}
	return append(subdivisions(a, level-1), subdivisions(b, level-1)...)
}

// nearestMidpointDistance approximates the distance from pt to c by
// repeatedly halving c and descending into the half whose midpoint is nearer
// to pt. The descent ends once the distance drops below threshold or stops
// shrinking.
//
// The result is the distance to a point on the curve and thus never smaller
// than the true distance. Points of the curve away from the descent's path
// can be missed.
func nearestMidpointDistance[T subdivider[T]](c T, pt Point, threshold float64) float64 {
	minDist := pt.Distance(c.Eval(0.5))
	lastDist := minDist + 1
	for level := 0; minDist >= threshold && minDist < lastDist; level++ {
		if level > MaxSubdivisionLevel {
			debug("outline search reached subdivision limit", "distance", minDist, "threshold", threshold)
			break
		}
		a, b := c.Subdivide()
		da := pt.Distance(a.Eval(0.5))
		db := pt.Distance(b.Eval(0.5))
		lastDist = minDist
		if da < db {
			minDist, c = da, a
		} else {
			minDist, c = db, b
		}
	}
	if minDist < threshold {
		return minDist
	}
	return lastDist
}
