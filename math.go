package shape

import (
	"math"
)

// MinOutlineDistance is the distance within which a point counts as lying on
// a shape's outline when no tolerance is given. Callers' tolerances are added
// to it.
const MinOutlineDistance = 0.001

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers.
const MaxExtrema = 4

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count.
	// At most four extrema can be reported, which is sufficient for
	// cubic Béziers.
	//
	// The extrema should be reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// ParametricCurve is a curve parametrized over [0, 1].
type ParametricCurve interface {
	Eval(t float64) Point
}

// CurveBoundingBox returns the smallest (axis-aligned) rectangle that encloses
// the curve in the range [0, 1].
func CurveBoundingBox(c interface {
	Extremer
	ParametricCurve
}) Rect {
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, it returns the root ignoring the
// quadratic term. In the degenerate case where all coefficients are zero, so
// that all values of x satisfy the equation, a single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1 * sc1 overflowed. Find one root using sc1 x + x² = 0, the
		// other as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// normalizeDegrees maps angle into the range (-180, 180].
//
// Large angles use the IEEE 754 remainder, which rounds the quotient to the
// nearest integer with ties going to the even one and can thus produce -180.
func normalizeDegrees(angle float64) float64 {
	if angle > 180 {
		if angle <= 180+360 {
			angle -= 360
		} else {
			angle = math.Remainder(angle, 360)
			// The remainder of e.g. 540 is -180; keep positive angles positive.
			if angle == -180 {
				angle = 180
			}
		}
	} else if angle <= -180 {
		if angle > -180-360 {
			angle += 360
		} else {
			angle = math.Remainder(angle, 360)
			if angle == -180 {
				angle = 180
			}
		}
	}
	return angle
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt option[T]) get() (T, bool) {
	return opt.value, opt.isSet
}
