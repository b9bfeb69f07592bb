package shape

import (
	"fmt"
)

// Option configures a shape built by one of the Build functions.
//
// Several options describe the same dimension: the width can be given by
// WithWidth, WithLength, WithRadius, WithRadiusX or WithDiameter. Any
// combination may be used as long as the values agree.
//
// Example:
//
//	r, err := shape.BuildRect(shape.WithCenter(shape.Pt(10, 10)), shape.WithRadius(5))
type Option func(*params)

type params struct {
	corner   option[Point]
	center   option[Point]
	width    option[float64]
	height   option[float64]
	length   option[float64]
	radius   option[float64]
	radiusX  option[float64]
	radiusY  option[float64]
	diameter option[float64]
	start    option[float64]
	extent   option[float64]
	arcType  option[ArcType]
}

// WithCorner sets the top-left corner of the shape's bounding rectangle.
func WithCorner(pt Point) Option {
	return func(p *params) { p.corner.set(pt) }
}

// WithCenter sets the center of the shape.
func WithCenter(pt Point) Option {
	return func(p *params) { p.center.set(pt) }
}

func WithWidth(w float64) Option {
	return func(p *params) { p.width.set(w) }
}

func WithHeight(h float64) Option {
	return func(p *params) { p.height.set(h) }
}

// WithLength sets both width and height.
func WithLength(l float64) Option {
	return func(p *params) { p.length.set(l) }
}

// WithRadius sets both radii, which are half the width and height.
func WithRadius(r float64) Option {
	return func(p *params) { p.radius.set(r) }
}

func WithRadiusX(r float64) Option {
	return func(p *params) { p.radiusX.set(r) }
}

func WithRadiusY(r float64) Option {
	return func(p *params) { p.radiusY.set(r) }
}

// WithDiameter sets both width and height.
func WithDiameter(d float64) Option {
	return func(p *params) { p.diameter.set(d) }
}

// WithStart sets the start angle of an arc, in degrees.
func WithStart(deg float64) Option {
	return func(p *params) { p.start.set(deg) }
}

// WithExtent sets the angular extent of an arc, in degrees.
func WithExtent(deg float64) Option {
	return func(p *params) { p.extent.set(deg) }
}

func WithArcType(typ ArcType) Option {
	return func(p *params) { p.arcType.set(typ) }
}

func newParams(opts []Option) params {
	var p params
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

type candidate struct {
	name  string
	value option[float64]
	scale float64
}

// resolve returns the value shared by all set candidates, each multiplied by
// its scale.
func resolve(dim string, cands ...candidate) (float64, error) {
	var (
		v     float64
		from  string
		found bool
	)
	for _, c := range cands {
		cv, ok := c.value.get()
		if !ok {
			continue
		}
		cv *= c.scale
		if !found {
			v, from, found = cv, c.name, true
			continue
		}
		if cv != v {
			return 0, fmt.Errorf("%w: %s is %g according to %s but %g according to %s",
				ErrConflict, dim, v, from, cv, c.name)
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrMissing, dim)
	}
	return v, nil
}

func (p params) size() (w, h float64, err error) {
	w, err = resolve("width",
		candidate{"width", p.width, 1},
		candidate{"length", p.length, 1},
		candidate{"radius", p.radius, 2},
		candidate{"radius x", p.radiusX, 2},
		candidate{"diameter", p.diameter, 1},
	)
	if err != nil {
		return 0, 0, err
	}
	h, err = resolve("height",
		candidate{"height", p.height, 1},
		candidate{"length", p.length, 1},
		candidate{"radius", p.radius, 2},
		candidate{"radius y", p.radiusY, 2},
		candidate{"diameter", p.diameter, 1},
	)
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

// side is like size for shapes whose width and height are equal. Keys of
// either axis describe the single side length.
func (p params) side() (float64, error) {
	return resolve("side",
		candidate{"width", p.width, 1},
		candidate{"height", p.height, 1},
		candidate{"length", p.length, 1},
		candidate{"radius", p.radius, 2},
		candidate{"radius x", p.radiusX, 2},
		candidate{"radius y", p.radiusY, 2},
		candidate{"diameter", p.diameter, 1},
	)
}

// origin returns the top-left corner, which defaults to (0, 0) if neither
// corner nor center are set.
func (p params) origin(w, h float64) (Point, error) {
	corner, hasCorner := p.corner.get()
	center, hasCenter := p.center.get()
	fromCenter := Pt(center.X-w/2, center.Y-h/2)
	switch {
	case hasCorner && hasCenter:
		if corner != fromCenter {
			return Point{}, fmt.Errorf("%w: corner %s doesn't match center %s", ErrConflict, corner, center)
		}
		return corner, nil
	case hasCenter:
		return fromCenter, nil
	default:
		return corner, nil
	}
}

func (p params) frame() (Rect, error) {
	w, h, err := p.size()
	if err != nil {
		return Rect{}, err
	}
	o, err := p.origin(w, h)
	if err != nil {
		return Rect{}, err
	}
	return NewRect(o.X, o.Y, w, h), nil
}

func (p params) squareFrame() (Rect, error) {
	l, err := p.side()
	if err != nil {
		return Rect{}, err
	}
	o, err := p.origin(l, l)
	if err != nil {
		return Rect{}, err
	}
	return NewRect(o.X, o.Y, l, l), nil
}

// BuildRect builds a rectangle from options.
func BuildRect(opts ...Option) (Rect, error) {
	return newParams(opts).frame()
}

// BuildSquare builds a rectangle with equal width and height. Either
// dimension defines the other.
func BuildSquare(opts ...Option) (Rect, error) {
	return newParams(opts).squareFrame()
}

// BuildArc builds an arc from options. The type defaults to OpenArc, the
// start to 0° and the extent to 360°.
func BuildArc(opts ...Option) (Arc, error) {
	p := newParams(opts)
	r, err := p.frame()
	if err != nil {
		return Arc{}, err
	}
	a := Arc{
		Type:   OpenArc,
		X:      r.X0,
		Y:      r.Y0,
		Width:  r.Width(),
		Height: r.Height(),
		Extent: 360,
	}
	if typ, ok := p.arcType.get(); ok {
		a.Type = typ
	}
	if start, ok := p.start.get(); ok {
		a.Start = start
	}
	if extent, ok := p.extent.get(); ok {
		a.Extent = extent
	}
	return a, nil
}

// BuildEllipse builds an ellipse from options. Ellipses have a fixed type,
// start and extent; setting any of them returns an error wrapping ErrFixed.
func BuildEllipse(opts ...Option) (Ellipse, error) {
	p := newParams(opts)
	if p.arcType.isSet || p.start.isSet || p.extent.isSet {
		return Ellipse{}, fmt.Errorf("%w: ellipses have no type, start or extent", ErrFixed)
	}
	r, err := p.frame()
	if err != nil {
		return Ellipse{}, err
	}
	return Ellipse{X: r.X0, Y: r.Y0, Width: r.Width(), Height: r.Height()}, nil
}

// BuildCircle builds a circle from options. Like [BuildEllipse], but width
// and height are equal, so either dimension defines the other.
func BuildCircle(opts ...Option) (Circle, error) {
	p := newParams(opts)
	if p.arcType.isSet || p.start.isSet || p.extent.isSet {
		return Circle{}, fmt.Errorf("%w: circles have no type, start or extent", ErrFixed)
	}
	r, err := p.squareFrame()
	if err != nil {
		return Circle{}, err
	}
	return Circle{Center: r.Center(), Radius: r.Width() / 2}, nil
}
