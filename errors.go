package shape

import "errors"

var (
	// ErrConflict is returned when a shape is built from values that
	// describe the same dimension but disagree, such as a width and a
	// length that differ.
	ErrConflict = errors.New("shape: conflicting dimensions")

	// ErrMissing is returned when a builder lacks a value it needs.
	ErrMissing = errors.New("shape: missing dimension")

	// ErrFixed is returned when building a shape with a value that the
	// shape doesn't allow changing, such as the extent of an ellipse.
	ErrFixed = errors.New("shape: value is fixed")

	// ErrInvalidWindingRule is returned for winding rules other than
	// [EvenOdd] and [NonZero].
	ErrInvalidWindingRule = errors.New("shape: invalid winding rule")
)
