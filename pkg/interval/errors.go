package interval

import "errors"

var (
	// ErrInvalidBounds is returned when an interval is constructed with
	// a lower bound greater than its upper bound.
	ErrInvalidBounds = errors.New("lower bound is greater than upper bound")
	// ErrInvalidInterval is returned when an interval-like input cannot
	// be coerced into an interval.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrNotFound is returned when removing an interval that is not an
	// exact member of the set.
	ErrNotFound = errors.New("interval not found")
	// ErrEmptySet is returned when popping from an empty set.
	ErrEmptySet = errors.New("set is empty")
)
