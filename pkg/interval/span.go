package interval

import (
	"cmp"
	"fmt"
)

// FromMarks builds an interval from explicit marks. Marks of the
// wrong side yield ErrInvalidInterval; an inverted pair yields the
// empty interval.
func FromMarks[T cmp.Ordered](lower, upper Mark[T]) (Interval[T], error) {
	if lower.kind == kindOpenUpper || upper.kind == kindOpenLower ||
		lower.IsPosInf() || upper.IsNegInf() {
		return Interval[T]{}, fmt.Errorf("marks %s and %s: %w", lower, upper, ErrInvalidInterval)
	}
	if upper.Less(lower) {
		return Interval[T]{}, nil
	}
	return fromMarks(lower, upper), nil
}

// Hull returns the smallest atomic interval covering both intervals,
// including any gap between them.
func (r Interval[T]) Hull(other Interval[T]) Interval[T] {
	if !r.nonEmpty {
		return other
	}
	if !other.nonEmpty {
		return r
	}
	return fromMarks(minMark(r.lower, other.lower), maxMark(r.upper, other.upper))
}

// Clip returns the atomic intersection of the two intervals.
func (r Interval[T]) Clip(other Interval[T]) Interval[T] {
	if !r.nonEmpty || !other.nonEmpty {
		return Interval[T]{}
	}
	lower := maxMark(r.lower, other.lower)
	upper := minMark(r.upper, other.upper)
	if upper.Less(lower) {
		return Interval[T]{}
	}
	return fromMarks(lower, upper)
}

// SplitBefore returns the part of the interval that lies strictly
// before other begins.
func (r Interval[T]) SplitBefore(other Interval[T]) Interval[T] {
	if !r.nonEmpty || !other.nonEmpty {
		return r
	}
	upper := minMark(r.upper, other.lower.AdjacentBelow())
	if upper.Less(r.lower) {
		return Interval[T]{}
	}
	return fromMarks(r.lower, upper)
}

// SplitAfter returns the part of the interval that lies strictly
// after other ends.
func (r Interval[T]) SplitAfter(other Interval[T]) Interval[T] {
	if !r.nonEmpty || !other.nonEmpty {
		return r
	}
	lower := maxMark(r.lower, other.upper.AdjacentAbove())
	if r.upper.Less(lower) {
		return Interval[T]{}
	}
	return fromMarks(lower, r.upper)
}
