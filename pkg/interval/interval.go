package interval

import (
	"cmp"
	"fmt"
)

// Interval is a single contiguous, possibly empty, range between two
// marks. It is an immutable value type; the zero value is the empty
// interval. A non-empty interval holds the points x with
// lower <= x <= upper under mark semantics.
type Interval[T cmp.Ordered] struct {
	lower    Mark[T]
	upper    Mark[T]
	nonEmpty bool
}

// Empty returns the empty interval.
func Empty[T cmp.Ordered]() Interval[T] {
	return Interval[T]{}
}

// Full returns the unbounded interval (-inf;+inf).
func Full[T cmp.Ordered]() Interval[T] {
	return Interval[T]{lower: negInfMark[T](), upper: posInfMark[T](), nonEmpty: true}
}

// Point returns the degenerate closed interval [v;v].
func Point[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: lowerMark(v, true), upper: upperMark(v, true), nonEmpty: true}
}

// New builds an interval from two finite bounds and their closures.
// It returns ErrInvalidBounds when lo is greater than hi. Equal bounds
// that are not both closed yield the empty interval.
func New[T cmp.Ordered](lo, hi T, loClosed, hiClosed bool) (Interval[T], error) {
	if lo > hi {
		return Interval[T]{}, fmt.Errorf("bounds %v and %v: %w", lo, hi, ErrInvalidBounds)
	}
	if lo == hi && !(loClosed && hiClosed) {
		return Interval[T]{}, nil
	}
	return Interval[T]{
		lower:    lowerMark(lo, loClosed),
		upper:    upperMark(hi, hiClosed),
		nonEmpty: true,
	}, nil
}

// ClosedOpen returns [lo;hi), the half-open convention used as a
// default throughout.
func ClosedOpen[T cmp.Ordered](lo, hi T) (Interval[T], error) {
	return New(lo, hi, true, false)
}

// Closed returns [lo;hi].
func Closed[T cmp.Ordered](lo, hi T) (Interval[T], error) {
	return New(lo, hi, true, true)
}

// Open returns (lo;hi).
func Open[T cmp.Ordered](lo, hi T) (Interval[T], error) {
	return New(lo, hi, false, false)
}

// OpenClosed returns (lo;hi].
func OpenClosed[T cmp.Ordered](lo, hi T) (Interval[T], error) {
	return New(lo, hi, false, true)
}

// AtLeast returns [v;+inf).
func AtLeast[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: lowerMark(v, true), upper: posInfMark[T](), nonEmpty: true}
}

// GreaterThan returns (v;+inf).
func GreaterThan[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: lowerMark(v, false), upper: posInfMark[T](), nonEmpty: true}
}

// AtMost returns (-inf;v].
func AtMost[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: negInfMark[T](), upper: upperMark(v, true), nonEmpty: true}
}

// LessThan returns (-inf;v).
func LessThan[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{lower: negInfMark[T](), upper: upperMark(v, false), nonEmpty: true}
}

// fromMarks trusts the caller to pass ordered marks of the right side.
func fromMarks[T cmp.Ordered](lower, upper Mark[T]) Interval[T] {
	return Interval[T]{lower: lower, upper: upper, nonEmpty: true}
}

// IsEmpty reports whether the interval holds no point.
func (r Interval[T]) IsEmpty() bool { return !r.nonEmpty }

// IsFull reports whether the interval is (-inf;+inf).
func (r Interval[T]) IsFull() bool {
	return r.nonEmpty && r.lower.IsNegInf() && r.upper.IsPosInf()
}

// Lower returns the lower mark. It is meaningless for the empty
// interval.
func (r Interval[T]) Lower() Mark[T] { return r.lower }

// Upper returns the upper mark. It is meaningless for the empty
// interval.
func (r Interval[T]) Upper() Mark[T] { return r.upper }

// LowerValue returns the finite lower bound; the second return is
// false for an empty interval or an unbounded lower side.
func (r Interval[T]) LowerValue() (T, bool) {
	var zero T
	if !r.nonEmpty {
		return zero, false
	}
	return r.lower.Value()
}

// UpperValue returns the finite upper bound; the second return is
// false for an empty interval or an unbounded upper side.
func (r Interval[T]) UpperValue() (T, bool) {
	var zero T
	if !r.nonEmpty {
		return zero, false
	}
	return r.upper.Value()
}

// LowerClosed reports whether the lower bound is closed.
func (r Interval[T]) LowerClosed() bool { return r.nonEmpty && r.lower.Closed() }

// UpperClosed reports whether the upper bound is closed.
func (r Interval[T]) UpperClosed() bool { return r.nonEmpty && r.upper.Closed() }

// Equal reports whether two intervals hold exactly the same points
// with the same marks. The empty interval is equal only to itself.
func (r Interval[T]) Equal(other Interval[T]) bool {
	if !r.nonEmpty || !other.nonEmpty {
		return r.nonEmpty == other.nonEmpty
	}
	return r.lower.Compare(other.lower) == 0 && r.upper.Compare(other.upper) == 0
}

// Compare orders intervals lexicographically by (lower, upper); the
// empty interval sorts first.
func (r Interval[T]) Compare(other Interval[T]) int {
	if !r.nonEmpty || !other.nonEmpty {
		return cmp.Compare(boolToInt(r.nonEmpty), boolToInt(other.nonEmpty))
	}
	if c := r.lower.Compare(other.lower); c != 0 {
		return c
	}
	return r.upper.Compare(other.upper)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Before reports whether the interval lies entirely before the other,
// with no shared point.
func (r Interval[T]) Before(other Interval[T]) bool {
	if !r.nonEmpty || !other.nonEmpty {
		return false
	}
	return r.upper.Less(other.lower)
}

// After reports whether the interval lies entirely after the other,
// with no shared point.
func (r Interval[T]) After(other Interval[T]) bool {
	if !r.nonEmpty || !other.nonEmpty {
		return false
	}
	return other.upper.Less(r.lower)
}

func (r Interval[T]) String() string {
	if !r.nonEmpty {
		return ""
	}
	left, right := "(", ")"
	if r.lower.Closed() {
		left = "["
	}
	if r.upper.Closed() {
		right = "]"
	}
	lo, hi := "-inf", "+inf"
	if v, ok := r.lower.Value(); ok {
		lo = fmt.Sprintf("%v", v)
	}
	if v, ok := r.upper.Value(); ok {
		hi = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%s%s;%s%s", left, lo, hi, right)
}
