package interval

// Set operators on atomic intervals. They always return a canonical
// Set, never a bare interval: the union of two disjoint atomics is not
// itself atomic.

// Union returns the points covered by either interval.
func (r Interval[T]) Union(other Interval[T]) *Set[T] {
	return NewSet(r, other)
}

// Intersect returns the points covered by both intervals.
func (r Interval[T]) Intersect(other Interval[T]) *Set[T] {
	if !r.nonEmpty || !other.nonEmpty {
		return NewSet[T]()
	}
	lower := maxMark(r.lower, other.lower)
	upper := minMark(r.upper, other.upper)
	if lower.Compare(upper) > 0 {
		return NewSet[T]()
	}
	return newSet([]Interval[T]{fromMarks(lower, upper)})
}

// Sub returns the points covered by the interval and not by other.
func (r Interval[T]) Sub(other Interval[T]) *Set[T] {
	return NewSet(r).Sub(NewSet(other))
}

// Xor returns the points covered by exactly one of the two intervals.
func (r Interval[T]) Xor(other Interval[T]) *Set[T] {
	return NewSet(r).Xor(NewSet(other))
}

// Complement returns the points not covered by the interval.
func (r Interval[T]) Complement() *Set[T] {
	if !r.nonEmpty {
		return newSet([]Interval[T]{Full[T]()})
	}
	return newSet(complement([]Interval[T]{r}))
}
