package interval

import (
	"cmp"
	"strings"
)

// Set holds a canonical sequence of disjoint, non-adjacent intervals.
// It is immutable after construction: every operation returns a new
// Set and leaves the operands untouched, so a Set is safe to share
// across goroutines and its Hash is stable.
type Set[T cmp.Ordered] struct {
	intervals []Interval[T]
}

// NewSet builds a set from arbitrary intervals: unordered, possibly
// overlapping, possibly empty. Construction is repeated insertion, so
// the result is always in canonical form.
func NewSet[T cmp.Ordered](ivs ...Interval[T]) *Set[T] {
	var seq []Interval[T]
	for _, iv := range ivs {
		seq = insert(seq, iv)
	}
	return &Set[T]{intervals: seq}
}

// newSet adopts an already canonical sequence without copying.
func newSet[T cmp.Ordered](seq []Interval[T]) *Set[T] {
	return &Set[T]{intervals: seq}
}

// Len returns the number of atomic intervals in canonical order.
func (r *Set[T]) Len() int { return len(r.intervals) }

// IsEmpty reports whether the set holds no point.
func (r *Set[T]) IsEmpty() bool { return len(r.intervals) == 0 }

// At returns the nth interval in canonical order. It panics when n is
// out of range, mirroring slice indexing.
func (r *Set[T]) At(n int) Interval[T] { return r.intervals[n] }

// Slice returns the sub-range [from:to) of the canonical sequence as
// a new set.
func (r *Set[T]) Slice(from, to int) *Set[T] {
	return newSet(append([]Interval[T](nil), r.intervals[from:to]...))
}

// Intervals returns a copy of the canonical sequence.
func (r *Set[T]) Intervals() []Interval[T] {
	return append([]Interval[T](nil), r.intervals...)
}

// Copy returns a structural clone.
func (r *Set[T]) Copy() *Set[T] {
	return newSet(append([]Interval[T](nil), r.intervals...))
}

// Equal reports whether both sets cover exactly the same points.
// Canonical form is unique, so comparing the sequences suffices.
func (r *Set[T]) Equal(other *Set[T]) bool {
	if len(r.intervals) != len(other.intervals) {
		return false
	}
	for i, iv := range r.intervals {
		if !iv.Equal(other.intervals[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether iv is entirely covered by a single member
// interval. The empty interval is contained in every set.
func (r *Set[T]) Contains(iv Interval[T]) bool {
	return covers(r.intervals, iv)
}

// ContainsPoint reports whether the set covers the value v.
func (r *Set[T]) ContainsPoint(v T) bool {
	return covers(r.intervals, Point(v))
}

// IsDisjoint reports whether the two sets share no point.
func (r *Set[T]) IsDisjoint(other *Set[T]) bool {
	return len(intersection(r.intervals, other.intervals)) == 0
}

// IsSubset reports whether every point of the set is in other.
func (r *Set[T]) IsSubset(other *Set[T]) bool {
	return isSubset(r.intervals, other.intervals, false)
}

// IsProperSubset reports whether the set is a subset of other and not
// equal to it.
func (r *Set[T]) IsProperSubset(other *Set[T]) bool {
	return isSubset(r.intervals, other.intervals, true)
}

// IsSuperset reports whether every point of other is in the set.
func (r *Set[T]) IsSuperset(other *Set[T]) bool {
	return isSubset(other.intervals, r.intervals, false)
}

// IsProperSuperset reports whether the set is a superset of other and
// not equal to it.
func (r *Set[T]) IsProperSuperset(other *Set[T]) bool {
	return isSubset(other.intervals, r.intervals, true)
}

// Union returns the set of points covered by the set or any of the
// others.
func (r *Set[T]) Union(others ...*Set[T]) *Set[T] {
	if len(others) == 0 {
		return r.Copy()
	}
	seq := r.intervals
	for _, other := range others {
		seq = union(seq, other.intervals)
	}
	return newSet(seq)
}

// Intersect returns the set of points covered by the set and all of
// the others.
func (r *Set[T]) Intersect(others ...*Set[T]) *Set[T] {
	if len(others) == 0 {
		return r.Copy()
	}
	seq := r.intervals
	for _, other := range others {
		seq = intersection(seq, other.intervals)
	}
	return newSet(seq)
}

// Sub returns the set of points covered by the set and none of the
// others.
func (r *Set[T]) Sub(others ...*Set[T]) *Set[T] {
	if len(others) == 0 {
		return r.Copy()
	}
	seq := r.intervals
	for _, other := range others {
		seq = difference(seq, other.intervals)
	}
	return newSet(seq)
}

// Xor returns the symmetric difference with other.
func (r *Set[T]) Xor(other *Set[T]) *Set[T] {
	return newSet(symmetricDifference(r.intervals, other.intervals))
}

// Complement returns the points not covered by the set.
func (r *Set[T]) Complement() *Set[T] {
	return newSet(complement(r.intervals))
}

// Iterate returns an iterator over the canonical sequence.
func (r *Set[T]) Iterate() *Iterator[T] {
	return newIterator(r.intervals)
}

// Select returns a lazy iterator over the member intervals that
// intersect query (strict=false) or are entirely contained in it
// (strict=true). Each call returns a fresh iterator.
func (r *Set[T]) Select(query Interval[T], strict bool) *Iterator[T] {
	return newSelectIterator(r.intervals, query, strict)
}

func (r *Set[T]) String() string {
	parts := make([]string, 0, len(r.intervals))
	for _, iv := range r.intervals {
		parts = append(parts, iv.String())
	}
	return strings.Join(parts, " | ")
}
