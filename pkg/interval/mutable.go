package interval

import (
	"cmp"
	"fmt"
)

// MutableSet is the in-place variant of Set. Every mutation rebuilds
// the canonical sequence before returning. It is not internally
// synchronized: exactly one logical owner mutates at a time, and
// readers may only run concurrently when no mutator does.
type MutableSet[T cmp.Ordered] struct {
	Set[T]
}

// NewMutableSet builds a mutable set from arbitrary intervals.
func NewMutableSet[T cmp.Ordered](ivs ...Interval[T]) *MutableSet[T] {
	var seq []Interval[T]
	for _, iv := range ivs {
		seq = insert(seq, iv)
	}
	return &MutableSet[T]{Set[T]{intervals: seq}}
}

// Copy returns a structural clone of the mutable set.
func (r *MutableSet[T]) Copy() *MutableSet[T] {
	return &MutableSet[T]{Set[T]{intervals: append([]Interval[T](nil), r.intervals...)}}
}

// Freeze returns an immutable snapshot of the current content.
func (r *MutableSet[T]) Freeze() *Set[T] {
	return newSet(append([]Interval[T](nil), r.intervals...))
}

// Add inserts iv, merging it with any overlapping or adjacent
// members. Adding the empty interval is a no-op.
func (r *MutableSet[T]) Add(iv Interval[T]) {
	r.intervals = insert(r.intervals, iv)
}

// Remove removes iv, which must be an exact member of the canonical
// sequence; it returns ErrNotFound otherwise. Removing a strict
// sub-range of a member is not a removal, use Sub for point-wise
// subtraction.
func (r *MutableSet[T]) Remove(iv Interval[T]) error {
	index, ok := r.find(iv)
	if !ok {
		return fmt.Errorf("remove %v: %w", iv, ErrNotFound)
	}
	r.intervals = append(r.intervals[:index], r.intervals[index+1:]...)
	return nil
}

// Discard removes iv when it is an exact member and does nothing
// otherwise. It is the soft variant of Remove.
func (r *MutableSet[T]) Discard(iv Interval[T]) {
	if index, ok := r.find(iv); ok {
		r.intervals = append(r.intervals[:index], r.intervals[index+1:]...)
	}
}

func (r *MutableSet[T]) find(iv Interval[T]) (int, bool) {
	if iv.IsEmpty() {
		return 0, false
	}
	index := bisectLeft(r.intervals, iv)
	if index < len(r.intervals) && r.intervals[index].Equal(iv) {
		return index, true
	}
	return 0, false
}

// Pop removes and returns the last interval in canonical order. It
// returns ErrEmptySet when the set is empty.
func (r *MutableSet[T]) Pop() (Interval[T], error) {
	if len(r.intervals) == 0 {
		return Interval[T]{}, fmt.Errorf("pop: %w", ErrEmptySet)
	}
	iv := r.intervals[len(r.intervals)-1]
	r.intervals = r.intervals[:len(r.intervals)-1]
	return iv, nil
}

// Clear removes all intervals.
func (r *MutableSet[T]) Clear() {
	r.intervals = nil
}

// UnionWith replaces the content with the union of self and the
// others.
func (r *MutableSet[T]) UnionWith(others ...*Set[T]) {
	for _, other := range others {
		r.intervals = union(r.intervals, other.intervals)
	}
}

// IntersectWith replaces the content with the intersection of self
// and the others.
func (r *MutableSet[T]) IntersectWith(others ...*Set[T]) {
	for _, other := range others {
		r.intervals = intersection(r.intervals, other.intervals)
	}
}

// SubWith replaces the content with the difference of self and the
// others.
func (r *MutableSet[T]) SubWith(others ...*Set[T]) {
	for _, other := range others {
		r.intervals = difference(r.intervals, other.intervals)
	}
}

// XorWith replaces the content with the symmetric difference of self
// and other.
func (r *MutableSet[T]) XorWith(other *Set[T]) {
	r.intervals = symmetricDifference(r.intervals, other.intervals)
}
