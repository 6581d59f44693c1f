package interval

import "cmp"

// Iterator walks a canonical sequence lazily. A selection iterator is
// one-shot; calling Select again restarts the scan from scratch.
type Iterator[T cmp.Ordered] struct {
	seq       []Interval[T]
	query     Interval[T]
	strict    bool
	selecting bool
	index     int
	current   Interval[T]
	done      bool
}

func newIterator[T cmp.Ordered](seq []Interval[T]) *Iterator[T] {
	return &Iterator[T]{seq: seq}
}

func newSelectIterator[T cmp.Ordered](seq []Interval[T], query Interval[T], strict bool) *Iterator[T] {
	it := &Iterator[T]{seq: seq, query: query, strict: strict, selecting: true}
	if query.IsEmpty() {
		it.done = true
		return it
	}
	it.index = bisectLeft(seq, query)
	if strict && it.index < len(seq) && seq[it.index].lower.Less(query.lower) {
		it.index++
	}
	return it
}

// Next advances the iterator, returning false when exhausted.
func (r *Iterator[T]) Next() bool {
	if r.done {
		return false
	}
	if !r.selecting {
		if r.index < len(r.seq) {
			r.current = r.seq[r.index]
			r.index++
			return true
		}
		r.done = true
		return false
	}
	if r.index >= len(r.seq) {
		r.done = true
		return false
	}
	other := r.seq[r.index]
	if other.lower.Compare(r.query.upper) > 0 {
		r.done = true
		return false
	}
	if other.upper.Compare(r.query.upper) > 0 {
		// last candidate: it sticks out beyond the query.
		r.done = true
		if r.strict {
			return false
		}
		r.current = other
		return true
	}
	r.current = other
	r.index++
	return true
}

// Value returns the interval at the current position.
func (r *Iterator[T]) Value() Interval[T] {
	return r.current
}
