package intervaldict

import (
	"cmp"

	"github.com/henderiw/intervalset/pkg/interval"
)

// Iterator walks the entries of a dictionary lazily in key order. A
// selection iterator is one-shot; calling Select again restarts the
// scan from scratch.
type Iterator[T cmp.Ordered, V any] struct {
	entries   []Entry[T, V]
	query     interval.Interval[T]
	strict    bool
	selecting bool
	index     int
	current   Entry[T, V]
	done      bool
}

func newIterator[T cmp.Ordered, V any](entries []Entry[T, V]) *Iterator[T, V] {
	return &Iterator[T, V]{entries: entries}
}

func newSelectIterator[T cmp.Ordered, V any](entries []Entry[T, V], query interval.Interval[T], strict bool) *Iterator[T, V] {
	it := &Iterator[T, V]{entries: entries, query: query, strict: strict, selecting: true}
	if query.IsEmpty() {
		it.done = true
		return it
	}
	it.index = bisect(entries, query)
	if strict && it.index < len(entries) && entries[it.index].Interval.Lower().Less(query.Lower()) {
		it.index++
	}
	return it
}

// Next advances the iterator, returning false when exhausted.
func (r *Iterator[T, V]) Next() bool {
	if r.done {
		return false
	}
	if !r.selecting {
		if r.index < len(r.entries) {
			r.current = r.entries[r.index]
			r.index++
			return true
		}
		r.done = true
		return false
	}
	if r.index >= len(r.entries) {
		r.done = true
		return false
	}
	entry := r.entries[r.index]
	if entry.Interval.Lower().Compare(r.query.Upper()) > 0 {
		r.done = true
		return false
	}
	if entry.Interval.Upper().Compare(r.query.Upper()) > 0 {
		// last candidate: it sticks out beyond the query.
		r.done = true
		if r.strict {
			return false
		}
		r.current = entry
		return true
	}
	r.current = entry
	r.index++
	return true
}

// Entry returns the entry at the current position.
func (r *Iterator[T, V]) Entry() Entry[T, V] {
	return r.current
}

// Value returns the value at the current position.
func (r *Iterator[T, V]) Value() V {
	return r.current.Value
}

// Interval returns the key interval at the current position.
func (r *Iterator[T, V]) Interval() interval.Interval[T] {
	return r.current.Interval
}
