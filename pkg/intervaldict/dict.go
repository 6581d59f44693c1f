package intervaldict

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/henderiw/intervalset/pkg/interval"
)

// Entry associates one non-empty interval of the key space with a
// value.
type Entry[T cmp.Ordered, V any] struct {
	Interval interval.Interval[T]
	Value    V
}

// Dict maps disjoint intervals of an ordered key space to values. The
// entries are kept sorted by lower mark; two adjacent entries may
// carry the same value until Compress fuses them. Dict is immutable
// after construction.
type Dict[T cmp.Ordered, V any] struct {
	entries []Entry[T, V]
	cfg     config[T, V]
}

// New builds a dictionary from arbitrary entries. Entries are written
// in order, so on overlap a later entry wins (or combines, with
// WithCombine).
func New[T cmp.Ordered, V any](entries []Entry[T, V], opts ...Option[T, V]) *Dict[T, V] {
	return NewMutable(entries, opts...).Freeze()
}

// bisect returns the index of the first entry whose interval is not
// entirely before iv.
func bisect[T cmp.Ordered, V any](entries []Entry[T, V], iv interval.Interval[T]) int {
	return sort.Search(len(entries), func(i int) bool {
		return entries[i].Interval.Upper().Compare(iv.Lower()) >= 0
	})
}

// Len returns the number of entries.
func (r *Dict[T, V]) Len() int { return len(r.entries) }

// IsEmpty reports whether the dictionary has no entries.
func (r *Dict[T, V]) IsEmpty() bool { return len(r.entries) == 0 }

// At returns the nth entry in key order. It panics when n is out of
// range, mirroring slice indexing.
func (r *Dict[T, V]) At(n int) Entry[T, V] { return r.entries[n] }

// Entries returns a copy of the entries in key order.
func (r *Dict[T, V]) Entries() []Entry[T, V] {
	return append([]Entry[T, V](nil), r.entries...)
}

// Domain returns the set of keys the dictionary covers.
func (r *Dict[T, V]) Domain() *interval.Set[T] {
	ivs := make([]interval.Interval[T], 0, len(r.entries))
	for _, e := range r.entries {
		ivs = append(ivs, e.Interval)
	}
	return interval.NewSet(ivs...)
}

// Values returns the values in key order, one per entry.
func (r *Dict[T, V]) Values() []V {
	out := make([]V, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Value)
	}
	return out
}

// Get returns the value covering key, or ErrKeyNotFound.
func (r *Dict[T, V]) Get(key T) (V, error) {
	point := interval.Point(key)
	index := bisect(r.entries, point)
	if index < len(r.entries) && point.During(r.entries[index].Interval, false, false) {
		return r.entries[index].Value, nil
	}
	var zero V
	return zero, fmt.Errorf("key %v: %w", key, ErrKeyNotFound)
}

// GetOr returns the value covering key, or def when no entry does.
func (r *Dict[T, V]) GetOr(key T, def V) V {
	if v, err := r.Get(key); err == nil {
		return v
	}
	return def
}

// Contains reports whether iv is entirely covered by a single entry.
func (r *Dict[T, V]) Contains(iv interval.Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	index := bisect(r.entries, iv)
	return index < len(r.entries) && iv.During(r.entries[index].Interval, false, false)
}

// ContainsPoint reports whether some entry covers the key.
func (r *Dict[T, V]) ContainsPoint(key T) bool {
	_, err := r.Get(key)
	return err == nil
}

// Between returns the sub-dictionary covering the part of the key
// space inside query, with straddling entries clipped to it.
func (r *Dict[T, V]) Between(query interval.Interval[T]) *Dict[T, V] {
	var out []Entry[T, V]
	it := r.Select(query, false)
	for it.Next() {
		e := it.Entry()
		if clipped := e.Interval.Clip(query); !clipped.IsEmpty() {
			out = append(out, Entry[T, V]{Interval: clipped, Value: e.Value})
		}
	}
	return &Dict[T, V]{entries: out, cfg: r.cfg}
}

// Iterate returns an iterator over all entries in key order.
func (r *Dict[T, V]) Iterate() *Iterator[T, V] {
	return newIterator(r.entries)
}

// Select returns a lazy iterator over the entries whose interval
// intersects query (strict=false) or is entirely contained in it
// (strict=true). Each call returns a fresh iterator.
func (r *Dict[T, V]) Select(query interval.Interval[T], strict bool) *Iterator[T, V] {
	return newSelectIterator(r.entries, query, strict)
}

// Compress returns a dictionary where runs of adjacent entries with
// equal values are fused into single entries.
func (r *Dict[T, V]) Compress() *Dict[T, V] {
	return &Dict[T, V]{entries: compressEntries(r.entries, r.cfg.equal), cfg: r.cfg}
}

// compressEntries fuses consecutive entries that are near on the key
// axis and hold equal values.
func compressEntries[T cmp.Ordered, V any](entries []Entry[T, V], equal func(a, b V) bool) []Entry[T, V] {
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry[T, V], 0, len(entries))
	out = append(out, entries[0])
	for _, e := range entries[1:] {
		last := &out[len(out)-1]
		if last.Interval.Upper().Near(e.Interval.Lower()) && equal(last.Value, e.Value) {
			last.Interval = last.Interval.Hull(e.Interval)
			continue
		}
		out = append(out, e)
	}
	return out
}

// Equal reports whether both dictionaries hold the same entries, using
// the receiver's value equality. Uncompressed entry boundaries count:
// compress both sides first to compare coverage.
func (r *Dict[T, V]) Equal(other *Dict[T, V]) bool {
	if len(r.entries) != len(other.entries) {
		return false
	}
	for i, e := range r.entries {
		if !e.Interval.Equal(other.entries[i].Interval) || !r.cfg.equal(e.Value, other.entries[i].Value) {
			return false
		}
	}
	return true
}

// Copy returns a structural clone.
func (r *Dict[T, V]) Copy() *Dict[T, V] {
	return &Dict[T, V]{entries: append([]Entry[T, V](nil), r.entries...), cfg: r.cfg}
}

// Thaw returns a mutable clone carrying the same options.
func (r *Dict[T, V]) Thaw() *MutableDict[T, V] {
	return &MutableDict[T, V]{Dict[T, V]{
		entries: append([]Entry[T, V](nil), r.entries...),
		cfg:     r.cfg,
	}}
}

// Merge returns the dictionary updated with the entries of the others,
// later sources winning (or combining) on overlap.
func (r *Dict[T, V]) Merge(others ...*Dict[T, V]) *Dict[T, V] {
	m := r.Thaw()
	m.Update(others...)
	return m.Freeze()
}

// Hash returns a content hash over the entries in key order. Values
// are hashed through their fmt representation.
func (r *Dict[T, V]) Hash() uint64 {
	h := xxhash.New64()
	for _, e := range r.entries {
		fmt.Fprintf(h, "|%d=%v", e.Interval.Hash(), e.Value)
	}
	return h.Sum64()
}

func (r *Dict[T, V]) String() string {
	parts := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		parts = append(parts, fmt.Sprintf("%s: %v", e.Interval, e.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
