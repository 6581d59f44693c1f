package intervaldict

import (
	"cmp"
	"sort"

	"github.com/henderiw/intervalset/pkg/interval"
)

// MutableDict is a Dict with in-place writes. It is not safe for
// concurrent use; Freeze to obtain a shareable snapshot.
type MutableDict[T cmp.Ordered, V any] struct {
	Dict[T, V]
}

// NewMutable builds a mutable dictionary from arbitrary entries.
// Entries are written in order, so on overlap a later entry wins (or
// combines, with WithCombine).
func NewMutable[T cmp.Ordered, V any](entries []Entry[T, V], opts ...Option[T, V]) *MutableDict[T, V] {
	r := &MutableDict[T, V]{Dict[T, V]{cfg: newConfig(opts...)}}
	r.PutEntries(entries...)
	return r
}

// Freeze returns an immutable snapshot.
func (r *MutableDict[T, V]) Freeze() *Dict[T, V] {
	return r.Dict.Copy()
}

// Copy returns a mutable structural clone.
func (r *MutableDict[T, V]) Copy() *MutableDict[T, V] {
	return r.Dict.Thaw()
}

// Clear removes all entries.
func (r *MutableDict[T, V]) Clear() {
	r.entries = nil
}

// Get returns the value covering key. With WithDefault a miss
// materializes the default under [key;key] and returns it instead of
// ErrKeyNotFound.
func (r *MutableDict[T, V]) Get(key T) (V, error) {
	v, err := r.Dict.Get(key)
	if err != nil && r.cfg.defaultFn != nil {
		v = r.cfg.defaultFn()
		r.Set(interval.Point(key), v)
		return v, nil
	}
	return v, err
}

// window returns the half-open entry range [start;stop) whose
// intervals overlap or touch iv.
func (r *MutableDict[T, V]) window(iv interval.Interval[T]) (start, stop int) {
	start = bisect(r.entries, iv)
	stop = start
	for stop < len(r.entries) && r.entries[stop].Interval.Lower().Compare(iv.Upper()) <= 0 {
		stop++
	}
	return start, stop
}

func (r *MutableDict[T, V]) splice(start, stop int, replacement []Entry[T, V]) {
	out := make([]Entry[T, V], 0, len(r.entries)-(stop-start)+len(replacement))
	out = append(out, r.entries[:start]...)
	out = append(out, replacement...)
	out = append(out, r.entries[stop:]...)
	r.entries = out
}

// Set writes v over the whole of iv, overwriting whatever the overlap
// covered. Straddling entries keep their remainders outside iv.
func (r *MutableDict[T, V]) Set(iv interval.Interval[T], v V) {
	if iv.IsEmpty() {
		return
	}
	start, stop := r.window(iv)
	run := make([]Entry[T, V], 0, stop-start+2)
	for i := start; i < stop; i++ {
		e := r.entries[i]
		if left := e.Interval.SplitBefore(iv); !left.IsEmpty() {
			run = append(run, Entry[T, V]{Interval: left, Value: e.Value})
		}
	}
	run = append(run, Entry[T, V]{Interval: iv, Value: v})
	for i := start; i < stop; i++ {
		e := r.entries[i]
		if right := e.Interval.SplitAfter(iv); !right.IsEmpty() {
			run = append(run, Entry[T, V]{Interval: right, Value: e.Value})
		}
	}
	r.splice(start, stop, run)
}

// Put writes v over iv, combining with the existing value wherever iv
// overlaps an entry. Without WithCombine it behaves like Set.
func (r *MutableDict[T, V]) Put(iv interval.Interval[T], v V) {
	if iv.IsEmpty() {
		return
	}
	if r.cfg.combine == nil {
		r.Set(iv, v)
		return
	}
	start, stop := r.window(iv)
	var run []Entry[T, V]
	var covered []interval.Interval[T]
	for i := start; i < stop; i++ {
		e := r.entries[i]
		if left := e.Interval.SplitBefore(iv); !left.IsEmpty() {
			run = append(run, Entry[T, V]{Interval: left, Value: e.Value})
		}
		if overlap := e.Interval.Clip(iv); !overlap.IsEmpty() {
			run = append(run, Entry[T, V]{Interval: overlap, Value: r.cfg.combine(e.Value, v)})
			covered = append(covered, overlap)
		}
		if right := e.Interval.SplitAfter(iv); !right.IsEmpty() {
			run = append(run, Entry[T, V]{Interval: right, Value: e.Value})
		}
	}
	// the uncovered parts of iv take the incoming value unchanged.
	gaps := interval.NewSet(iv).Sub(interval.NewSet(covered...))
	it := gaps.Iterate()
	for it.Next() {
		run = append(run, Entry[T, V]{Interval: it.Value(), Value: v})
	}
	sort.Slice(run, func(i, j int) bool {
		return run[i].Interval.Compare(run[j].Interval) < 0
	})
	r.splice(start, stop, run)
}

// PutEntries writes the entries in order through Put.
func (r *MutableDict[T, V]) PutEntries(entries ...Entry[T, V]) {
	for _, e := range entries {
		r.Put(e.Interval, e.Value)
	}
}

// Delete removes the coverage of iv from the dictionary. Straddling
// entries keep their remainders outside iv. Deleting an uncovered
// interval is a no-op.
func (r *MutableDict[T, V]) Delete(iv interval.Interval[T]) {
	if iv.IsEmpty() {
		return
	}
	start, stop := r.window(iv)
	var run []Entry[T, V]
	for i := start; i < stop; i++ {
		e := r.entries[i]
		if left := e.Interval.SplitBefore(iv); !left.IsEmpty() {
			run = append(run, Entry[T, V]{Interval: left, Value: e.Value})
		}
	}
	for i := start; i < stop; i++ {
		e := r.entries[i]
		if right := e.Interval.SplitAfter(iv); !right.IsEmpty() {
			run = append(run, Entry[T, V]{Interval: right, Value: e.Value})
		}
	}
	r.splice(start, stop, run)
}

// Update folds the entries of the others into the dictionary. With a
// commutative combine operator all sources are merged in one boundary
// sweep; otherwise each entry is written through Put in order.
func (r *MutableDict[T, V]) Update(others ...*Dict[T, V]) {
	if r.cfg.commutative && r.cfg.combine != nil {
		sources := make([][]Entry[T, V], 0, len(others)+1)
		sources = append(sources, r.entries)
		for _, other := range others {
			sources = append(sources, other.entries)
		}
		r.entries = sweepMerge(sources, r.cfg.combine)
		return
	}
	for _, other := range others {
		for _, e := range other.entries {
			r.Put(e.Interval, e.Value)
		}
	}
}

// Compress fuses runs of adjacent entries with equal values in place.
func (r *MutableDict[T, V]) Compress() {
	r.entries = compressEntries(r.entries, r.cfg.equal)
}
