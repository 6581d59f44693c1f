package interval

import (
	"cmp"
	"sort"
)

// The engine operates on canonical sequences: slices of non-empty
// intervals sorted ascending by lower mark, pairwise disjoint, with no
// two consecutive intervals near each other. Every function below
// requires canonical input and produces canonical output.

// bisectLeft returns the index of the first interval in seq whose
// upper mark is not strictly before iv's lower mark, i.e. the first
// interval that is not entirely before iv.
func bisectLeft[T cmp.Ordered](seq []Interval[T], iv Interval[T]) int {
	return sort.Search(len(seq), func(i int) bool {
		return seq[i].upper.Compare(iv.lower) >= 0
	})
}

// touchesOrOverlaps reports whether a region ending at upper reaches a
// region starting at lower, either by sharing points or by being near.
func touchesOrOverlaps[T cmp.Ordered](upper, lower Mark[T]) bool {
	return lower.Compare(upper) <= 0 || upper.Near(lower)
}

// insert splices iv into seq, merging the run of existing intervals
// that overlap or touch it. It is the sole primitive used to build a
// canonical sequence from unordered input. O(log n) locate, O(k)
// splice for k merged intervals.
func insert[T cmp.Ordered](seq []Interval[T], iv Interval[T]) []Interval[T] {
	if iv.IsEmpty() {
		return seq
	}
	lo := sort.Search(len(seq), func(i int) bool {
		return seq[i].upper.Compare(iv.lower) >= 0 || seq[i].upper.Near(iv.lower)
	})
	merged := iv
	hi := lo
	for hi < len(seq) && touchesOrOverlaps(merged.upper, seq[hi].lower) {
		merged.lower = minMark(merged.lower, seq[hi].lower)
		merged.upper = maxMark(merged.upper, seq[hi].upper)
		hi++
	}
	out := make([]Interval[T], 0, len(seq)-(hi-lo)+1)
	out = append(out, seq[:lo]...)
	out = append(out, merged)
	out = append(out, seq[hi:]...)
	return out
}

// union merges two canonical sequences in a single forward scan,
// O(|a|+|b|), fusing emitted intervals that overlap or are near.
func union[T cmp.Ordered](a, b []Interval[T]) []Interval[T] {
	if len(a) == 0 {
		return append([]Interval[T](nil), b...)
	}
	if len(b) == 0 {
		return append([]Interval[T](nil), a...)
	}
	out := make([]Interval[T], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var next Interval[T]
		if j >= len(b) || (i < len(a) && a[i].lower.Compare(b[j].lower) <= 0) {
			next = a[i]
			i++
		} else {
			next = b[j]
			j++
		}
		if n := len(out); n > 0 && touchesOrOverlaps(out[n-1].upper, next.lower) {
			out[n-1].upper = maxMark(out[n-1].upper, next.upper)
		} else {
			out = append(out, next)
		}
	}
	return out
}

// intersection scans both canonical sequences once, emitting the
// overlap of the currently open pair and advancing whichever interval
// ends first.
func intersection[T cmp.Ordered](a, b []Interval[T]) []Interval[T] {
	var out []Interval[T]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lower := maxMark(a[i].lower, b[j].lower)
		upper := minMark(a[i].upper, b[j].upper)
		if lower.Compare(upper) <= 0 {
			out = append(out, fromMarks(lower, upper))
		}
		if a[i].upper.Compare(b[j].upper) < 0 {
			i++
		} else {
			j++
		}
	}
	return out
}

// complement walks the gaps of a canonical sequence from -inf to +inf,
// flipping each bound's closure.
func complement[T cmp.Ordered](a []Interval[T]) []Interval[T] {
	var out []Interval[T]
	lower := negInfMark[T]()
	for _, iv := range a {
		upper := iv.lower.AdjacentBelow()
		if lower.Compare(upper) <= 0 {
			out = append(out, fromMarks(lower, upper))
		}
		lower = iv.upper.AdjacentAbove()
	}
	upper := posInfMark[T]()
	if lower.Compare(upper) <= 0 {
		out = append(out, fromMarks(lower, upper))
	}
	return out
}

func difference[T cmp.Ordered](a, b []Interval[T]) []Interval[T] {
	return intersection(a, complement(b))
}

func symmetricDifference[T cmp.Ordered](a, b []Interval[T]) []Interval[T] {
	return difference(union(a, b), intersection(a, b))
}

// covers reports whether iv is entirely contained in one interval of
// the canonical sequence.
func covers[T cmp.Ordered](seq []Interval[T], iv Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	index := bisectLeft(seq, iv)
	return index < len(seq) &&
		seq[index].lower.Compare(iv.lower) <= 0 &&
		iv.upper.Compare(seq[index].upper) <= 0
}

// isSubset walks self once, locating for each interval the candidate
// container in other. With strict it additionally requires the
// containment to be proper somewhere.
func isSubset[T cmp.Ordered](self, other []Interval[T], strict bool) bool {
	proper := len(self) < len(other)
	cursor := 0
	for _, iv := range self {
		cursor += bisectLeft(other[cursor:], iv)
		if cursor >= len(other) {
			return false
		}
		during := other[cursor]
		if iv.lower.Less(during.lower) || during.upper.Less(iv.upper) {
			return false
		}
		if during.lower.Less(iv.lower) || iv.upper.Less(during.upper) {
			proper = true
		}
	}
	return !strict || proper
}
