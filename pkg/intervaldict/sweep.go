package intervaldict

import (
	"cmp"

	"github.com/henderiw/intervalset/pkg/interval"
)

// sweepMerge folds several sorted, pairwise-disjoint entry sequences
// into one in a single boundary sweep. Each maximal run of the key
// space covered by the same subset of sources becomes one entry whose
// value is the combine fold over that subset, so the operator must be
// commutative and associative. O(total entries * sources).
func sweepMerge[T cmp.Ordered, V any](sources [][]Entry[T, V], combine func(a, b V) V) []Entry[T, V] {
	type cursor struct {
		head Entry[T, V]
		rest []Entry[T, V]
	}
	cursors := make([]*cursor, 0, len(sources))
	for _, src := range sources {
		if len(src) > 0 {
			cursors = append(cursors, &cursor{head: src[0], rest: src[1:]})
		}
	}
	var out []Entry[T, V]
	for len(cursors) > 0 {
		// the next piece starts at the earliest open head.
		pieceLower := cursors[0].head.Interval.Lower()
		for _, c := range cursors[1:] {
			if lower := c.head.Interval.Lower(); lower.Less(pieceLower) {
				pieceLower = lower
			}
		}
		// the piece ends where the first covering head ends or the
		// first non-covering head begins, whichever comes sooner.
		var pieceUpper interval.Mark[T]
		var value V
		first, haveValue := true, false
		for _, c := range cursors {
			var limit interval.Mark[T]
			if c.head.Interval.Lower().Compare(pieceLower) == 0 {
				limit = c.head.Interval.Upper()
				if haveValue {
					value = combine(value, c.head.Value)
				} else {
					value, haveValue = c.head.Value, true
				}
			} else {
				limit = c.head.Interval.Lower().AdjacentBelow()
			}
			if first || limit.Less(pieceUpper) {
				pieceUpper, first = limit, false
			}
		}
		piece, _ := interval.FromMarks(pieceLower, pieceUpper)
		out = append(out, Entry[T, V]{Interval: piece, Value: value})
		// advance the heads consumed by the piece, trim the ones that
		// stick out beyond it.
		keep := cursors[:0]
		for _, c := range cursors {
			if c.head.Interval.Upper().Compare(pieceUpper) <= 0 {
				if len(c.rest) == 0 {
					continue
				}
				c.head, c.rest = c.rest[0], c.rest[1:]
			} else if c.head.Interval.Lower().Compare(pieceLower) == 0 {
				c.head.Interval = c.head.Interval.SplitAfter(piece)
			}
			keep = append(keep, c)
		}
		cursors = keep
	}
	return out
}
