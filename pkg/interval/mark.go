package interval

import (
	"cmp"
	"fmt"
)

// mark kinds. The numeric values define the tie-break order for marks
// bounding the same value: an open upper mark sorts before a closed
// mark, which sorts before an open lower mark. Closed endpoints
// therefore sort outward from the interval they bound.
const (
	kindOpenUpper int8 = -1
	kindClosed    int8 = 0
	kindOpenLower int8 = 1
)

// infinity sentinels embedded in the mark itself.
const (
	infNeg  int8 = -1
	infNone int8 = 0
	infPos  int8 = 1
)

// Mark encodes one interval endpoint: a value (or an infinity
// sentinel), its side and its openness. Marks of different intervals
// are comparable under a single total order, which is what allows the
// engine to run merge scans over canonical sequences.
type Mark[T cmp.Ordered] struct {
	value T
	inf   int8
	kind  int8
}

func lowerMark[T cmp.Ordered](v T, closedMark bool) Mark[T] {
	if closedMark {
		return Mark[T]{value: v, kind: kindClosed}
	}
	return Mark[T]{value: v, kind: kindOpenLower}
}

func upperMark[T cmp.Ordered](v T, closedMark bool) Mark[T] {
	if closedMark {
		return Mark[T]{value: v, kind: kindClosed}
	}
	return Mark[T]{value: v, kind: kindOpenUpper}
}

func negInfMark[T cmp.Ordered]() Mark[T] {
	return Mark[T]{inf: infNeg, kind: kindOpenLower}
}

func posInfMark[T cmp.Ordered]() Mark[T] {
	return Mark[T]{inf: infPos, kind: kindOpenUpper}
}

// Value returns the finite value of the mark. The second return is
// false for infinite marks.
func (r Mark[T]) Value() (T, bool) {
	var zero T
	if r.inf != infNone {
		return zero, false
	}
	return r.value, true
}

// Closed reports whether the mark is a closed endpoint.
func (r Mark[T]) Closed() bool { return r.kind == kindClosed }

// IsNegInf reports whether the mark is the negative infinity sentinel.
func (r Mark[T]) IsNegInf() bool { return r.inf == infNeg }

// IsPosInf reports whether the mark is the positive infinity sentinel.
func (r Mark[T]) IsPosInf() bool { return r.inf == infPos }

// Compare orders two marks by (infinity, value, kind).
func (r Mark[T]) Compare(other Mark[T]) int {
	if c := cmp.Compare(r.inf, other.inf); c != 0 {
		return c
	}
	if r.inf == infNone {
		if c := cmp.Compare(r.value, other.value); c != 0 {
			return c
		}
	}
	return cmp.Compare(r.kind, other.kind)
}

// Less reports whether r orders strictly before other.
func (r Mark[T]) Less(other Mark[T]) bool { return r.Compare(other) < 0 }

// Near reports whether the two marks bound exactly the same value with
// complementary closure, leaving no point strictly between them.
func (r Mark[T]) Near(other Mark[T]) bool {
	if r.inf != other.inf {
		return false
	}
	if r.inf == infNone && r.value != other.value {
		return false
	}
	return r.kind == kindClosed || other.kind == kindClosed || r.kind == other.kind
}

// AdjacentBelow returns, for a lower mark, the upper mark of the
// region that stops just where this mark starts. The two marks are
// Near each other.
func (r Mark[T]) AdjacentBelow() Mark[T] {
	if r.kind == kindClosed {
		return Mark[T]{value: r.value, inf: r.inf, kind: kindOpenUpper}
	}
	return Mark[T]{value: r.value, inf: r.inf, kind: kindClosed}
}

// AdjacentAbove returns, for an upper mark, the lower mark of the
// region that begins just where this mark ends. The two marks are
// Near each other.
func (r Mark[T]) AdjacentAbove() Mark[T] {
	if r.kind == kindClosed {
		return Mark[T]{value: r.value, inf: r.inf, kind: kindOpenLower}
	}
	return Mark[T]{value: r.value, inf: r.inf, kind: kindClosed}
}

func maxMark[T cmp.Ordered](a, b Mark[T]) Mark[T] {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

func minMark[T cmp.Ordered](a, b Mark[T]) Mark[T] {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

func (r Mark[T]) String() string {
	switch r.inf {
	case infNeg:
		return "-inf"
	case infPos:
		return "+inf"
	}
	switch r.kind {
	case kindOpenLower:
		return fmt.Sprintf("%v+", r.value)
	case kindOpenUpper:
		return fmt.Sprintf("%v-", r.value)
	}
	return fmt.Sprintf("%v", r.value)
}
