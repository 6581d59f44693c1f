package interval

import (
	"cmp"
	"fmt"

	"github.com/OneOfOne/xxhash"
)

// Hash returns a content hash over the interval's marks. It is stable
// as long as the interval is not mutated; intervals are immutable
// value types, so the hash is always stable.
func (r Interval[T]) Hash() uint64 {
	h := xxhash.New64()
	writeInterval(h, r)
	return h.Sum64()
}

// Hash returns a content hash over the canonical sequence. Canonical
// order is deterministic given disjointness, so hashing the sequence
// in order yields a position-independent content hash. The result is
// stable only while the underlying set is not mutated; Set is
// immutable, MutableSet callers must freeze first if they need a
// stable key.
func (r *Set[T]) Hash() uint64 {
	h := xxhash.New64()
	for _, iv := range r.intervals {
		writeInterval(h, iv)
	}
	return h.Sum64()
}

func writeInterval[T cmp.Ordered](h *xxhash.XXHash64, iv Interval[T]) {
	if iv.IsEmpty() {
		fmt.Fprint(h, "|empty")
		return
	}
	fmt.Fprintf(h, "|%d:%d:%v,%d:%d:%v",
		iv.lower.inf, iv.lower.kind, iv.lower.value,
		iv.upper.inf, iv.upper.kind, iv.upper.value)
}
