package interval

// Allen's interval algebra. Each relation takes a strict flag and a
// reverse flag; reverse computes the relation with operand roles
// swapped, which exposes the inverse relations (met-by, overlapped-by,
// started-by, contains, finished-by) without separate methods. The
// empty interval satisfies no relation.

// Meets reports whether the interval's upper mark touches the other's
// lower mark with no overlap. With strict=false the equality is
// relaxed to mark nearness, so touching with one-sided openness or a
// one-point overlap both count.
func (r Interval[T]) Meets(other Interval[T], strict, reverse bool) bool {
	if reverse {
		return other.Meets(r, strict, false)
	}
	if !r.nonEmpty || !other.nonEmpty {
		return false
	}
	if strict {
		return r.upper.Compare(other.lower) == 0
	}
	return r.upper.Near(other.lower)
}

// Overlaps reports whether the intervals share points while neither
// contains the other and their lower bounds differ.
func (r Interval[T]) Overlaps(other Interval[T], strict, reverse bool) bool {
	if reverse {
		return other.Overlaps(r, strict, false)
	}
	if !r.nonEmpty || !other.nonEmpty {
		return false
	}
	if strict {
		return r.lower.Less(other.lower) &&
			other.lower.Less(r.upper) &&
			r.upper.Less(other.upper)
	}
	return r.lower.Compare(other.lower) <= 0 &&
		other.lower.Compare(r.upper) <= 0 &&
		r.upper.Compare(other.upper) <= 0
}

// Starts reports whether the interval begins the other: same lower
// mark and a strictly earlier upper mark (or earlier-or-equal when
// strict=false, where the lower marks only need to be near).
func (r Interval[T]) Starts(other Interval[T], strict, reverse bool) bool {
	if reverse {
		return other.Starts(r, strict, false)
	}
	if !r.nonEmpty || !other.nonEmpty {
		return false
	}
	if strict {
		return r.lower.Compare(other.lower) == 0 && r.upper.Less(other.upper)
	}
	return r.lower.Near(other.lower) && r.upper.Compare(other.upper) <= 0
}

// During reports whether the interval lies within the other's open
// interior (strict) or within its closure (non-strict).
func (r Interval[T]) During(other Interval[T], strict, reverse bool) bool {
	if reverse {
		return other.During(r, strict, false)
	}
	if !r.nonEmpty || !other.nonEmpty {
		return false
	}
	if strict {
		return other.lower.Less(r.lower) && r.upper.Less(other.upper)
	}
	return other.lower.Compare(r.lower) <= 0 && r.upper.Compare(other.upper) <= 0
}

// Finishes reports whether the interval ends the other: same upper
// mark and a strictly later lower mark. Mirror of Starts.
func (r Interval[T]) Finishes(other Interval[T], strict, reverse bool) bool {
	if reverse {
		return other.Finishes(r, strict, false)
	}
	if !r.nonEmpty || !other.nonEmpty {
		return false
	}
	if strict {
		return other.lower.Less(r.lower) && r.upper.Compare(other.upper) == 0
	}
	return other.lower.Compare(r.lower) <= 0 && r.upper.Near(other.upper)
}
