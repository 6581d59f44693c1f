package intervaldict

import (
	"cmp"
	"reflect"
)

type config[T cmp.Ordered, V any] struct {
	combine     func(existing, incoming V) V
	equal       func(a, b V) bool
	defaultFn   func() V
	commutative bool
}

func newConfig[T cmp.Ordered, V any](opts ...Option[T, V]) config[T, V] {
	cfg := config[T, V]{
		equal: func(a, b V) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a dictionary at construction time. The options of
// a dictionary carry over to every dictionary derived from it.
type Option[T cmp.Ordered, V any] func(*config[T, V])

// WithCombine sets the operator applied when a written interval
// overlaps an existing entry. Without it a write overwrites the
// overlapped part.
func WithCombine[T cmp.Ordered, V any](fn func(existing, incoming V) V) Option[T, V] {
	return func(cfg *config[T, V]) {
		cfg.combine = fn
	}
}

// WithCommutative declares the combine operator commutative and
// associative, which lets Update fold all sources in a single boundary
// sweep instead of entry-by-entry writes.
func WithCommutative[T cmp.Ordered, V any]() Option[T, V] {
	return func(cfg *config[T, V]) {
		cfg.commutative = true
	}
}

// WithEqual sets the value equality used by Compress and Equal. The
// default is reflect.DeepEqual.
func WithEqual[T cmp.Ordered, V any](fn func(a, b V) bool) Option[T, V] {
	return func(cfg *config[T, V]) {
		cfg.equal = fn
	}
}

// WithDefault sets a factory for missing values: a mutable dictionary
// lookup on an uncovered point materializes the default instead of
// returning ErrKeyNotFound.
func WithDefault[T cmp.Ordered, V any](fn func() V) Option[T, V] {
	return func(cfg *config[T, V]) {
		cfg.defaultFn = fn
	}
}
