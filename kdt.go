package bkdtree

import (
	"context"
	"iter"
	"time"

	"github.com/CodeDevAM/BKDTree/internal/core"
)

// KDT is a static k-d tree built once from a bulk, non-empty collection of
// items. It supports exact-match retrieval, containment, and range
// iteration. A KDT is immutable after construction; use BKDT if the
// collection grows over time.
type KDT[T Item[T]] struct {
	tree *core.Tree[T]
	opts options
}

// NewKDT builds a KDT over dim dimensions from items. items is copied; the
// caller's slice is not retained. Fails if dim <= 0 or items is empty.
func NewKDT[T Item[T]](ctx context.Context, dim int, items []T, optFns ...Option) (*KDT[T], error) {
	o := applyOptions(optFns)

	if dim <= 0 {
		err := &ErrInvalidDimension{Dimension: dim}
		o.logger.LogBuild(ctx, dim, len(items), err)
		return nil, err
	}
	if len(items) == 0 {
		o.logger.LogBuild(ctx, dim, 0, ErrEmptyConstruction)
		return nil, ErrEmptyConstruction
	}

	start := time.Now()
	buf := append([]T(nil), items...)
	tree := core.Build(dim, buf, compareFunc[T])
	o.metricsCollector.RecordBuild(len(items), time.Since(start))
	o.logger.LogBuild(ctx, dim, len(items), nil)

	return &KDT[T]{tree: tree, opts: o}, nil
}

// Dim returns the tree's dimension count.
func (k *KDT[T]) Dim() int { return k.tree.Dim }

// Count returns the number of stored items, including duplicates.
func (k *KDT[T]) Count() int { return len(k.tree.V) }

// Contains reports whether any stored item equals key on every dimension.
func (k *KDT[T]) Contains(key T) bool {
	return k.tree.ContainsEqual(key)
}

// Get returns a lazy, restartable sequence of every stored item equal to
// key. Each range-over-func iteration is a fresh traversal.
func (k *KDT[T]) Get(key T) iter.Seq[T] {
	return func(yield func(T) bool) {
		k.tree.ForEachEqual(key, func(v T) bool { return !yield(v) })
	}
}

// GetAll returns a lazy, restartable sequence of every stored item.
func (k *KDT[T]) GetAll() iter.Seq[T] {
	return func(yield func(T) bool) {
		k.tree.ForEachRange(nil, nil, true, func(v T) bool { return !yield(v) })
	}
}

// ForEach visits every stored item. cb returns true to cancel; ForEach
// returns true iff the traversal was canceled.
func (k *KDT[T]) ForEach(ctx context.Context, cb func(T) bool) bool {
	start := time.Now()
	n := 0
	canceled := k.tree.ForEachRange(nil, nil, true, func(v T) bool {
		n++
		return cb(v)
	})
	k.opts.metricsCollector.RecordSearch(n, time.Since(start))
	k.opts.logger.LogSearch(ctx, n, canceled)
	return canceled
}

// ForEachEqual visits every stored item equal to key. cb returns true to
// cancel; ForEachEqual returns true iff the traversal was canceled.
func (k *KDT[T]) ForEachEqual(ctx context.Context, key T, cb func(T) bool) bool {
	start := time.Now()
	n := 0
	canceled := k.tree.ForEachEqual(key, func(v T) bool {
		n++
		return cb(v)
	})
	k.opts.metricsCollector.RecordSearch(n, time.Since(start))
	k.opts.logger.LogSearch(ctx, n, canceled)
	return canceled
}

// ForEachRange visits every stored item v with lo <= v (dimension-wise) and,
// depending on hiInclusive, v <= hi or v < hi. Either bound may be nil to
// leave that side unconstrained. cb returns true to cancel; ForEachRange
// returns true iff the traversal was canceled.
func (k *KDT[T]) ForEachRange(ctx context.Context, cb func(T) bool, lo, hi *T, hiInclusive bool) bool {
	start := time.Now()
	n := 0
	canceled := k.tree.ForEachRange(lo, hi, hiInclusive, func(v T) bool {
		n++
		return cb(v)
	})
	k.opts.metricsCollector.RecordSearch(n, time.Since(start))
	k.opts.logger.LogSearch(ctx, n, canceled)
	return canceled
}
