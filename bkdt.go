package bkdtree

import (
	"context"
	"iter"
	"sync/atomic"
	"time"

	"github.com/CodeDevAM/BKDTree/internal/core"
)

// maxSlots bounds the Bentley-Saxe slot cascade; a BKDT can hold at most
// blockSize*(2^maxSlots-1) items via slots plus up to blockSize more in
// its base buffer.
const maxSlots = 32

// DefaultBlockSize is the block size recommended when callers have no
// specific reason to pick another.
const DefaultBlockSize = 128

// BKDT is a growing, insert-only k-d tree. It amortizes bulk KDT builds via
// the Bentley-Saxe transform: a small base buffer of uncommitted inserts,
// plus a sparse forest of frozen KDTs ("slots") at power-of-two capacities
// blockSize*2^k. On base-buffer overflow, the base and all occupied
// low-index slots are concatenated and rebuilt into the next empty slot.
type BKDT[T Item[T]] struct {
	dim       int
	blockSize int
	base      []T
	slots     []*core.Tree[T]
	count     int
	enumCount atomic.Int64
	opts      options
}

// NewBKDT constructs an empty BKDT over dim dimensions with the given block
// size. Fails if dim <= 0 or blockSize < 2.
func NewBKDT[T Item[T]](dim, blockSize int, optFns ...Option) (*BKDT[T], error) {
	o := applyOptions(optFns)
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if blockSize < 2 {
		return nil, &ErrInvalidBlockSize{BlockSize: blockSize}
	}
	return &BKDT[T]{
		dim:       dim,
		blockSize: blockSize,
		base:      make([]T, 0, blockSize),
		opts:      o,
	}, nil
}

// Dim returns the tree's dimension count.
func (b *BKDT[T]) Dim() int { return b.dim }

// BlockSize returns the base buffer capacity and slot-size unit.
func (b *BKDT[T]) BlockSize() int { return b.blockSize }

// Count returns the total number of items ever inserted.
func (b *BKDT[T]) Count() int { return b.count }

// Insert appends value. Fails if a query is mid-enumeration (ErrConcurrent
// Modification) or if the slot cascade would need a 33rd slot
// (ErrCapacityExceeded).
func (b *BKDT[T]) Insert(ctx context.Context, value T) error {
	start := time.Now()
	err := b.insert(ctx, value)
	b.opts.metricsCollector.RecordInsert(time.Since(start), err)
	b.opts.logger.LogInsert(ctx, b.count, err)
	return err
}

func (b *BKDT[T]) insert(ctx context.Context, value T) error {
	if b.enumCount.Load() != 0 {
		return ErrConcurrentModification
	}
	if len(b.base) >= b.blockSize {
		if err := b.mergeCascade(ctx); err != nil {
			return err
		}
	}
	b.base = append(b.base, value)
	b.count++
	return nil
}

// mergeCascade finds the smallest empty slot k0, concatenates base with
// slots[0..k0), builds one new frozen tree of size blockSize*2^k0 from the
// result, places it at slots[k0], and clears its predecessors and base.
func (b *BKDT[T]) mergeCascade(ctx context.Context) error {
	k0 := 0
	for k0 < len(b.slots) && b.slots[k0] != nil {
		k0++
	}
	if k0 >= maxSlots {
		return &ErrCapacityExceeded{MaxSlots: maxSlots}
	}

	total := len(b.base)
	for k := 0; k < k0; k++ {
		total += len(b.slots[k].V)
	}
	merged := make([]T, 0, total)
	merged = append(merged, b.base...)
	for k := 0; k < k0; k++ {
		merged = append(merged, b.slots[k].V...)
		b.slots[k] = nil
	}

	start := time.Now()
	tree := core.Build(b.dim, merged, compareFunc[T])
	if k0 == len(b.slots) {
		b.slots = append(b.slots, tree)
	} else {
		b.slots[k0] = tree
	}
	b.base = make([]T, 0, b.blockSize)

	b.opts.metricsCollector.RecordMerge(k0, total, time.Since(start))
	b.opts.logger.LogMerge(ctx, k0, total)
	return nil
}

// Contains reports whether any inserted item equals key on every
// dimension. It scans the base buffer first, then the occupied slots in
// ascending order, short-circuiting on the first match.
func (b *BKDT[T]) Contains(key T) bool {
	for _, v := range b.base {
		if equalAll(v, key, b.dim) {
			return true
		}
	}
	for _, s := range b.slots {
		if s == nil {
			continue
		}
		if s.ContainsEqual(key) {
			return true
		}
	}
	return false
}

// Get returns a lazy, restartable sequence of every inserted item equal to
// key, base-first then slot-ascending. While a range over the returned
// sequence is in progress, Insert fails.
func (b *BKDT[T]) Get(key T) iter.Seq[T] {
	return func(yield func(T) bool) {
		b.enumCount.Add(1)
		defer b.enumCount.Add(-1)

		for _, v := range b.base {
			if equalAll(v, key, b.dim) {
				if !yield(v) {
					return
				}
			}
		}
		for _, s := range b.slots {
			if s == nil {
				continue
			}
			if s.ForEachEqual(key, func(v T) bool { return !yield(v) }) {
				return
			}
		}
	}
}

// GetAll returns a lazy, restartable sequence of every inserted item,
// base-first then slot-ascending. While a range over the returned sequence
// is in progress, Insert fails.
func (b *BKDT[T]) GetAll() iter.Seq[T] {
	return func(yield func(T) bool) {
		b.enumCount.Add(1)
		defer b.enumCount.Add(-1)

		for _, v := range b.base {
			if !yield(v) {
				return
			}
		}
		for _, s := range b.slots {
			if s == nil {
				continue
			}
			if s.ForEachRange(nil, nil, true, func(v T) bool { return !yield(v) }) {
				return
			}
		}
	}
}

// ForEach visits every inserted item, base-first then slot-ascending. cb
// returns true to cancel; ForEach returns true iff the traversal was
// canceled. Insert fails while ForEach is running.
func (b *BKDT[T]) ForEach(ctx context.Context, cb func(T) bool) bool {
	b.enumCount.Add(1)
	defer b.enumCount.Add(-1)

	start := time.Now()
	n := 0
	canceled := false
	for _, v := range b.base {
		n++
		if cb(v) {
			canceled = true
			break
		}
	}
	if !canceled {
		for _, s := range b.slots {
			if s == nil {
				continue
			}
			if s.ForEachRange(nil, nil, true, func(v T) bool {
				n++
				return cb(v)
			}) {
				canceled = true
				break
			}
		}
	}
	b.opts.metricsCollector.RecordSearch(n, time.Since(start))
	b.opts.logger.LogSearch(ctx, n, canceled)
	return canceled
}

// ForEachEqual visits every inserted item equal to key, base-first then
// slot-ascending. cb returns true to cancel; ForEachEqual returns true iff
// the traversal was canceled. Insert fails while ForEachEqual is running.
func (b *BKDT[T]) ForEachEqual(ctx context.Context, key T, cb func(T) bool) bool {
	b.enumCount.Add(1)
	defer b.enumCount.Add(-1)

	start := time.Now()
	n := 0
	canceled := false
	for _, v := range b.base {
		if equalAll(v, key, b.dim) {
			n++
			if cb(v) {
				canceled = true
				break
			}
		}
	}
	if !canceled {
		for _, s := range b.slots {
			if s == nil {
				continue
			}
			if s.ForEachEqual(key, func(v T) bool {
				n++
				return cb(v)
			}) {
				canceled = true
				break
			}
		}
	}
	b.opts.metricsCollector.RecordSearch(n, time.Since(start))
	b.opts.logger.LogSearch(ctx, n, canceled)
	return canceled
}

// ForEachRange visits every inserted item v with lo <= v (dimension-wise)
// and, depending on hiInclusive, v <= hi or v < hi, base-first then
// slot-ascending. Either bound may be nil to leave that side unconstrained.
// cb returns true to cancel; ForEachRange returns true iff the traversal
// was canceled. Insert fails while ForEachRange is running.
func (b *BKDT[T]) ForEachRange(ctx context.Context, cb func(T) bool, lo, hi *T, hiInclusive bool) bool {
	if lo != nil && hi != nil {
		for d := 0; d < b.dim; d++ {
			if (*lo).CompareDim(*hi, d) == GT {
				return false
			}
		}
	}

	b.enumCount.Add(1)
	defer b.enumCount.Add(-1)

	start := time.Now()
	n := 0
	canceled := false
	for _, v := range b.base {
		if itemInRange(v, lo, hi, b.dim, hiInclusive) {
			n++
			if cb(v) {
				canceled = true
				break
			}
		}
	}
	if !canceled {
		for _, s := range b.slots {
			if s == nil {
				continue
			}
			if s.ForEachRange(lo, hi, hiInclusive, func(v T) bool {
				n++
				return cb(v)
			}) {
				canceled = true
				break
			}
		}
	}
	b.opts.metricsCollector.RecordSearch(n, time.Since(start))
	b.opts.logger.LogSearch(ctx, n, canceled)
	return canceled
}

// equalAll reports whether a and b compare equal on every axis in [0, dim).
func equalAll[T Item[T]](a, b T, dim int) bool {
	for d := 0; d < dim; d++ {
		if a.CompareDim(b, d) != EQ {
			return false
		}
	}
	return true
}

// itemInRange reports whether v falls within [lo, hi] on every dimension in
// [0, dim). A nil bound is unconstrained on that side; hi is inclusive iff
// hiInclusive.
func itemInRange[T Item[T]](v T, lo, hi *T, dim int, hiInclusive bool) bool {
	for d := 0; d < dim; d++ {
		if lo != nil && v.CompareDim(*lo, d) == LT {
			return false
		}
		if hi != nil {
			c := v.CompareDim(*hi, d)
			if hiInclusive {
				if c == GT {
					return false
				}
			} else if c != LT {
				return false
			}
		}
	}
	return true
}
