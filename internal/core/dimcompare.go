// Package core implements the balanced k-d layout, the duplicate-aware
// search recursion, and the branch-and-bound nearest-neighbor traversal
// shared by the static and growing tree types built on top of it. It knows
// nothing about the item types stored in the tree beyond the two capabilities
// the caller supplies: a per-dimension comparator, and, for metric queries,
// a per-dimension scalar coordinate.
package core

import "sort"

// CompareFunc orders a against b on the given axis, returning a negative
// number, zero, or a positive number for less-than, equal, or greater-than,
// mirroring the sign convention of bytes.Compare and slices.SortFunc.
type CompareFunc[T any] func(a, b T, dim int) int

// dimCompare adapts a CompareFunc, fixed to one axis and one sub-range of a
// value slice, into a sort.Interface. It is the one place a general-purpose
// sort touches the tree's backing arrays, and it keeps the dirty bitset
// reordered in lockstep with the values so that a bit set during an earlier
// build step stays attached to the value it was computed for.
type dimCompare[T any] struct {
	v     []T
	dirty dirtyBits
	cmp   CompareFunc[T]
	dim   int
	lo    int
	hi    int
}

func (d *dimCompare[T]) Len() int { return d.hi - d.lo + 1 }

func (d *dimCompare[T]) Less(i, j int) bool {
	return d.cmp(d.v[d.lo+i], d.v[d.lo+j], d.dim) < 0
}

func (d *dimCompare[T]) Swap(i, j int) {
	d.v[d.lo+i], d.v[d.lo+j] = d.v[d.lo+j], d.v[d.lo+i]
	d.dirty.Swap(d.lo+i, d.lo+j)
}

// dirtyBits is the subset of bitset.BitSet's API the sort step needs, so the
// sort adapter depends only on Swap rather than on the concrete bitset type.
type dirtyBits interface {
	Swap(i, j int)
}

// sortRange orders v[lo..hi] by axis dim, keeping dirty reordered alongside it.
func sortRange[T any](v []T, dirty dirtyBits, cmp CompareFunc[T], dim, lo, hi int) {
	sort.Sort(&dimCompare[T]{v: v, dirty: dirty, cmp: cmp, dim: dim, lo: lo, hi: hi})
}
