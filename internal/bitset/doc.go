// Package bitset provides a dense bit array over a fixed universe, used to
// record one dirty bit per k-d-tree node.
//
// It wraps github.com/bits-and-blooms/bitset rather than hand-rolling word
// arithmetic: a single writer establishes every bit once (during a k-d tree
// build or merge) and all subsequent access is read-only, so none of this
// package's own logic needs to reason about concurrent access — it only
// narrows the wrapped type's much larger API (union, intersection,
// cardinality, serialization) down to New/Len/Get/Set/Swap.
package bitset
