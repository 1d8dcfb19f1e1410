// Package bkdtree implements a family of multidimensional indexes over
// user-supplied items that expose per-dimension comparison and, for metric
// queries, per-dimension scalar coordinates.
//
// KDT is a static k-d tree built once from a bulk collection: it lays its
// values out in place via recursive median-of-sort and serves exact-match,
// containment, and range queries. BKDT is a growing, insert-only variant
// that amortizes bulk KDT builds via a Bentley-Saxe transform: a small base
// buffer plus a logarithmic forest of frozen KDTs. MetricKDT and MetricBKDT
// add Euclidean nearest-neighbor search to each, respectively.
//
// Neither structure supports deletion. Items are never rebalanced or
// relocated except during a BKDT slot merge, which the structure performs
// internally.
package bkdtree
