package bitset

import bbbitset "github.com/bits-and-blooms/bitset"

// BitSet is a dense bit array recording, per k-d-tree node, whether an
// equal-keyed duplicate was sorted left of that node's median. It wraps
// bits-and-blooms/bitset, which already packs bits into []uint64 words the
// same way a hand-rolled version here would, rather than re-deriving word
// arithmetic this project's scope has no reason to own.
//
// The zero value is not usable; construct with New.
type BitSet struct {
	bits *bbbitset.BitSet
	n    int
}

// New returns a BitSet of n bits, all initially clear.
func New(n int) *BitSet {
	return &BitSet{
		bits: bbbitset.New(uint(n)),
		n:    n,
	}
}

// Len returns the number of bits the set was constructed with.
func (b *BitSet) Len() int {
	return b.n
}

// Set assigns bit i to v.
func (b *BitSet) Set(i int, v bool) {
	if v {
		b.bits.Set(uint(i))
	} else {
		b.bits.Clear(uint(i))
	}
}

// Get reports whether bit i is set.
func (b *BitSet) Get(i int) bool {
	return b.bits.Test(uint(i))
}

// Swap exchanges the bits at i and j. Used when reordering a value array
// during a k-d build so the dirty bit stays attached to its value.
func (b *BitSet) Swap(i, j int) {
	if i == j {
		return
	}
	vi, vj := b.Get(i), b.Get(j)
	b.Set(i, vj)
	b.Set(j, vi)
}
