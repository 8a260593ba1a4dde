// SPDX-License-Identifier: MIT
// Package: misopt/exact
//
// bitset.go - fixed-width vertex sets for the search hot path.

package exact

import "math/bits"

type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)>>6) }

func (b bitset) set(i int)      { b[i>>6] |= 1 << uint(i&63) }
func (b bitset) clear(i int)    { b[i>>6] &^= 1 << uint(i&63) }
func (b bitset) has(i int) bool { return b[i>>6]&(1<<uint(i&63)) != 0 }
func (b bitset) clone() bitset  { return append(bitset(nil), b...) }

// count returns |b|.
func (b bitset) count() int {
	var c int
	for _, w := range b {
		c += bits.OnesCount64(w)
	}
	return c
}

// andCount returns |b ∩ o| without allocating.
func (b bitset) andCount(o bitset) int {
	var c int
	for i, w := range b {
		c += bits.OnesCount64(w & o[i])
	}
	return c
}

// andNot removes every member of o from b.
func (b bitset) andNot(o bitset) {
	for i := range b {
		b[i] &^= o[i]
	}
}

// and keeps only members of o.
func (b bitset) and(o bitset) {
	for i := range b {
		b[i] &= o[i]
	}
}

// each calls fn for every member in ascending order.
func (b bitset) each(fn func(i int)) {
	for wi, w := range b {
		for w != 0 {
			t := bits.TrailingZeros64(w)
			fn(wi<<6 | t)
			w &= w - 1
		}
	}
}
