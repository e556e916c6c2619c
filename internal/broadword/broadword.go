package broadword

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

const (
	// WordBits is the width of a storage word.
	WordBits = 64

	// WordShift is log2(WordBits).
	WordShift = 6

	// WordMask extracts the in-word offset of a bit position.
	WordMask = WordBits - 1

	// FullMask has all bits of a word set.
	FullMask = ^uint64(0)
)

// Popcount returns the number of one bits in w.
func Popcount(w uint64) int {
	return bits.OnesCount64(w)
}

// TrailingZeros returns the offset of the lowest set bit of w, or 64 if w is 0.
func TrailingZeros(w uint64) int {
	return bits.TrailingZeros64(w)
}

// HighestSet returns the offset of the highest set bit of w, or -1 if w is 0.
func HighestSet(w uint64) int {
	return WordMask - bits.LeadingZeros64(w)
}

// LowMask returns a word with bits [0, n) set.
func LowMask(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= WordBits:
		return FullMask
	default:
		return (uint64(1) << uint(n)) - 1
	}
}

// HighMask returns a word with bits [n, 64) set.
func HighMask(n int) uint64 {
	return ^LowMask(n)
}

// Select1 returns the offset of the k-th (1-indexed) one bit of w, or -1 if
// w holds fewer than k ones.
//
// The word is narrowed a byte at a time for at most three bytes, then
// scanned bit by bit.
func Select1(w uint64, k int) int {
	if k < 1 || k > bits.OnesCount64(w) {
		return -1
	}
	off := 0
	for step := 0; step < 3; step++ {
		c := bits.OnesCount8(uint8(w))
		if c >= k {
			break
		}
		k -= c
		w >>= 8
		off += 8
	}
	for {
		if w&1 == 1 {
			k--
			if k == 0 {
				return off
			}
		}
		w >>= 1
		off++
	}
}

// Select0 returns the offset of the k-th (1-indexed) zero bit of w, or -1
// if w holds fewer than k zeros.
func Select0(w uint64, k int) int {
	return Select1(^w, k)
}

// Rank1 returns the number of one bits of w at offsets [0, off].
func Rank1(w uint64, off int) int {
	return bits.OnesCount64(w & LowMask(off+1))
}

// HardwarePopcount reports whether the CPU exposes a native population count
// that math/bits lowers to (POPCNT on x86-64, CNT on arm64 ASIMD).
func HardwarePopcount() bool {
	return cpu.X86.HasPOPCNT || cpu.ARM64.HasASIMD
}
