package bitvector

import (
	"math"
	"strings"

	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/internal/broadword"
)

// headerBytes approximates the fixed per-instance footprint:
// length (8) + slice header (24).
const headerBytes = 8 + 24

// Bitvector is a fixed-length sequence of bits.
//
// Bit p lives in words[p/64] at offset p%64. The word slice carries one
// spare word so that p/64 stays in range when length is a multiple of 64.
// Bits at positions >= length are always zero.
//
// A Bitvector is not safe for concurrent use while it is being mutated.
type Bitvector struct {
	length int
	words  []uint64
}

// New allocates a Bitvector of length bits, all clear.
func New(length int) (*Bitvector, error) {
	if length < 0 {
		return nil, succinct.InvalidArgument("bitvector length %d is negative", length)
	}
	if length > math.MaxInt-broadword.WordBits {
		return nil, succinct.InvalidArgument("bitvector length %d is too large", length)
	}
	return &Bitvector{
		length: length,
		words:  make([]uint64, numWords(length)),
	}, nil
}

func numWords(length int) int {
	return (length+broadword.WordMask)>>broadword.WordShift + 1
}

// Len returns the number of addressable bits.
func (b *Bitvector) Len() int {
	return b.length
}

func (b *Bitvector) check(op string, pos int) error {
	return succinct.CheckRange(op, pos, 0, b.length-1)
}

// Get reports whether the bit at pos is set.
func (b *Bitvector) Get(pos int) (bool, error) {
	if err := b.check("get", pos); err != nil {
		return false, err
	}
	return b.words[pos>>broadword.WordShift]&(uint64(1)<<uint(pos&broadword.WordMask)) != 0, nil
}

// Set sets the bit at pos.
func (b *Bitvector) Set(pos int) error {
	if err := b.check("set", pos); err != nil {
		return err
	}
	b.words[pos>>broadword.WordShift] |= uint64(1) << uint(pos&broadword.WordMask)
	return nil
}

// SetTo sets the bit at pos to v.
func (b *Bitvector) SetTo(pos int, v bool) error {
	if !v {
		return b.Clear(pos)
	}
	return b.Set(pos)
}

// Clear clears the bit at pos.
func (b *Bitvector) Clear(pos int) error {
	if err := b.check("clear", pos); err != nil {
		return err
	}
	b.words[pos>>broadword.WordShift] &^= uint64(1) << uint(pos&broadword.WordMask)
	return nil
}

// Count returns the number of set bits.
func (b *Bitvector) Count() int {
	n := 0
	for _, w := range b.words {
		n += broadword.Popcount(w)
	}
	return n
}

// Words returns a copy of the backing words, spare word included.
// Mutating the result does not affect b.
func (b *Bitvector) Words() []uint64 {
	out := make([]uint64, len(b.words))
	copy(out, b.words)
	return out
}

// Clone returns an independent copy of b.
func (b *Bitvector) Clone() *Bitvector {
	return &Bitvector{length: b.length, words: b.Words()}
}

// SizeInBytes estimates the in-memory footprint of b.
func (b *Bitvector) SizeInBytes() int {
	return len(b.words)*8 + headerBytes
}

// String renders b as one '0' or '1' per bit, position 0 first.
func (b *Bitvector) String() string {
	var sb strings.Builder
	sb.Grow(b.length)
	for pos := 0; pos < b.length; pos++ {
		if b.words[pos>>broadword.WordShift]&(uint64(1)<<uint(pos&broadword.WordMask)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// FromString parses the output of String.
func FromString(s string) (*Bitvector, error) {
	b, err := New(len(s))
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b.words[i>>broadword.WordShift] |= uint64(1) << uint(i&broadword.WordMask)
		default:
			return nil, succinct.InvalidArgument("unexpected %q at offset %d", s[i], i)
		}
	}
	return b, nil
}
