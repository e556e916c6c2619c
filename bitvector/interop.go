package bitvector

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/internal/broadword"
	"github.com/hupe1980/succinct/internal/conv"
)

// FromRoaring creates a Bitvector of length bits whose set positions are the
// members of rb. A member at or beyond length fails with ErrOutOfRange.
func FromRoaring(rb *roaring.Bitmap, length int) (*Bitvector, error) {
	b, err := New(length)
	if err != nil {
		return nil, err
	}
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}
	if maxMember := int64(rb.Maximum()); maxMember >= int64(length) {
		return nil, &succinct.RangeError{Op: "from roaring", Value: int(maxMember), Min: 0, Max: length - 1}
	}

	it := rb.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		b.words[pos>>broadword.WordShift] |= uint64(1) << uint(pos&broadword.WordMask)
	}
	return b, nil
}

// ToRoaring returns a roaring bitmap holding the set positions of b.
// Positions beyond the uint32 domain fail with ErrOutOfRange.
func (b *Bitvector) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()
	var batch []uint32
	for wi, w := range b.words {
		for w != 0 {
			pos := wi<<broadword.WordShift + broadword.TrailingZeros(w)
			v, err := conv.IntToUint32(pos)
			if err != nil {
				return nil, err
			}
			batch = append(batch, v)
			w &= w - 1
		}
		if len(batch) >= 4096 {
			rb.AddMany(batch)
			batch = batch[:0]
		}
	}
	rb.AddMany(batch)
	return rb, nil
}

// FromBitSet creates a Bitvector with the length and set bits of bs.
func FromBitSet(bs *bitset.BitSet) (*Bitvector, error) {
	if bs == nil {
		return nil, succinct.InvalidArgument("nil bitset")
	}
	length, err := conv.UintToInt(bs.Len())
	if err != nil {
		return nil, err
	}
	b, err := New(length)
	if err != nil {
		return nil, err
	}
	for i, ok := bs.NextSet(0); ok && i < bs.Len(); i, ok = bs.NextSet(i + 1) {
		pos, err := conv.UintToInt(i)
		if err != nil {
			return nil, err
		}
		b.words[pos>>broadword.WordShift] |= uint64(1) << uint(pos&broadword.WordMask)
	}
	return b, nil
}

// ToBitSet returns a bits-and-blooms bitset with the length and set bits of b.
func (b *Bitvector) ToBitSet() (*bitset.BitSet, error) {
	length, err := conv.IntToUint(b.length)
	if err != nil {
		return nil, err
	}
	bs := bitset.New(length)
	for wi, w := range b.words {
		for w != 0 {
			pos, err := conv.IntToUint(wi<<broadword.WordShift + broadword.TrailingZeros(w))
			if err != nil {
				return nil, err
			}
			bs.Set(pos)
			w &= w - 1
		}
	}
	return bs, nil
}
