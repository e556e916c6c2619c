package rankselect

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/internal/broadword"
)

// headerBytes approximates the fixed per-instance footprint:
// four ints (length, factor, superblock bits, ones) + two slice headers.
const headerBytes = 4*8 + 2*24

// Index answers rank and select queries over an immutable bit sequence.
type Index struct {
	length int
	factor int
	sbBits int
	ones   int

	words []uint64

	// counts[j] is the number of ones in words [0, j*factor).
	counts []int
}

// Stats describes a built Index.
type Stats struct {
	Length           int
	Ones             int
	Factor           int
	Superblocks      int
	SizeInBytes      int
	HardwarePopcount bool
}

// New builds an Index over a snapshot of bv.
//
// The words of bv are copied: later changes to bv are not visible through
// the Index. New fails with succinct.ErrInvalidArgument if bv is nil or the
// configured factor is negative.
func New(bv *bitvector.Bitvector, opts ...Option) (*Index, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	logger := o.logger.WithComponent("rankselect")

	start := time.Now()
	idx, err := build(bv, o)
	elapsed := time.Since(start)

	length := 0
	if bv != nil {
		length = bv.Len()
	}
	o.metricsCollector.RecordBuild("rankselect", length, elapsed, err)
	if err != nil {
		logger.LogBuild(context.Background(), "rankselect", length, elapsed, err)
		return nil, err
	}
	logger.LogBuild(context.Background(), "rankselect", length, elapsed, nil,
		"ones", idx.ones,
		"factor", idx.factor,
		"superblocks", len(idx.counts)-1,
		"hw_popcount", broadword.HardwarePopcount(),
	)
	return idx, nil
}

func build(bv *bitvector.Bitvector, o options) (*Index, error) {
	if bv == nil {
		return nil, succinct.InvalidArgument("nil bitvector")
	}
	if o.factor < 0 {
		return nil, succinct.InvalidArgument("superblock factor %d is negative", o.factor)
	}
	if o.factor > math.MaxInt/broadword.WordBits {
		return nil, succinct.InvalidArgument("superblock factor %d is too large", o.factor)
	}

	idx := &Index{
		length: bv.Len(),
		factor: o.factor,
		sbBits: o.factor * broadword.WordBits,
		words:  bv.Words(),
	}
	if err := idx.buildCounts(o.parallelism); err != nil {
		return nil, err
	}

	if idx.length > 0 {
		ones, err := idx.Rank1(idx.length - 1)
		if err != nil {
			return nil, err
		}
		idx.ones = ones
	}
	return idx, nil
}

// buildCounts fills the superblock table. With parallelism > 1 the per
// superblock popcounts are computed by a bounded errgroup; the prefix sum
// is always sequential.
func (idx *Index) buildCounts(parallelism int) error {
	n := idx.length / idx.sbBits
	counts := make([]int, n+1)

	fill := func(lo, hi int) error {
		for j := lo; j < hi; j++ {
			c := 0
			for _, w := range idx.words[(j-1)*idx.factor : j*idx.factor] {
				c += broadword.Popcount(w)
			}
			counts[j] = c
		}
		return nil
	}

	if parallelism <= 1 || n < minParallelSuperblocks {
		if err := fill(1, n+1); err != nil {
			return err
		}
	} else {
		var g errgroup.Group
		g.SetLimit(parallelism)
		chunk := (n + parallelism - 1) / parallelism
		for lo := 1; lo <= n; lo += chunk {
			hi := min(lo+chunk, n+1)
			g.Go(func() error {
				return fill(lo, hi)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	for j := 1; j <= n; j++ {
		counts[j] += counts[j-1]
	}
	idx.counts = counts
	return nil
}

// Len returns the number of bits in the sequence.
func (idx *Index) Len() int {
	return idx.length
}

// Factor returns the superblock width in words.
func (idx *Index) Factor() int {
	return idx.factor
}

// NumberOfOnes returns the number of set bits.
func (idx *Index) NumberOfOnes() int {
	return idx.ones
}

// NumberOfZeroes returns the number of clear bits.
func (idx *Index) NumberOfZeroes() int {
	return idx.length - idx.ones
}

func (idx *Index) bit(pos int) bool {
	return idx.words[pos>>broadword.WordShift]&(uint64(1)<<uint(pos&broadword.WordMask)) != 0
}

// Access reports whether the bit at pos is set.
func (idx *Index) Access(pos int) (bool, error) {
	if err := succinct.CheckRange("access", pos, 0, idx.length-1); err != nil {
		return false, err
	}
	return idx.bit(pos), nil
}

// Rank1 returns the number of set bits in [0, pos].
func (idx *Index) Rank1(pos int) (int, error) {
	if err := succinct.CheckRange("rank1", pos, 0, idx.length-1); err != nil {
		return 0, err
	}
	i := pos + 1
	sb := i / idx.sbBits
	r := idx.counts[sb]
	last := i >> broadword.WordShift
	for _, w := range idx.words[sb*idx.factor : last] {
		r += broadword.Popcount(w)
	}
	return r + broadword.Popcount(idx.words[last]&broadword.LowMask(i&broadword.WordMask)), nil
}

// Rank0 returns the number of clear bits in [0, pos].
func (idx *Index) Rank0(pos int) (int, error) {
	if err := succinct.CheckRange("rank0", pos, 0, idx.length-1); err != nil {
		return 0, err
	}
	r, err := idx.Rank1(pos)
	if err != nil {
		return 0, err
	}
	return pos - r + 1, nil
}

// Select1 returns the position of the i-th (1-indexed) set bit.
func (idx *Index) Select1(i int) (int, error) {
	if err := succinct.CheckRange("select1", i, 1, idx.ones); err != nil {
		return 0, err
	}
	// Last superblock whose cumulative count is still below i.
	sb := sort.Search(len(idx.counts), func(j int) bool {
		return idx.counts[j] >= i
	}) - 1

	x := i - idx.counts[sb]
	w := sb * idx.factor
	for {
		c := broadword.Popcount(idx.words[w])
		if c >= x {
			break
		}
		x -= c
		w++
	}
	return w<<broadword.WordShift + broadword.Select1(idx.words[w], x), nil
}

// Select0 returns the position of the i-th (1-indexed) clear bit.
func (idx *Index) Select0(i int) (int, error) {
	if err := succinct.CheckRange("select0", i, 1, idx.length-idx.ones); err != nil {
		return 0, err
	}
	sb := sort.Search(len(idx.counts), func(j int) bool {
		return j*idx.sbBits-idx.counts[j] >= i
	}) - 1

	x := i - (sb*idx.sbBits - idx.counts[sb])
	w := sb * idx.factor
	for {
		c := broadword.WordBits - broadword.Popcount(idx.words[w])
		if c >= x {
			break
		}
		x -= c
		w++
	}
	// Padding zeros past length sort after every real zero of the word.
	return w<<broadword.WordShift + broadword.Select0(idx.words[w], x), nil
}

// SelectNext1 returns the smallest position >= start holding a set bit, or
// Len() if there is none.
func (idx *Index) SelectNext1(start int) (int, error) {
	if err := succinct.CheckRange("select next1", start, 0, idx.length-1); err != nil {
		return 0, err
	}
	w := start >> broadword.WordShift
	word := idx.words[w] & broadword.HighMask(start&broadword.WordMask)
	for {
		if word != 0 {
			return w<<broadword.WordShift + broadword.TrailingZeros(word), nil
		}
		w++
		if w == len(idx.words) {
			return idx.length, nil
		}
		word = idx.words[w]
	}
}

// SelectNext0 returns the smallest position >= start holding a clear bit, or
// Len() if there is none.
func (idx *Index) SelectNext0(start int) (int, error) {
	if err := succinct.CheckRange("select next0", start, 0, idx.length-1); err != nil {
		return 0, err
	}
	w := start >> broadword.WordShift
	word := ^idx.words[w] & broadword.HighMask(start&broadword.WordMask)
	for {
		if word != 0 {
			return min(w<<broadword.WordShift+broadword.TrailingZeros(word), idx.length), nil
		}
		w++
		if w == len(idx.words) {
			return idx.length, nil
		}
		word = ^idx.words[w]
	}
}

// SelectPrev1 returns the largest position <= start holding a set bit, or -1
// if there is none. start == 0 always yields -1.
func (idx *Index) SelectPrev1(start int) (int, error) {
	if err := succinct.CheckRange("select prev1", start, 0, idx.length-1); err != nil {
		return 0, err
	}
	if start == 0 {
		return -1, nil
	}
	w := start >> broadword.WordShift
	word := idx.words[w] & broadword.LowMask(start&broadword.WordMask+1)
	for {
		if word != 0 {
			return w<<broadword.WordShift + broadword.HighestSet(word), nil
		}
		w--
		if w < 0 {
			return -1, nil
		}
		word = idx.words[w]
	}
}

// SelectPrev0 returns the largest position <= start holding a clear bit, or
// -1 if there is none. start == 0 always yields -1.
func (idx *Index) SelectPrev0(start int) (int, error) {
	if err := succinct.CheckRange("select prev0", start, 0, idx.length-1); err != nil {
		return 0, err
	}
	if start == 0 {
		return -1, nil
	}
	w := start >> broadword.WordShift
	word := ^idx.words[w] & broadword.LowMask(start&broadword.WordMask+1)
	for {
		if word != 0 {
			return w<<broadword.WordShift + broadword.HighestSet(word), nil
		}
		w--
		if w < 0 {
			return -1, nil
		}
		word = ^idx.words[w]
	}
}

// SizeInBytes estimates the in-memory footprint of the index.
func (idx *Index) SizeInBytes() int {
	return len(idx.words)*8 + len(idx.counts)*8 + headerBytes
}

// Stats returns a summary of the index.
func (idx *Index) Stats() Stats {
	return Stats{
		Length:           idx.length,
		Ones:             idx.ones,
		Factor:           idx.factor,
		Superblocks:      len(idx.counts) - 1,
		SizeInBytes:      idx.SizeInBytes(),
		HardwarePopcount: broadword.HardwarePopcount(),
	}
}

// String renders the sequence as one '0' or '1' per bit, position 0 first.
func (idx *Index) String() string {
	var sb strings.Builder
	sb.Grow(idx.length)
	for pos := 0; pos < idx.length; pos++ {
		if idx.bit(pos) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
