// Package rankselect provides an immutable rank/select index over a
// snapshot of a bitvector.
//
// # Architecture
//
//   - Snapshot: New copies the source words, so later edits to the
//     bitvector never reach a built Index.
//   - Superblocks: a cumulative one-count is stored every factor words
//     (default 20 words = 1280 bits, about 5% overhead).
//   - Rank: one table lookup, at most factor word popcounts, one masked
//     popcount.
//   - Select: lower-bound binary search over the superblock table, a word
//     scan inside the superblock, then in-word select (byte steps + bit scan).
//
// Larger factors shrink the table (~8*length/(factor*64) bytes) and
// lengthen the scan per query (~factor word operations).
//
// # Sentinels
//
// Rank and Select fail with succinct.ErrOutOfRange. The directional
// searches SelectNext1/SelectNext0 return Len() and SelectPrev1/SelectPrev0
// return -1 when no matching bit exists, because running off either end is
// the normal way a traversal terminates.
//
// An Index is safe for concurrent use by multiple goroutines.
package rankselect
