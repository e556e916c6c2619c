// Package bitvector provides a fixed-length bitvector packed into 64-bit
// words.
//
// A Bitvector is allocated once with all bits clear and then edited with
// Set, SetTo and Clear. Every accessor checks its position against
// [0, Len()) and fails with succinct.ErrOutOfRange otherwise. There is no
// resize operation.
//
// Bitvectors can also be created from their textual form (FromString) or
// from third-party bitmaps (FromRoaring, FromBitSet). To query rank and
// select, freeze a snapshot with rankselect.New.
package bitvector
