// Package broadword implements the in-word primitives the rank/select
// index is built from: population counts, prefix masks and select within a
// single 64-bit word.
//
// Masks never shift a uint64 by 64. Go defines such shifts (the result is
// 0), but the intent "all 64 bits" is spelled out as an explicit branch so
// the code reads the same on every target.
package broadword
