// Package conv provides checked integer conversions for the boundaries
// where bit positions (int) meet third-party bitmap types (uint32 members
// of roaring bitmaps, uint indexes of bitsets).
//
// Failures wrap succinct.ErrOutOfRange.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
