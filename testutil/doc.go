// Package testutil provides test fixtures for succinct.
//
// This package is intended for use in tests and benchmarks only. Random
// tree generation lives here rather than in any production constructor.
//
// # Random Bits
//
//	rng := testutil.NewRNG(seed)
//	bv := rng.RandomBits(10_000, 0.3) // ~30% ones
//
// # Random LOUDS Trees
//
//	degrees := rng.RandomDegrees(1000, 50) // BFS degree sequence
//	bv := rng.RandomLOUDS(1000, 50)        // encoded: 10 + 1^d 0 per node
package testutil
