package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/succinct/bitvector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// RandomBits returns a bitvector of length bits where each bit is set with
// probability density.
func (r *RNG) RandomBits(length int, density float64) *bitvector.Bitvector {
	bv, err := bitvector.New(length)
	if err != nil {
		panic(err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for pos := 0; pos < length; pos++ {
		if r.rand.Float64() < density {
			_ = bv.Set(pos)
		}
	}
	return bv
}

// RandomDegrees returns the breadth-first degree sequence of a random
// ordinal tree with exactly nodes nodes, no node having more than maxDegree
// children. The first entry is the root.
func (r *RNG) RandomDegrees(nodes, maxDegree int) []int {
	if nodes <= 0 {
		return nil
	}
	if maxDegree < 1 {
		maxDegree = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	degrees := make([]int, nodes)
	created := 1 // nodes referenced so far, root included
	for k := 0; k < nodes; k++ {
		remaining := nodes - created
		if remaining == 0 {
			break
		}
		hi := min(maxDegree, remaining)
		lo := 0
		if created == k+1 {
			// k is the last referenced node; it must extend the tree.
			lo = 1
		}
		d := lo + r.rand.Intn(hi-lo+1)
		degrees[k] = d
		created += d
	}
	return degrees
}

// RandomLOUDS returns the LOUDS encoding of a random tree with nodes nodes:
// the "10" super-root prefix followed by 1^d 0 for each node in
// breadth-first order.
func (r *RNG) RandomLOUDS(nodes, maxDegree int) *bitvector.Bitvector {
	degrees := r.RandomDegrees(nodes, maxDegree)
	bv, err := bitvector.New(2*len(degrees) + 1)
	if err != nil {
		panic(err)
	}
	_ = bv.Set(0)
	pos := 2
	for _, d := range degrees {
		for i := 0; i < d; i++ {
			_ = bv.Set(pos)
			pos++
		}
		pos++
	}
	return bv
}
