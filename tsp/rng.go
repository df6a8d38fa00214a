// Package tsp - RNG utilities shared by the tabu search.
//
// This file centralizes deterministic random generation: initial tours,
// double-bridge cut points and elite restarts all draw from a *rand.Rand that
// is either injected by the caller or derived from Options.Seed.
//
// A fixed seed reproduces a search bit for bit. Nothing in the package reads
// the clock; callers that want fresh randomness pass a fresh seed.
//
// A *rand.Rand must not be shared between goroutines. Repeated runs take
// independent streams from DeriveSeed.
package tsp

import "math/rand"

// defaultRNGSeed replaces a zero seed.
const defaultRNGSeed int64 = 1

// InitPolicy selects how an initial tour is randomized.
type InitPolicy int

const (
	// InitSwaps performs n random transpositions of interior positions.
	// The resulting distribution is not uniform; it is kept because published
	// tuning results were produced with it.
	InitSwaps InitPolicy = iota
	// InitUniform draws a uniformly random interior permutation (Fisher–Yates).
	InitUniform
	// InitIdentity leaves the tour as given.
	InitIdentity
)

// rngFromSeed seeds a generator with seed, or defaultRNGSeed when seed is 0.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// NewRand returns a deterministic generator for seed, following the same
// seed==0 policy as the solver.
func NewRand(seed int64) *rand.Rand { return rngFromSeed(seed) }

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Repeated runs over the same board use DeriveSeed(base, run) so that each run
// gets an independent, reproducible stream.
//
// The mixing is the SplitMix64 finalizer (Vigna 2014).
func DeriveSeed(parent int64, stream uint64) int64 {
	const golden = 0x9e3779b97f4a7c15
	z := uint64(parent) ^ (stream + golden)
	z += golden
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return int64(z ^ (z >> 31))
}

// InitRandom scrambles the interior of s in place with n random
// transpositions, one per tour edge. Each swap picks two positions
// independently from [1, len(Sequence)-2]; the depot positions are never
// touched.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n).
func InitRandom(s *Solution, rng *rand.Rand) {
	seq := s.Sequence
	interior := len(seq) - 2
	if interior < 2 {
		return
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var (
		k, a, b int
	)
	for k = 1; k < len(seq); k++ {
		a = r.Intn(interior) + 1
		b = r.Intn(interior) + 1
		seq[a], seq[b] = seq[b], seq[a]
	}
}

// InitShuffle draws a uniformly random permutation of the interior of s.
// If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n).
func InitShuffle(s *Solution, rng *rand.Rand) {
	if len(s.Sequence) < 4 {
		return
	}
	shuffleIntsInPlace(s.Sequence[1:len(s.Sequence)-1], rng)
}

// Randomize applies p to s.
func (p InitPolicy) Randomize(s *Solution, rng *rand.Rand) {
	switch p {
	case InitSwaps:
		InitRandom(s, rng)
	case InitUniform:
		InitShuffle(s, rng)
	}
}

// shuffleIntsInPlace is a Fisher–Yates shuffle of a; a nil rng means the
// default stream.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	if len(a) < 2 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	for hi := len(a) - 1; hi > 0; hi-- {
		k := rng.Intn(hi + 1)
		a[hi], a[k] = a[k], a[hi]
	}
}
