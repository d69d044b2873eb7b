// Package route - RNG utilities shared by the stochastic solvers.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Performance: O(1) helpers, O(n) shuffles, no hidden allocations.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each solver invocation creates its
//     own stream from Options.Seed and never shares it.
package route

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass Seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var (
		i int
		j int
	)
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomPerm returns a fresh uniformly shuffled permutation of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func randomPerm(n int, rng *rand.Rand) []int {
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleInPlace(p, rng)

	return p
}
