// Package route - tour utilities shared by the solvers.
//
// Tours are open index permutations over the input stop slice; the closing
// edge from the last index back to the first is implicit. This differs from
// closed n+1 representations on purpose: the external contract speaks in
// plain permutations, and the cyclic edge lives in the cost functions.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n) helpers; in-place mutations avoid extra allocations.
package route

import (
	"math"

	"github.com/katalvlaran/routeopt/geo"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrBadPermutation
		}
		if seen[v] {
			return ErrBadPermutation
		}
		seen[v] = true
	}

	return nil
}

// permCost sums the cyclic tour distance of perm over the linearized matrix
// w (n×n), including the implicit closing edge. Callers stabilize the final
// reported value with round1e9; intermediate sums stay raw so 2-opt deltas
// compose exactly.
//
// Complexity: O(n) time, O(1) space.
func permCost(w []float64, n int, perm []int) float64 {
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += w[perm[i]*n+perm[i+1]]
	}
	sum += w[perm[n-1]*n+perm[0]] // closing edge

	return sum
}

// reverseSegmentInPlace reverses the inclusive segment perm[i..k] in place.
// This is the primitive behind every accepted 2-opt exchange.
//
// Contract: 0 ≤ i < k ≤ len(perm)-1 (enforced by the caller's scan bounds).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(perm []int, i, k int) {
	for i < k {
		perm[i], perm[k] = perm[k], perm[i]
		i++
		k--
	}
}

// applyPermutation materializes a tour: a fresh stop slice ordered by perm.
// The input slice is never aliased, so results stay valid if the caller
// later mutates its own slice.
//
// Complexity: O(n) time, O(n) space.
func applyPermutation(stops []geo.Stop, perm []int) []geo.Stop {
	out := make([]geo.Stop, len(perm))

	var i int
	for i = 0; i < len(perm); i++ {
		out[i] = stops[perm[i]]
	}

	return out
}

// identityTour copies stops verbatim; used for the n < 2 fallback so the
// caller's slice is never aliased by a Result.
//
// Complexity: O(n) time, O(n) space.
func identityTour(stops []geo.Stop) []geo.Stop {
	out := make([]geo.Stop, len(stops))
	copy(out, stops)

	return out
}

// improvementPercent returns the percentage reduction of dist relative to
// baseline, or 0 when no meaningful baseline exists (baseline ≤ 0).
//
// Complexity: O(1).
func improvementPercent(baseline, dist float64) float64 {
	if baseline <= 0 {
		return 0
	}

	return (baseline - dist) / baseline * 100
}

// round1e9 returns x rounded to 1e-9 absolute precision. Keeps reported
// distances stable across platforms without affecting which tour is shorter.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// EqualCyclic reports whether a and b describe the same cyclic tour: the same
// stop-ID sequence up to rotation and full reversal. Useful when comparing
// alternative solutions that encode one cycle differently.
//
// Complexity: O(n²) worst case, O(n) space.
func EqualCyclic(a, b []geo.Stop) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	var (
		p, i int
		fwd  bool
		rev  bool
	)
	for p = 0; p < n; p++ {
		if b[p].ID != a[0].ID {
			continue
		}

		// Forward match: a[i] == b[(p+i) mod n].
		fwd = true
		for i = 0; i < n; i++ {
			if a[i].ID != b[(p+i)%n].ID {
				fwd = false
				break
			}
		}
		if fwd {
			return true
		}

		// Reverse match: a[i] == b[(p-i) mod n].
		rev = true
		for i = 0; i < n; i++ {
			if a[i].ID != b[((p-i)%n+n)%n].ID {
				rev = false
				break
			}
		}
		if rev {
			return true
		}
	}

	return false
}
