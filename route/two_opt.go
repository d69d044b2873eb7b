// Package route - 2-opt local search.
//
// SolveTwoOpt refines the nearest-neighbor tour by repeatedly exchanging
// pairs of edges: remove (a,b) and (c,d), reconnect as (a,c) and (b,d) by
// reversing the segment between them, which uncrosses crossing edges.
//
// Design:
//   - Seeded by the deterministic nearest-neighbor permutation, so the whole
//     solver is deterministic; no RNG is involved.
//   - Pass-based scan: each pass visits all index pairs (i, j) with
//     0 ≤ i ≤ n-3 and i+2 ≤ j ≤ n-1; j+1 wraps modulo n so the implicit
//     closing edge participates in the exchange search.
//   - An accepted exchange mutates the working tour immediately and the pass
//     continues against the updated tour — no snapshot, no restart.
//   - A pass with zero accepted exchanges is a local optimum and terminates
//     the loop before the pass cap.
//   - Acceptance is strict (Δ < 0), so the result can never be worse than
//     the nearest-neighbor baseline.
//   - Soft wall-clock budget via Options.TimeLimit, checked sparsely.
//
// Complexity: O(passes·n²) candidate checks; each accepted exchange costs
// O(n) worst case for the reversal. O(n²) space for the distance matrix.
package route

import (
	"time"

	"github.com/katalvlaran/routeopt/geo"
)

// deadlineMask throttles wall-clock checks to every 2048 candidate pairs.
const deadlineMask = 2047

// SolveTwoOpt improves the nearest-neighbor tour with 2-opt exchanges and
// reports the improvement relative to that baseline.
//
// Fewer than 4 stops fall back to SolveNearestNeighbor (no valid 2-opt
// exchange exists below 4 nodes); the result is still labeled TwoOpt.
func SolveTwoOpt(stops []geo.Stop, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	n := len(stops)
	if n < 4 {
		nn, err := SolveNearestNeighbor(stops, opts)
		if err != nil {
			return Result{}, err
		}
		nn.Algorithm = TwoOpt

		return nn, nil
	}

	var (
		w    = distanceMatrix(stops)
		cur  = nearestNeighborPerm(w, n)
		base = permCost(w, n, cur) // baseline BEFORE entering the loop
	)

	var (
		deadline, useDeadline = deadlineFor(opts)
		step                  int
	)

	var (
		pass       int
		improved   bool
		i, j       int
		a, b, c, d int
		delta      float64
	)
	for pass = 0; opts.TwoOptMaxPasses == 0 || pass < opts.TwoOptMaxPasses; pass++ {
		improved = false

		for i = 0; i <= n-3; i++ {
			for j = i + 2; j <= n-1; j++ {
				// Edges (a,b) and (c,d); d wraps to the first element when j
				// is the last index.
				a = cur[i]
				b = cur[i+1]
				c = cur[j]
				d = cur[(j+1)%n]

				// Δ = new edges − old edges; accept only strict improvement.
				delta = (w[a*n+c] + w[b*n+d]) - (w[a*n+b] + w[c*n+d])
				if delta < 0 {
					reverseSegmentInPlace(cur, i+1, j)
					improved = true
				}

				step++
				if useDeadline && step&deadlineMask == 0 && time.Now().After(deadline) {
					return Result{}, ErrTimeLimit
				}
			}
		}

		if !improved {
			// Local optimum under the 2-opt neighborhood.
			break
		}
	}

	dist := permCost(w, n, cur)

	return Result{
		Algorithm:   TwoOpt,
		Stops:       applyPermutation(stops, cur),
		Distance:    round1e9(dist),
		Improvement: improvementPercent(base, dist),
	}, nil
}
