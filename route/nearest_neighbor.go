// Package route - deterministic nearest-neighbor construction.
//
// SolveNearestNeighbor builds the greedy tour that anchors the whole engine:
// it is both a standalone solver and the improvement baseline for 2-opt and
// the genetic search.
//
// Design:
//   - Start vertex is fixed to index 0 of the input order, never randomized;
//     order sensitivity is part of the contract and is covered by tests.
//   - Unvisited candidates live in an explicit index array scanned in input
//     order, with order-preserving removal of the chosen element. The ordered
//     scan pins the tie-break rule: a strict less-than update means the
//     first-encountered minimum wins.
//   - No RNG, no time budget: the O(n²) scan is the whole algorithm.
//
// Complexity: O(n²) time, O(n) extra space beyond the distance matrix.
package route

import "github.com/katalvlaran/routeopt/geo"

// SolveNearestNeighbor computes the deterministic greedy tour: starting from
// the first input stop, repeatedly append the closest unvisited stop.
// Improvement is always 0 — this tour IS the baseline.
//
// Fewer than 2 stops yield the input order unchanged with distance 0.
func SolveNearestNeighbor(stops []geo.Stop, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	n := len(stops)
	if n < 2 {
		return Result{Algorithm: NearestNeighbor, Stops: identityTour(stops)}, nil
	}

	w := distanceMatrix(stops)
	perm := nearestNeighborPerm(w, n)

	return Result{
		Algorithm: NearestNeighbor,
		Stops:     applyPermutation(stops, perm),
		Distance:  round1e9(permCost(w, n, perm)),
	}, nil
}

// nearestNeighborPerm runs the greedy scan over the linearized matrix w and
// returns the visiting order as an index permutation starting at 0.
//
// Invariant: ties break toward the candidate encountered first in the scan
// (strict less-than when updating the running minimum).
//
// Complexity: O(n²) time, O(n) space.
func nearestNeighborPerm(w []float64, n int) []int {
	perm := make([]int, 0, n)
	perm = append(perm, 0)

	// Remaining candidate indices, in input order.
	unvisited := make([]int, n-1)

	var i int
	for i = 1; i < n; i++ {
		unvisited[i-1] = i
	}

	var (
		cur  = 0
		best int     // position of the running minimum within unvisited
		d    float64 // candidate distance
		min  float64 // running minimum distance
		k    int
	)
	for len(unvisited) > 0 {
		best = 0
		min = w[cur*n+unvisited[0]]
		for k = 1; k < len(unvisited); k++ {
			d = w[cur*n+unvisited[k]]
			if d < min {
				min = d
				best = k
			}
		}

		cur = unvisited[best]
		perm = append(perm, cur)

		// Order-preserving removal: candidates stay in ascending input order,
		// so "first encountered" remains "lowest input index" on every scan.
		// Swap-removal would be O(1) but would scramble tie-break order.
		unvisited = append(unvisited[:best], unvisited[best+1:]...)
	}

	return perm
}
