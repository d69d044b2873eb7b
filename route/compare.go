// Package route - the comparator.
//
// Compare runs 2-opt, the genetic search and nearest-neighbor on the same
// input and ranks the three results by distance, best first.
//
// Concurrency: the three sub-runs are pure functions over a read-only input —
// no shared mutable state, no locking — so they fan out on goroutines and
// join on a WaitGroup. Ordering is restored by a stable sort afterwards, so
// the concurrency is invisible in the results.
package route

import (
	"sort"
	"sync"

	"github.com/katalvlaran/routeopt/geo"
)

// Compare runs all three solvers on stops and returns exactly three Results
// sorted ascending by Distance. Equal distances keep a fixed submission
// order (TwoOpt, Genetic, NearestNeighbor); results are never deduplicated
// even when two algorithms find the same tour.
//
// The first sub-run error (e.g. ErrTimeLimit) aborts the whole comparison.
func Compare(stops []geo.Stop, opts Options) ([]Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	var (
		results [3]Result
		errs    [3]error
		wg      sync.WaitGroup
	)

	run := func(slot int, solve func([]geo.Stop, Options) (Result, error)) {
		defer wg.Done()
		results[slot], errs[slot] = solve(stops, opts)
	}

	wg.Add(3)
	go run(0, SolveTwoOpt)
	go run(1, SolveGenetic)
	go run(2, SolveNearestNeighbor)
	wg.Wait()

	var i int
	for i = 0; i < 3; i++ {
		if errs[i] != nil {
			return nil, errs[i]
		}
	}

	out := results[:]
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })

	return out, nil
}
