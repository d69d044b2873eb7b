// Package route - genetic search over tour permutations.
//
// SolveGenetic explores permutation space with a classic generational GA:
// uniform random initial population, 2-way tournament selection, order
// crossover (OX1), swap mutation, full generational replacement.
//
// Design:
//   - Every random draw flows through one seeded stream (Options.Seed), so a
//     run is reproducible bit-for-bit given the same seed and input.
//   - Fitness is 1/(distance+0.1); the additive constant keeps fitness
//     bounded as distance approaches zero.
//   - Selection and replacement are intentionally memoryless: without
//     Options.Elitism the best chromosome found so far may be lost. The
//     toggle copies the current best into slot 0 of the next generation.
//   - Parents are read-only during crossover/mutation; children are always
//     freshly allocated, never aliased to a parent buffer.
//   - Soft wall-clock budget via Options.TimeLimit, checked per generation.
//
// Complexity: O(generations · population · n) fitness work dominates, plus
// O(n) per crossover/mutation; O(population · n) space for two populations.
package route

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/routeopt/geo"
)

// fitnessDamping is the additive constant in fitness = 1/(distance+0.1).
const fitnessDamping = 0.1

// SolveGenetic runs the genetic search and reports the best chromosome of
// the FINAL population, with improvement measured against a freshly computed
// nearest-neighbor baseline on the same input.
//
// Fewer than 4 stops fall back to SolveNearestNeighbor; the result is still
// labeled Genetic. With Options.Generations == 0 the reported best is the
// best of the initial random population.
func SolveGenetic(stops []geo.Stop, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	n := len(stops)
	if n < 4 {
		nn, err := SolveNearestNeighbor(stops, opts)
		if err != nil {
			return Result{}, err
		}
		nn.Algorithm = Genetic

		return nn, nil
	}

	var (
		w    = distanceMatrix(stops)
		rng  = rngFromSeed(opts.Seed)
		size = opts.PopulationSize
	)

	// Initial population: independent uniform shuffles.
	pop := make([][]int, size)

	var k int
	for k = 0; k < size; k++ {
		pop[k] = randomPerm(n, rng)
	}

	var stats []GenerationStats
	if opts.CollectStats {
		stats = make([]GenerationStats, 0, opts.Generations)
	}

	deadline, useDeadline := deadlineFor(opts)

	var (
		dists = make([]float64, size)
		fits  = make([]float64, size)
		gen   int
		best  int
		next  [][]int
		p1    []int
		p2    []int
		child []int
	)
	for gen = 0; gen < opts.Generations; gen++ {
		// 1. Evaluate the current population.
		best = 0
		for k = 0; k < size; k++ {
			dists[k] = permCost(w, n, pop[k])
			fits[k] = 1 / (dists[k] + fitnessDamping)
			if dists[k] < dists[best] {
				best = k
			}
		}

		if opts.CollectStats {
			stats = append(stats, GenerationStats{
				Generation: gen,
				Best:       round1e9(dists[best]),
				Mean:       round1e9(stat.Mean(dists, nil)),
				StdDev:     round1e9(stat.StdDev(dists, nil)),
			})
		}

		// 2. Breed a same-size replacement population.
		next = make([][]int, size)
		k = 0
		if opts.Elitism {
			elite := make([]int, n)
			copy(elite, pop[best])
			next[0] = elite
			k = 1
		}
		for ; k < size; k++ {
			p1 = pop[tournament(fits, rng)]
			p2 = pop[tournament(fits, rng)]
			child = crossover(p1, p2, rng)
			if rng.Float64() < opts.MutationRate {
				swapMutate(child, rng)
			}
			next[k] = child
		}

		// 3. Full replacement.
		pop = next

		if useDeadline && time.Now().After(deadline) {
			return Result{}, ErrTimeLimit
		}
	}

	// Final selection: recompute distances over the final population.
	best = 0
	bestDist := permCost(w, n, pop[0])

	var d float64
	for k = 1; k < size; k++ {
		d = permCost(w, n, pop[k])
		if d < bestDist {
			bestDist = d
			best = k
		}
	}

	baseline := permCost(w, n, nearestNeighborPerm(w, n))

	return Result{
		Algorithm:   Genetic,
		Stops:       applyPermutation(stops, pop[best]),
		Distance:    round1e9(bestDist),
		Improvement: improvementPercent(baseline, bestDist),
		Generations: stats,
	}, nil
}

// tournament draws two population indices and keeps the fitter one.
// Strict greater-than means the first-drawn candidate wins ties; the same
// index may be drawn twice, in which case it trivially wins.
//
// Complexity: O(1).
func tournament(fits []float64, rng *rand.Rand) int {
	var (
		i = rng.Intn(len(fits))
		j = rng.Intn(len(fits))
	)
	if fits[j] > fits[i] {
		return j
	}

	return i
}

// crossover draws two cut positions and delegates to crossoverAt.
//
// Complexity: O(n) time, O(n) space (the child).
func crossover(p1, p2 []int, rng *rand.Rand) []int {
	var (
		a = rng.Intn(len(p1))
		b = rng.Intn(len(p1))
	)
	if a > b {
		a, b = b, a
	}

	return crossoverAt(p1, p2, a, b)
}

// crossoverAt performs order crossover (OX1) with cut positions a ≤ b:
// the child inherits p1[a..b] verbatim at the same positions; the remaining
// slots are filled from (b+1) mod n onward with p2's genes in p2 order
// (scanning with wrap-around, skipping genes already present) until the fill
// cursor returns to a.
//
// Parents are read-only; the child is freshly allocated.
//
// Complexity: O(n) time, O(n) space.
func crossoverAt(p1, p2 []int, a, b int) []int {
	n := len(p1)

	var (
		child = make([]int, n)
		used  = make([]bool, n)
		i     int
	)
	for i = a; i <= b; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	var (
		fill = (b + 1) % n // next child slot to write
		scan = (b + 1) % n // next p2 position to read
		g    int
	)
	for fill != a {
		g = p2[scan]
		scan = (scan + 1) % n
		if used[g] {
			continue
		}
		child[fill] = g
		used[g] = true
		fill = (fill + 1) % n
	}

	return child
}

// swapMutate exchanges the genes at two random positions of perm in place.
// The two draws are independent; drawing the same position is a no-op.
//
// Complexity: O(1).
func swapMutate(perm []int, rng *rand.Rand) {
	var (
		i = rng.Intn(len(perm))
		j = rng.Intn(len(perm))
	)
	perm[i], perm[j] = perm[j], perm[i]
}
