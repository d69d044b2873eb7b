package route

import (
	"errors"

	"github.com/katalvlaran/routeopt/geo"
)

// ErrBadOptions is returned when an Options field is outside its valid range.
var ErrBadOptions = errors.New("route: invalid options")

// ErrTimeLimit is returned when a positive Options.TimeLimit is exceeded.
var ErrTimeLimit = errors.New("route: time limit exceeded")

// ErrBadPermutation is returned when an index slice is not a permutation of {0..n-1}.
var ErrBadPermutation = errors.New("route: not a permutation")

// Algorithm identifies which solver produced a Result.
type Algorithm int

const (
	// NearestNeighbor is the deterministic greedy construction; it is also the
	// improvement baseline for the other two algorithms.
	NearestNeighbor Algorithm = iota

	// TwoOpt is the 2-opt local search seeded by NearestNeighbor.
	TwoOpt

	// Genetic is the population-based metaheuristic.
	Genetic
)

// String returns a stable, lowercase name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case NearestNeighbor:
		return "nearest-neighbor"
	case TwoOpt:
		return "two-opt"
	case Genetic:
		return "genetic"
	default:
		return "unknown"
	}
}

// GenerationStats summarizes one genetic generation's population, measured
// over tour distances (kilometers) before the generation is replaced.
// Collected only when Options.CollectStats is set.
type GenerationStats struct {
	// Generation is the zero-based generation index.
	Generation int

	// Best is the minimum tour distance in the population.
	Best float64

	// Mean is the arithmetic mean of the population's tour distances.
	Mean float64

	// StdDev is the sample standard deviation of the population's tour distances.
	StdDev float64
}

// Result holds the outcome of one solver run.
type Result struct {
	// Algorithm names the solver that produced this result.
	Algorithm Algorithm

	// Stops is the computed tour: a permutation of the input stops,
	// interpreted cyclically (an implicit edge closes last → first).
	Stops []geo.Stop

	// Distance is the total cyclic tour distance in kilometers.
	Distance float64

	// Improvement is the percentage reduction relative to the
	// Nearest-Neighbor baseline on the same input; 0 when the result is
	// itself the baseline or when no meaningful baseline exists (n < 2).
	Improvement float64

	// Generations carries per-generation population statistics; non-nil only
	// for Genetic runs with Options.CollectStats enabled.
	Generations []GenerationStats
}
