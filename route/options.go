// Package route - solver configuration.
//
// Options follows the struct-with-defaults pattern: DefaultOptions() returns
// the canonical knobs, callers override individual fields, and every solver
// validates the combination up-front via validateOptions.
//
// Design:
//   - All knobs are call parameters; there is no environment or file surface.
//   - Determinism is explicit: Seed routes all randomness, 0 selects a fixed
//     default stream (see rng.go).
//   - TimeLimit is a soft wall-clock budget, 0 ⇒ unlimited.
package route

import "time"

const (
	// DefaultTwoOptMaxPasses bounds full 2-opt scan passes; 0 means unlimited
	// (run until a pass accepts no exchange).
	DefaultTwoOptMaxPasses = 100

	// DefaultPopulationSize is the genetic population size.
	DefaultPopulationSize = 50

	// DefaultGenerations is the number of genetic generations.
	DefaultGenerations = 100

	// DefaultMutationRate is the per-child swap-mutation probability.
	DefaultMutationRate = 0.1
)

// Options configures the solvers. The zero value is NOT valid; start from
// DefaultOptions.
type Options struct {
	// TwoOptMaxPasses caps full neighborhood passes of the 2-opt loop.
	// 0 ⇒ unlimited: run until a pass applies no exchange (local optimum).
	TwoOptMaxPasses int

	// PopulationSize is the genetic population size (≥ 2).
	PopulationSize int

	// Generations is the number of genetic generations (≥ 0). With 0 the
	// reported best is the best chromosome of the initial random population.
	Generations int

	// MutationRate is the probability in [0,1] that a freshly produced child
	// undergoes swap mutation.
	MutationRate float64

	// Elitism, when true, copies the best current chromosome into slot 0 of
	// each next generation. Off by default: historically the best-found tour
	// is NOT guaranteed to survive, and that behavior is preserved unless the
	// caller opts in.
	Elitism bool

	// CollectStats, when true, records per-generation population statistics
	// into Result.Generations (Genetic only).
	CollectStats bool

	// Seed drives all random draws. 0 selects the fixed default stream, so
	// runs are reproducible either way; distinct non-zero seeds give
	// independent streams.
	Seed int64

	// TimeLimit is a soft wall-clock budget per solver invocation.
	// 0 ⇒ unlimited. When exceeded, solvers return ErrTimeLimit.
	TimeLimit time.Duration
}

// DefaultOptions returns the canonical defaults: 100 2-opt passes,
// population 50, 100 generations, mutation rate 0.1, no elitism, no stats,
// seed 0, no time limit.
func DefaultOptions() Options {
	return Options{
		TwoOptMaxPasses: DefaultTwoOptMaxPasses,
		PopulationSize:  DefaultPopulationSize,
		Generations:     DefaultGenerations,
		MutationRate:    DefaultMutationRate,
	}
}

// validateOptions checks internal consistency of Options without referencing
// any input stops.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TwoOptMaxPasses < 0 {
		return ErrBadOptions
	}
	if opts.PopulationSize < 2 {
		return ErrBadOptions
	}
	if opts.Generations < 0 {
		return ErrBadOptions
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return ErrBadOptions
	}
	if opts.TimeLimit < 0 {
		return ErrBadOptions
	}

	return nil
}

// deadlineFor converts the soft budget into an absolute deadline.
// The second return reports whether a deadline is enforced at all.
//
// Complexity: O(1).
func deadlineFor(opts Options) (time.Time, bool) {
	if opts.TimeLimit <= 0 {
		return time.Time{}, false
	}

	return time.Now().Add(opts.TimeLimit), true
}
