// Package route_test provides lightweight testing helpers shared across the
// *_test.go files in this package: deterministic fixtures, permutation
// assertions and a repetition harness for determinism checks.
package route_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeopt/geo"
)

const (
	// seedDet is the deterministic seed used by seeded fixtures and solvers.
	seedDet = int64(42)

	// epsKm is the absolute tolerance for distance comparisons: results are
	// stabilized to 1e-9 km, so anything tighter than 1e-6 is noise-free.
	epsKm = 1e-6
)

// stop is shorthand for geo.NewStop with (lat, lon) in degrees.
func stop(id string, lat, lon float64) geo.Stop {
	return geo.NewStop(id, lat, lon)
}

// unitSquare returns four stops on a ~1° square in perimeter order:
// museum(0,0) → gallery(0,1) → castle(1,1) → harbor(1,0).
func unitSquare() []geo.Stop {
	return []geo.Stop{
		stop("museum", 0, 0),
		stop("gallery", 0, 1),
		stop("castle", 1, 1),
		stop("harbor", 1, 0),
	}
}

// circleStops places n stops evenly on a ~1° circle, IDs "c00".."cNN", in
// perimeter order. The perimeter cycle is the unique optimum.
func circleStops(n int) []geo.Stop {
	stops := make([]geo.Stop, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		stops[i] = stop(fmt.Sprintf("c%02d", i), math.Sin(theta), math.Cos(theta))
	}

	return stops
}

// clusterStops draws n stops uniformly from a ~1°×1° box with a seeded RNG,
// IDs "s00".."sNN". Same seed ⇒ identical fixture.
func clusterStops(n int, seed int64) []geo.Stop {
	var (
		rng   = rand.New(rand.NewSource(seed))
		stops = make([]geo.Stop, n)
	)
	for i := 0; i < n; i++ {
		stops[i] = stop(fmt.Sprintf("s%02d", i), 47+rng.Float64(), 11+rng.Float64())
	}

	return stops
}

// ids projects a tour onto its identifier sequence.
func ids(stops []geo.Stop) []string {
	out := make([]string, len(stops))
	for i := range stops {
		out[i] = stops[i].ID
	}

	return out
}

// requirePermutation asserts that tour visits exactly the input stops: same
// cardinality, same set of identifiers, no duplicates.
func requirePermutation(t *testing.T, input, tour []geo.Stop) {
	t.Helper()
	require.Len(t, tour, len(input))

	want := make(map[string]int, len(input))
	for _, s := range input {
		want[s.ID]++
	}
	for _, s := range tour {
		want[s.ID]--
		require.GreaterOrEqual(t, want[s.ID], 0, "unexpected or duplicated stop %q", s.ID)
	}
	for id, left := range want {
		require.Zero(t, left, "stop %q missing from tour", id)
	}
}

// Repeat runs fn k times as subtests; used for determinism checks.
func Repeat(t *testing.T, k int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < k; i++ {
		t.Run(fmt.Sprintf("run-%d", i), fn)
	}
}
