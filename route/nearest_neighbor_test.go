// Package route_test exercises the nearest-neighbor builder: determinism,
// tie-breaking, permutation validity and small-input fallbacks.
package route_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeopt/geo"
	"github.com/katalvlaran/routeopt/route"
)

func TestSolveNearestNeighbor_Deterministic(t *testing.T) {
	stops := clusterStops(12, 3)

	var (
		first []string
		dist  float64
	)
	Repeat(t, 5, func(t *testing.T) {
		res, err := route.SolveNearestNeighbor(stops, route.DefaultOptions())
		require.NoError(t, err)

		if first == nil {
			first = ids(res.Stops)
			dist = res.Distance

			return
		}
		require.Equal(t, first, ids(res.Stops))
		require.Equal(t, dist, res.Distance)
	})
}

func TestSolveNearestNeighbor_PermutationAndBaseline(t *testing.T) {
	stops := clusterStops(15, 9)

	res, err := route.SolveNearestNeighbor(stops, route.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, route.NearestNeighbor, res.Algorithm)
	requirePermutation(t, stops, res.Stops)

	// The baseline reports improvement 0 and a distance consistent with the
	// public tour-distance function.
	require.Zero(t, res.Improvement)
	require.InDelta(t, geo.TourDistance(res.Stops), res.Distance, epsKm)
}

func TestSolveNearestNeighbor_FollowsChain(t *testing.T) {
	// Collinear stops in input order: greedy must walk the chain.
	stops := []geo.Stop{
		stop("s0", 0, 0),
		stop("s1", 0, 1),
		stop("s2", 0, 2),
		stop("s3", 0, 3),
		stop("s4", 0, 4),
	}

	res, err := route.SolveNearestNeighbor(stops, route.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"s0", "s1", "s2", "s3", "s4"}, ids(res.Stops))
}

func TestSolveNearestNeighbor_TieBreaksFirstIndex(t *testing.T) {
	// east and west are equidistant from origin; the scan must keep the
	// candidate encountered first (lower input index).
	stops := []geo.Stop{
		stop("origin", 0, 0),
		stop("east", 0, 1),
		stop("west", 0, -1),
	}

	res, err := route.SolveNearestNeighbor(stops, route.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"origin", "east", "west"}, ids(res.Stops))
}

func TestSolveNearestNeighbor_SmallInputs(t *testing.T) {
	res, err := route.SolveNearestNeighbor(nil, route.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, res.Stops)
	require.Zero(t, res.Distance)
	require.Zero(t, res.Improvement)

	solo := []geo.Stop{stop("solo", 1, 2)}
	res, err = route.SolveNearestNeighbor(solo, route.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []string{"solo"}, ids(res.Stops))
	require.Zero(t, res.Distance)
	require.Zero(t, res.Improvement)
}

func TestSolveNearestNeighbor_InputNotMutated(t *testing.T) {
	stops := clusterStops(10, 5)
	snapshot := slices.Clone(stops)

	_, err := route.SolveNearestNeighbor(stops, route.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, snapshot, stops)
}

func TestSolveNearestNeighbor_BadOptions(t *testing.T) {
	opts := route.DefaultOptions()
	opts.PopulationSize = 0

	_, err := route.SolveNearestNeighbor(clusterStops(5, 1), opts)
	require.ErrorIs(t, err, route.ErrBadOptions)
}
