// Package route - distance matrix prefetch.
//
// Solvers evaluate O(n²)–O(n³) edge costs; calling the trigonometric
// haversine that often would dominate runtime. Each invocation therefore
// prefetches all pairwise great-circle distances once into a dense,
// linearized buffer w[i*n+j], giving hot loops allocation-free O(1) reads
// without interface indirection.
package route

import "github.com/katalvlaran/routeopt/geo"

// distanceMatrix builds the linearized n×n great-circle distance matrix for
// stops. The matrix is symmetric with a zero diagonal by construction.
//
// Complexity: O(n²) time, O(n²) space; each off-diagonal pair is computed once.
func distanceMatrix(stops []geo.Stop) []float64 {
	n := len(stops)
	w := make([]float64, n*n)

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = geo.Distance(stops[i], stops[j])
			w[i*n+j] = d
			w[j*n+i] = d
		}
	}

	return w
}
