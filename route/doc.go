// Package route provides TSP-style route-optimization solvers over
// geographic stops.
//
// It includes three algorithms and a comparator:
//
//   - SolveNearestNeighbor — deterministic greedy construction.
//
//   - Complexity: O(n²); no randomness, identical input order ⇒ identical tour.
//
//   - SolveTwoOpt — 2-opt local search seeded by Nearest-Neighbor.
//
//   - Complexity: O(passes·n²); never worse than the Nearest-Neighbor baseline.
//
//   - SolveGenetic — population metaheuristic (order crossover, swap mutation,
//     2-way tournament selection); seedable via Options.Seed.
//
//   - Complexity: O(generations·population·n²) fitness work dominated.
//
//   - Compare — runs all three on the same input and returns the results
//     sorted ascending by distance (best tour first).
//
// All solvers treat their input as read-only, allocate fresh working
// structures per call and keep no state between calls. Distances are
// great-circle kilometers (see the geo package). Fewer than 2 stops yields a
// zero-distance identity result; fewer than 4 causes 2-opt and the genetic
// search to fall back to Nearest-Neighbor, since their exchange spaces are
// undefined below 4 nodes.
package route
