// Package routeopt is a compact route-optimization engine for geographic
// stops — a classical Traveling Salesman Problem (TSP) toolkit over
// great-circle distances.
//
// 🚀 What is routeopt?
//
//	A small, deterministic-by-default library that brings together:
//		• Distance model: haversine great-circle + cyclic tour distance
//		• Nearest-Neighbor: deterministic greedy tour construction
//		• 2-Opt: edge-exchange local search seeded by Nearest-Neighbor
//		• Genetic search: order crossover + swap mutation + tournament selection
//		• Comparator: run all three, ranked best-first by distance
//
// ✨ Why choose routeopt?
//
//   - Predictable – no ambient randomness; every stochastic path is seedable
//   - Side-effect free – inputs are never mutated, the engine holds no state
//   - Pure Go core – no cgo, no network, no persistence
//
// Under the hood, everything is organized under two subpackages:
//
//	geo/   — Stop value type, haversine distance, cyclic tour distance
//	route/ — Nearest-Neighbor, 2-Opt, Genetic search and the Comparator
//
// Quick ASCII example:
//
//	    A───B        A   B
//	    │   │   vs    ╲ ╱
//	    C───D         ╳      ← a crossing tour; one 2-opt exchange removes it
//	                 ╱ ╲
//	                C   D
//
// Map rendering, geocoding and UI state live with the caller: routeopt only
// accepts a list of stops and returns ordered tours with their metrics.
//
//	go get github.com/katalvlaran/routeopt/route
package routeopt
