// Package geo provides the geographic primitives of routeopt.
//
// It includes the value types and distance routines every solver builds on:
//
//   - Stop — an immutable stop: opaque unique ID + coordinates (orb.Point).
//
//   - Distance — great-circle (haversine) distance in kilometers, R = 6371 km.
//
//   - TourDistance — total cyclic distance of an ordered stop sequence,
//     including the implicit closing edge from the last stop back to the first.
//
// All functions are deterministic, side-effect free and safe for concurrent
// use. Coordinate-range and ID-uniqueness validation is the caller's
// responsibility; ValidateStops is provided as an opt-in helper and is never
// invoked by the solvers themselves.
package geo
