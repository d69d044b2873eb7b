// Package geo - great-circle and cyclic tour distance.
//
// This file implements the distance model every solver depends on.
//
// Design:
//   - Haversine with a fixed spherical Earth radius of 6371 km; the atan2
//     formulation is numerically stable for antipodal and near-zero arcs.
//   - The intermediate haversine term is clamped into [0,1] before the
//     inverse-trigonometric call: valid lat/lon ranges keep it inside the
//     domain mathematically, but FP rounding may overshoot by an ulp.
//   - Stable sums: tour distances are rounded to 1e-9 to avoid cross-platform
//     FP drift without affecting which tour is shorter.
//
// Complexity: Distance is O(1); TourDistance is O(n) time, O(1) space.
package geo

import "math"

// earthRadiusKm is the mean spherical Earth radius used by the engine.
const earthRadiusKm = 6371.0

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180.0

// roundScale controls distance stabilization precision (1e-9 km).
const roundScale = 1e9

// Distance returns the great-circle distance between two stops in kilometers,
// computed with the haversine formula on a sphere of radius 6371 km.
//
// Properties: Distance(a, b) == Distance(b, a); Distance(a, a) == 0.
func Distance(a, b Stop) float64 {
	var (
		latA = a.Lat() * degToRad
		latB = b.Lat() * degToRad
		dLat = (b.Lat() - a.Lat()) * degToRad
		dLon = (b.Lon() - a.Lon()) * degToRad
	)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon
	// Clamp FP overshoot so Sqrt(1-h) stays real.
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TourDistance returns the total cyclic distance of the stop sequence in
// kilometers: the sum over consecutive pairs plus the closing edge from the
// last stop back to the first. Sequences shorter than two stops cost 0.
func TourDistance(stops []Stop) float64 {
	n := len(stops)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += Distance(stops[i], stops[i+1])
	}
	sum += Distance(stops[n-1], stops[0]) // closing edge

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
