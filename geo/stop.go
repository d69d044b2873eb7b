// Package geo - Stop value type and stop-set helpers.
//
// This file defines the immutable Stop value and small helpers around stop
// sets (validation, bounding box, random fixtures).
//
// Design:
//   - Stop carries exactly two things: an opaque unique ID and a coordinate
//     pair. No other state, no behavior beyond accessors.
//   - Coordinates are stored as orb.Point (lon, lat order, WGS84 degrees) so
//     callers interoperate with the wider orb geometry ecosystem directly.
//   - No logging, no panics on user input - only sentinel errors.
package geo

import (
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrEmptyID is returned by ValidateStops when a stop has an empty identifier.
var ErrEmptyID = errors.New("geo: empty stop id")

// ErrDuplicateID is returned by ValidateStops when two stops share an identifier.
var ErrDuplicateID = errors.New("geo: duplicate stop id")

// ErrCoordinateRange is returned by ValidateStops when a latitude is outside
// [-90, 90] or a longitude is outside [-180, 180] degrees.
var ErrCoordinateRange = errors.New("geo: coordinate out of range")

// Stop is an immutable geographic stop: a unique opaque identifier plus a
// coordinate pair. Stops are plain values; copying is cheap and safe.
type Stop struct {
	// ID is an opaque, caller-unique identifier.
	ID string

	// Loc holds the coordinates as (lon, lat) in degrees.
	Loc orb.Point
}

// NewStop builds a Stop from an identifier and latitude/longitude in degrees.
// If id is empty, a fresh UUID is generated so the stop is still addressable.
//
// Complexity: O(1).
func NewStop(id string, lat, lon float64) Stop {
	if id == "" {
		id = uuid.NewString()
	}

	return Stop{ID: id, Loc: orb.Point{lon, lat}}
}

// RandomStop returns a Stop with a generated UUID identifier and coordinates
// drawn uniformly from bound. Intended for fixtures and benchmarks.
//
// Contract: rng must be non-nil (callers own seeding; see route package RNG policy).
//
// Complexity: O(1).
func RandomStop(rng *rand.Rand, bound orb.Bound) Stop {
	var (
		lon = bound.Min[0] + rng.Float64()*(bound.Max[0]-bound.Min[0])
		lat = bound.Min[1] + rng.Float64()*(bound.Max[1]-bound.Min[1])
	)

	return Stop{ID: uuid.NewString(), Loc: orb.Point{lon, lat}}
}

// Lat returns the latitude in degrees.
func (s Stop) Lat() float64 { return s.Loc.Lat() }

// Lon returns the longitude in degrees.
func (s Stop) Lon() float64 { return s.Loc.Lon() }

// BoundOf returns the bounding box of a stop set. For an empty set it returns
// the zero Bound. Presentation layers use this to frame map extents.
//
// Complexity: O(n) time, O(1) space.
func BoundOf(stops []Stop) orb.Bound {
	if len(stops) == 0 {
		return orb.Bound{}
	}

	var (
		b = orb.Bound{Min: stops[0].Loc, Max: stops[0].Loc}
		i int
	)
	for i = 1; i < len(stops); i++ {
		b = b.Extend(stops[i].Loc)
	}

	return b
}

// ValidateStops verifies that every stop has a non-empty unique ID and
// coordinates within valid WGS84 ranges. The solvers never call this: per the
// engine contract, well-formedness is the caller's responsibility.
//
// Complexity: O(n) time, O(n) space (uniqueness set).
func ValidateStops(stops []Stop) error {
	seen := make(map[string]struct{}, len(stops))

	var (
		i  int
		ok bool
	)
	for i = 0; i < len(stops); i++ {
		if stops[i].ID == "" {
			return ErrEmptyID
		}
		if _, ok = seen[stops[i].ID]; ok {
			return ErrDuplicateID
		}
		seen[stops[i].ID] = struct{}{}

		if stops[i].Lat() < -90 || stops[i].Lat() > 90 {
			return ErrCoordinateRange
		}
		if stops[i].Lon() < -180 || stops[i].Lon() > 180 {
			return ErrCoordinateRange
		}
	}

	return nil
}
