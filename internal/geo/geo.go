// Package geo holds coordinate types and great-circle distance helpers.
package geo

import "math"

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

// Coordinates is a point on the Earth's surface in degrees.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Equal reports whether two points coincide exactly.
func (c Coordinates) Equal(other Coordinates) bool {
	return c.Lat == other.Lat && c.Lng == other.Lng
}

// Valid reports whether the point lies within the latitude/longitude ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Distance returns the great-circle distance in meters between two points.
func Distance(from, to Coordinates) float64 {
	if from.Equal(to) {
		return 0
	}
	const dr = math.Pi / 180.0
	cos := math.Sin(from.Lat*dr)*math.Sin(to.Lat*dr) +
		math.Cos(from.Lat*dr)*math.Cos(to.Lat*dr)*math.Cos(math.Abs(from.Lng-to.Lng)*dr)
	// rounding can push nearly identical points just outside acos' domain
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * EarthRadius
}

// ComparePoints orders points by latitude, then longitude.
func ComparePoints(a, b Coordinates) int {
	if a.Lat < b.Lat {
		return -1
	}
	if a.Lat > b.Lat {
		return 1
	}
	if a.Lng < b.Lng {
		return -1
	}
	if a.Lng > b.Lng {
		return 1
	}
	return 0
}
