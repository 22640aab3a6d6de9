package geo

import "math"

var compassPoints = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Bearing returns the initial great-circle bearing from one point to
// another in degrees, in [0, 360).
func Bearing(from, to Coordinates) float64 {
	phi1 := from.Lat * math.Pi / 180
	phi2 := to.Lat * math.Pi / 180
	deltaLng := (to.Lng - from.Lng) * math.Pi / 180

	y := math.Sin(deltaLng) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLng)

	return math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
}

// Compass converts a bearing to an 8-point compass direction.
func Compass(bearing float64) string {
	return compassPoints[int((bearing+22.5)/45.0)%len(compassPoints)]
}

// CompassDirection is the compass direction from one point to another, or ""
// when they coincide.
func CompassDirection(from, to Coordinates) string {
	if from.Equal(to) {
		return ""
	}
	return Compass(Bearing(from, to))
}
