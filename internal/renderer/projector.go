package renderer

import (
	"math"

	"transportcatalogue.dev/internal/geo"
)

const epsilon = 1e-6

func isZero(v float64) bool {
	return math.Abs(v) < epsilon
}

// SphereProjector maps coordinates onto a canvas of the given size, keeping
// the aspect ratio and leaving padding on every side.
type SphereProjector struct {
	padding   float64
	minLng    float64
	maxLat    float64
	zoomCoeff float64
}

func NewSphereProjector(points []geo.Coordinates, maxWidth, maxHeight, padding float64) SphereProjector {
	p := SphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}

	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, pt := range points[1:] {
		minLng = math.Min(minLng, pt.Lng)
		maxLng = math.Max(maxLng, pt.Lng)
		minLat = math.Min(minLat, pt.Lat)
		maxLat = math.Max(maxLat, pt.Lat)
	}
	p.minLng = minLng
	p.maxLat = maxLat

	var widthZoom, heightZoom float64
	hasWidth := !isZero(maxLng - minLng)
	hasHeight := !isZero(maxLat - minLat)
	if hasWidth {
		widthZoom = (maxWidth - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (maxHeight - 2*padding) / (maxLat - minLat)
	}

	switch {
	case hasWidth && hasHeight:
		p.zoomCoeff = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoomCoeff = widthZoom
	case hasHeight:
		p.zoomCoeff = heightZoom
	}
	return p
}

// Project returns the canvas position of a coordinate.
func (p SphereProjector) Project(c geo.Coordinates) Point {
	return Point{
		X: (c.Lng-p.minLng)*p.zoomCoeff + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoomCoeff + p.padding,
	}
}
