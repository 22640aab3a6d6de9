package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		p := Coordinates{Lat: 55.611087, Lng: 37.20829}
		assert.Equal(t, 0.0, Distance(p, p))
	})

	t.Run("one hundredth of a degree along the equator", func(t *testing.T) {
		d := Distance(Coordinates{Lat: 0, Lng: 0}, Coordinates{Lat: 0, Lng: 0.01})
		assert.InDelta(t, 1111.95, d, 0.01)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Coordinates{Lat: 55.595884, Lng: 37.209755}
		b := Coordinates{Lat: 55.632761, Lng: 37.333324}
		assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
	})
}

func TestCoordinatesValid(t *testing.T) {
	assert.True(t, Coordinates{Lat: 43.5, Lng: 39.7}.Valid())
	assert.False(t, Coordinates{Lat: 91, Lng: 0}.Valid())
	assert.False(t, Coordinates{Lat: 0, Lng: -181}.Valid())
}

func TestComparePoints(t *testing.T) {
	a := Coordinates{Lat: 1, Lng: 2}
	b := Coordinates{Lat: 1, Lng: 3}
	c := Coordinates{Lat: 2, Lng: 0}

	assert.Equal(t, -1, ComparePoints(a, b))
	assert.Equal(t, 1, ComparePoints(c, b))
	assert.Equal(t, 0, ComparePoints(a, a))
}
