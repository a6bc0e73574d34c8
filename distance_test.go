package geospatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroDistance(t *testing.T) {
	points := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 54.098494, Longitude: -6.242611},
		{Latitude: -89.999999, Longitude: 179.999999},
	}

	for _, p := range points {
		assert.Zero(t, Haversine(p, p))
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Point{Latitude: 35.188443, Longitude: -157.813352}
	b := Point{Latitude: -6.908650, Longitude: 124.053931}
	c := Point{Latitude: 54.098494, Longitude: -6.242611}

	assert.Equal(t, Haversine(a, b), Haversine(b, a))
	assert.Equal(t, Haversine(a, c), Haversine(c, a))
	assert.Equal(t, Haversine(b, c), Haversine(c, b))
}

func TestHaversineKnownDistance(t *testing.T) {
	a := Point{Latitude: 35.188443, Longitude: -157.813352}
	b := Point{Latitude: -6.908650, Longitude: 124.053931}

	assert.InDelta(t, 9385213.76, Haversine(a, b), 1.0)
}

func TestHaversineGreatCircleAdditivity(t *testing.T) {
	// Three points on the equator lie on a common great circle, so the
	// middle distance splits the outer one exactly.
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: 0, Longitude: 10}
	c := Point{Latitude: 0, Longitude: 25}

	assert.InDelta(t, Haversine(a, c), Haversine(a, b)+Haversine(b, c), 1e-6)
}

func TestHaversineAntipodal(t *testing.T) {
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: 0, Longitude: 180}

	assert.InDelta(t, math.Pi*EarthRadius.Meters(), Haversine(a, b), 1e-6)
}

func TestRadiusConversions(t *testing.T) {
	assert.Equal(t, 6371008.8, EarthRadius.Meters())
	assert.InDelta(t, 6371.0088, EarthRadius.Kilometers(), 1e-9)
	assert.InDelta(t, 3958.7613, EarthRadius.Miles(), 1e-4)

	assert.Equal(t, 2500.0, Kilometers(2.5).Meters())
	assert.Equal(t, 1609.344, Miles(1).Meters())
	assert.Equal(t, 1.0, Meters(1609.344).Miles())
}

func TestRadiusValidate(t *testing.T) {
	assert.NoError(t, Meters(0).Validate())
	assert.NoError(t, Meters(50000).Validate())
	assert.ErrorIs(t, Meters(-100).Validate(), ErrInvalidRadius)
}
