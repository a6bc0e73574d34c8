package geospatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointValidate(t *testing.T) {
	valid := []Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 90, Longitude: 180},
		{Latitude: -90, Longitude: -180},
		{Latitude: 54.098494, Longitude: -6.242611},
	}
	for _, p := range valid {
		assert.NoError(t, p.Validate())
	}

	invalid := []Point{
		{Latitude: 90.000001, Longitude: 0},
		{Latitude: -91, Longitude: 0},
		{Latitude: 0, Longitude: 180.000001},
		{Latitude: 0, Longitude: -181},
	}
	for _, p := range invalid {
		assert.ErrorIs(t, p.Validate(), ErrInvalidCoordinate)
	}
}
