package geospatial

import (
	"fmt"
	"math"
)

// EarthRadius is the mean radius of the Earth.
const EarthRadius Radius = 6371008.8

// 1 Mile = 1609.344 Meters
const metersPerMile = 1609.344

// Radius is a distance in meters.
type Radius float64

// Meters returns a Radius of m meters.
func Meters(m float64) Radius { return Radius(m) }

// Kilometers returns a Radius of km kilometers.
func Kilometers(km float64) Radius { return Radius(km * 1000) }

// Miles returns a Radius of mi statute miles.
func Miles(mi float64) Radius { return Radius(mi * metersPerMile) }

// Meters returns the radius in meters.
func (r Radius) Meters() float64 { return float64(r) }

// Kilometers returns the radius in kilometers.
func (r Radius) Kilometers() float64 { return float64(r) / 1000 }

// Miles returns the radius in statute miles.
func (r Radius) Miles() float64 { return float64(r) / metersPerMile }

// Validate checks that the radius is non-negative.
func (r Radius) Validate() error {
	if r < 0 {
		return fmt.Errorf("%w: %f meters", ErrInvalidRadius, float64(r))
	}
	return nil
}

// Haversine returns the great-circle distance in meters between a and b on
// a sphere of radius EarthRadius. Identical points yield exactly 0, and the
// formula stays numerically stable for antipodal points, so no
// special-casing is needed at either extreme.
func Haversine(a, b Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * EarthRadius.Meters() * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
