package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinates form a real position on the globe.
func (c Coordinates) Valid() bool { return ValidCoordinates(c.Lat, c.Lon) }

// ValidCoordinates reports whether lat/lon is a usable position: both
// values numeric, lat within [-90, 90] and lon within [-180, 180].
// Boundaries are inclusive. Pure and total; NaN fails, nothing panics.
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	if lat < -90 || lat > 90 {
		return false
	}
	if lon < -180 || lon > 180 {
		return false
	}
	return true
}

// Inclusive latitude/longitude bounding box.
type Bounds struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Contains reports whether c lies inside the box, boundaries inclusive.
func (b Bounds) Contains(c Coordinates) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lon >= b.MinLon && c.Lon <= b.MaxLon
}
