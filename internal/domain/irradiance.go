package domain

// FallbackGHI returns a regional estimate of annual irradiance
// (kWh/m2/year) for when the upstream climate API is unavailable.
// Inside the Korean service region the estimate varies by latitude
// band; elsewhere a world average applies.
func FallbackGHI(c Coordinates, korea Bounds) float64 {
	if !korea.Contains(c) {
		return 1200
	}

	switch {
	case c.Lat < 34.5: // Jeju
		return 1350
	case c.Lat < 36.0: // southern provinces
		return 1280
	case c.Lat < 37.5: // central provinces
		return 1220
	default: // northern provinces
		return 1180
	}
}
