package ports

import (
	"context"
	"solar-chrome-service/internal/domain"
)

// Port: a boundary for retrieving seeded reference data (system presets
// and well-known locations) from a data source.
type PresetRepository interface {
	// ListPresets returns all installable system presets.
	ListPresets(ctx context.Context) ([]domain.SystemPreset, error)
	// ListLocations returns the seeded city locations.
	ListLocations(ctx context.Context) ([]domain.Location, error)
}
