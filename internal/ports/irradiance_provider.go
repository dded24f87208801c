package ports

import (
	"context"
	"solar-chrome-service/internal/domain"
)

// Port: a boundary for retrieving solar irradiance data for a location.
type IrradianceProvider interface {
	// AnnualGHI returns the annual average global horizontal irradiance
	// (kWh/m2/year) at the given coordinates.
	AnnualGHI(ctx context.Context, c domain.Coordinates) (float64, error)
}
