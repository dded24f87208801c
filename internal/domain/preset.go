package domain

// SystemPreset describes a ready-made PV system configuration offered
// to users as a starting point (capacity, module and tracking type,
// install cost). Presets are reference data seeded at startup.
type SystemPreset struct {
	ID               string
	Name             string
	CapacityKW       float64
	ModuleType       string
	TrackingType     string
	InstallCostPerKW int
	Description      string
}
