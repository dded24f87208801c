package dto

type PresetResponse struct {
	PresetID         string  `json:"preset_id"`
	Name             string  `json:"name"`
	CapacityKW       float64 `json:"capacity_kw"`
	ModuleType       string  `json:"module_type"`
	TrackingType     string  `json:"tracking_type"`
	InstallCostPerKW int     `json:"install_cost_per_kw"`
	InstallCostLabel string  `json:"install_cost_label"`
	Description      string  `json:"description"`
}

type ListPresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}
