package dto

type ValidateLocationResponse struct {
	Valid       bool   `json:"valid"`
	KoreaRegion bool   `json:"korea_region"`
	Message     string `json:"message"`
	Warning     string `json:"warning,omitempty"`
}

type IrradianceResponse struct {
	GHI    float64 `json:"ghi"`
	Source string  `json:"source"`
}

type LocationResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
