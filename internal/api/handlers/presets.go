package handlers

import (
	"log"
	"net/http"

	"solar-chrome-service/internal/api/dto"
	"solar-chrome-service/internal/chrome"
	"solar-chrome-service/internal/ports"
)

// PresetHandler exposes read-only system preset and location listings.
type PresetHandler struct {
	Repo ports.PresetRepository
}

func (h *PresetHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	presets, err := h.Repo.ListPresets(r.Context())
	if err != nil {
		log.Printf("list presets failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPresetsResponse{
		Presets: make([]dto.PresetResponse, 0, len(presets)),
	}
	for _, p := range presets {
		res.Presets = append(res.Presets, dto.PresetResponse{
			PresetID:         p.ID,
			Name:             p.Name,
			CapacityKW:       p.CapacityKW,
			ModuleType:       p.ModuleType,
			TrackingType:     p.TrackingType,
			InstallCostPerKW: p.InstallCostPerKW,
			InstallCostLabel: chrome.FormatInt(int64(p.InstallCostPerKW)) + "원",
			Description:      p.Description,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PresetHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	locations, err := h.Repo.ListLocations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(locations)),
	}
	for _, l := range locations {
		res.Locations = append(res.Locations, dto.LocationResponse{
			Name: l.Name,
			Lat:  l.Coords.Lat,
			Lon:  l.Coords.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
