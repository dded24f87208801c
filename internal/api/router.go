package api

import (
	"net/http"

	"solar-chrome-service/internal/api/handlers"
	"solar-chrome-service/internal/chrome"
	"solar-chrome-service/internal/domain"
	"solar-chrome-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	svc *chrome.Service,
	store ports.KeyValueStore,
	provider ports.IrradianceProvider,
	repo ports.PresetRepository,
	korea domain.Bounds,
) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Store: store}
	chromeHandler := &handlers.ChromeHandler{Svc: svc}
	prefsHandler := &handlers.PrefsHandler{Svc: svc}
	locationHandler := &handlers.LocationHandler{
		Provider: provider,
		Chrome:   svc,
		Korea:    korea,
	}
	presetHandler := &handlers.PresetHandler{Repo: repo}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/chrome/state", chromeHandler.State)
	mux.HandleFunc("/chrome/loading", chromeHandler.Loading)
	mux.HandleFunc("/chrome/alerts", chromeHandler.Alerts)
	mux.HandleFunc("/chrome/alerts/", chromeHandler.AlertByID)
	mux.HandleFunc("/chrome/manifest", chromeHandler.Manifest)
	mux.HandleFunc("/chrome/theme.css", chromeHandler.ThemeCSS)
	mux.HandleFunc("/prefs/", prefsHandler.ByKey)
	mux.HandleFunc("/locations/validate", locationHandler.Validate)
	mux.HandleFunc("/irradiance", locationHandler.Irradiance)
	mux.HandleFunc("/presets", presetHandler.ListPresets)
	mux.HandleFunc("/locations", presetHandler.ListLocations)
	mux.HandleFunc("/format", handlers.Format)

	return requestMiddleware(mux)
}
