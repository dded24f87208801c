// Package chrome implements the shared page-chrome of the solar
// prediction web application: the loading overlay, dismissible alert
// banners with automatic expiry, Korean-locale number formatting, API
// error normalization, coordinate validation, and best-effort key/value
// persistence, plus the navigation and theme declarations every page
// shares.
//
// Numeric convention: inputs are float64 throughout; JSON values decode
// with encoding/json defaults (objects as map[string]any, numbers as
// float64); formatted output keeps at most three fraction digits.
//
// The package-level functions operate on a default service so page
// handlers can call the chrome like a utility. Composition roots
// replace it via SetDefault before serving traffic.
package chrome

import (
	"context"

	"solar-chrome-service/internal/domain"
)

var std = NewService(nil, nil)

// SetDefault replaces the service behind the package-level functions.
// Call it from the composition root before the server starts.
func SetDefault(s *Service) {
	if s != nil {
		std = s
	}
}

// Default returns the service behind the package-level functions.
func Default() *Service { return std }

// ShowLoading shows the full-page busy indicator on the default service.
func ShowLoading(message string) { std.ShowLoading(message) }

// HideLoading hides the busy indicator on the default service.
func HideLoading() { std.HideLoading() }

// ShowAlert attaches an alert on the default service and returns its id.
func ShowAlert(text string, severity Severity) int64 {
	return std.ShowAlert(text, severity)
}

// HandleAPIError routes a failed operation through the default service.
func HandleAPIError(err error, op string) { std.HandleAPIError(err, op) }

// SaveLocal persists v under key on the default service, best effort.
func SaveLocal(ctx context.Context, key string, v any) { std.Save(ctx, key, v) }

// LoadLocal returns the value stored under key on the default service,
// or nil.
func LoadLocal(ctx context.Context, key string) any { return std.Load(ctx, key) }

// ValidateCoordinates reports whether lat/lon is a usable position:
// inclusive [-90, 90] and [-180, 180] ranges, false on NaN.
func ValidateCoordinates(lat, lon float64) bool {
	return domain.ValidCoordinates(lat, lon)
}
