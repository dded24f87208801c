package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"solar-chrome-service/internal/adapters/power"
	"solar-chrome-service/internal/adapters/storage"
	"solar-chrome-service/internal/chrome"
	"solar-chrome-service/internal/domain"
)

type emptyPresetRepo struct{}

func (emptyPresetRepo) ListPresets(ctx context.Context) ([]domain.SystemPreset, error) {
	return nil, nil
}

func (emptyPresetRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := chrome.NewService(nil, storage.NewMemoryStore())
	t.Cleanup(svc.Close)

	korea := domain.Bounds{MinLat: 33, MaxLat: 38, MinLon: 126, MaxLon: 130}
	return NewRouter(svc, storage.NewMemoryStore(), power.NewMockIrradianceProvider(nil), emptyPresetRepo{}, korea)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/chrome/state", http.StatusOK},
		{http.MethodGet, "/chrome/manifest", http.StatusOK},
		{http.MethodGet, "/chrome/theme.css", http.StatusOK},
		{http.MethodGet, "/presets", http.StatusOK},
		{http.MethodGet, "/locations", http.StatusOK},
		{http.MethodGet, "/format?value=42", http.StatusOK},
		{http.MethodGet, "/locations/validate?lat=37.5&lon=127.0", http.StatusOK},
		{http.MethodDelete, "/chrome/loading", http.StatusNoContent},
		{http.MethodPost, "/health", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != tt.status {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
	}
}

func TestRouterAssignsRequestID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response is missing a generated X-Request-ID")
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("X-Request-ID = %q, want the caller-provided id", got)
	}
}
