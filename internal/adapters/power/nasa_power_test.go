package power

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"solar-chrome-service/internal/adapters/storage"
	"solar-chrome-service/internal/domain"
)

const powerFixture = `{
  "properties": {
    "parameter": {
      "ALLSKY_SFC_SW_DWN": {
        "JAN": 2.53,
        "FEB": 3.24,
        "MAR": 4.12,
        "ANN": 3.98
      }
    }
  }
}`

func TestAnnualGHIParsesResponse(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.URL.Query().Get("parameters"); got != "ALLSKY_SFC_SW_DWN" {
			t.Errorf("parameters = %q, want ALLSKY_SFC_SW_DWN", got)
		}
		if got := r.URL.Query().Get("community"); got != "RE" {
			t.Errorf("community = %q, want RE", got)
		}
		if got := r.URL.Query().Get("format"); got != "JSON" {
			t.Errorf("format = %q, want JSON", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(powerFixture))
	}))
	defer srv.Close()

	provider, err := NewNASAPowerProvider(srv.URL, "", "", 100, storage.NewMemoryStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := domain.Coordinates{Lat: 36.5, Lon: 127.8}
	ghi, err := provider.AnnualGHI(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ghi != 3.98 {
		t.Fatalf("ghi = %v, want 3.98", ghi)
	}

	// the second lookup must come from the cache
	ghi, err = provider.AnnualGHI(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ghi != 3.98 {
		t.Fatalf("cached ghi = %v, want 3.98", ghi)
	}
	if calls.Load() != 1 {
		t.Fatalf("upstream calls = %d, want 1", calls.Load())
	}
}

func TestAnnualGHIUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "parameters must not be empty"}`))
	}))
	defer srv.Close()

	provider, err := NewNASAPowerProvider(srv.URL, "", "", 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = provider.AnnualGHI(context.Background(), domain.Coordinates{Lat: 36.5, Lon: 127.8})
	if err == nil {
		t.Fatal("expected error")
	}

	var re *domain.ResponseError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *domain.ResponseError", err)
	}
	if re.Status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", re.Status)
	}
	if re.Message() != "parameters must not be empty" {
		t.Fatalf("payload message = %q", re.Message())
	}
}

func TestAnnualGHIInvalidCoordinates(t *testing.T) {
	provider, err := NewNASAPowerProvider("https://power.example", "", "", 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := provider.AnnualGHI(context.Background(), domain.Coordinates{Lat: 91, Lon: 0}); err == nil {
		t.Fatal("expected error for invalid coordinates")
	}
}

func TestMissingParameterInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"properties": {"parameter": {}}}`))
	}))
	defer srv.Close()

	provider, err := NewNASAPowerProvider(srv.URL, "", "", 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := provider.AnnualGHI(context.Background(), domain.Coordinates{Lat: 36.5, Lon: 127.8}); err == nil {
		t.Fatal("expected error for missing parameter")
	}
}
