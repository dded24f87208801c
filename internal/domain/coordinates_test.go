package domain

import (
	"math"
	"testing"
)

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"seoul", 37.5, 127.0, true},
		{"lat above range", 91, 0, false},
		{"lat NaN", math.NaN(), 10, false},
		{"lon NaN", 10, math.NaN(), false},
		{"both boundaries inclusive", -90, -180, true},
		{"upper boundaries inclusive", 90, 180, true},
		{"lat just above boundary", 90.0001, 0, false},
		{"lon below range", 0, -180.5, false},
		{"lat positive infinity", math.Inf(1), 0, false},
		{"zero zero", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCoordinates(tt.lat, tt.lon); got != tt.want {
				t.Errorf("ValidCoordinates(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	korea := Bounds{MinLat: 33.0, MaxLat: 38.0, MinLon: 126.0, MaxLon: 130.0}

	tests := []struct {
		name string
		c    Coordinates
		want bool
	}{
		{"daejeon inside", Coordinates{Lat: 36.35, Lon: 127.38}, true},
		{"jeju on southern edge", Coordinates{Lat: 33.0, Lon: 126.5}, true},
		{"tokyo outside", Coordinates{Lat: 35.68, Lon: 139.69}, false},
		{"north of range", Coordinates{Lat: 39.0, Lon: 127.0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := korea.Contains(tt.c); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestResponseErrorMessagePayload(t *testing.T) {
	tests := []struct {
		name string
		err  *ResponseError
		want string
	}{
		{
			"payload error field",
			&ResponseError{Status: 500, Payload: map[string]any{"error": "계산 중 오류가 발생했습니다."}},
			"계산 중 오류가 발생했습니다.",
		},
		{
			"payload without error field",
			&ResponseError{Status: 404, Payload: map[string]any{"detail": "missing"}},
			"",
		},
		{
			"non-string error field",
			&ResponseError{Status: 500, Payload: map[string]any{"error": 42.0}},
			"",
		},
		{
			"nil payload",
			&ResponseError{Status: 502, Body: "bad gateway"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
