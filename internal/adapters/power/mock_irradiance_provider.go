package power

import (
	"context"
	"fmt"

	"solar-chrome-service/internal/domain"
)

type MockPoint struct {
	Lat, Lon float64
	GHI      float64
}

type MockIrradianceProvider struct {
	m map[string]float64
}

func NewMockIrradianceProvider(points []MockPoint) *MockIrradianceProvider {
	m := make(map[string]float64, len(points))
	for _, p := range points {
		m[mockKey(p.Lat, p.Lon)] = p.GHI
	}
	return &MockIrradianceProvider{m: m}
}

func mockKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f|%.4f", lat, lon)
}

func (p *MockIrradianceProvider) AnnualGHI(ctx context.Context, c domain.Coordinates) (float64, error) {
	ghi, ok := p.m[mockKey(c.Lat, c.Lon)]
	if !ok {
		return 0, fmt.Errorf("missing point lat=%v lon=%v", c.Lat, c.Lon)
	}

	return ghi, nil
}
