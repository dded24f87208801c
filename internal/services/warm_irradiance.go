package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"solar-chrome-service/internal/ports"
)

// WarmIrradianceRequest bounds a cache warm-up run.
type WarmIrradianceRequest struct {
	Concurrency int
}

// WarmIrradiance prefetches the annual GHI for every stored location so
// first page loads hit a warm cache. The provider already rate-limits
// upstream calls; Concurrency only bounds in-flight lookups. A failed
// lookup is logged and skipped, the run fails only when the location
// list itself cannot be read.
func WarmIrradiance(
	ctx context.Context,
	req WarmIrradianceRequest,
	repo ports.PresetRepository,
	provider ports.IrradianceProvider,
) (int, error) {
	if repo == nil {
		return 0, errors.New("warm irradiance: repo is nil")
	}
	if provider == nil {
		return 0, errors.New("warm irradiance: provider is nil")
	}

	concurrency := req.Concurrency
	if concurrency < 1 {
		concurrency = 3
	}

	locations, err := repo.ListLocations(ctx)
	if err != nil {
		return 0, fmt.Errorf("warm irradiance: list locations: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var warmed atomic.Int64
	for _, loc := range locations {
		loc := loc
		g.Go(func() error {
			ghi, err := provider.AnnualGHI(ctx, loc.Coords)
			if err != nil {
				log.Printf("warm irradiance name=%s failed: %v", loc.Name, err)
				return nil
			}

			log.Printf("warm irradiance name=%s ghi=%.1f", loc.Name, ghi)
			warmed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(warmed.Load()), err
	}

	return int(warmed.Load()), nil
}
