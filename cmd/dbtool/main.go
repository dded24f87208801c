package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"solar-chrome-service/internal/adapters/power"
	"solar-chrome-service/internal/adapters/repositories"
	"solar-chrome-service/internal/adapters/storage"
	"solar-chrome-service/internal/config"
	"solar-chrome-service/internal/domain"
	"solar-chrome-service/internal/platform/db"
	"solar-chrome-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool provisions the hosted Postgres preference store and, with
// -warm, prefetches irradiance for the seeded locations so the cache
// starts hot.
func main() {
	warm := flag.Bool("warm", false, "prefetch irradiance for the seed locations after provisioning")
	concurrency := flag.Int("concurrency", 3, "bound on in-flight irradiance lookups during -warm")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	store := storage.NewSQLStore(pool)
	ctx := context.Background()

	log.Println("Initializing preference store schema...")
	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if !*warm {
		return
	}

	if err := warmCache(ctx, store, *concurrency); err != nil {
		log.Fatalf("cache warm-up failed: %v", err)
	}
}

// seedLocationRepo serves locations straight from the seed file, so
// warming does not depend on the local SQLite database. Warming never
// lists presets.
type seedLocationRepo struct {
	locations []domain.Location
}

func (r *seedLocationRepo) ListPresets(ctx context.Context) ([]domain.SystemPreset, error) {
	return nil, nil
}

func (r *seedLocationRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return r.locations, nil
}

func loadSeedLocations(path string) ([]domain.Location, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed locations: read %q: %w", path, err)
	}

	var seeds []repositories.LocationSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("load seed locations: parse json: %w", err)
	}

	locations := make([]domain.Location, 0, len(seeds))
	for i, s := range seeds {
		if !domain.ValidCoordinates(s.Lat, s.Lon) {
			return nil, fmt.Errorf("load seed locations: invalid coordinates at index %d: lat=%v lon=%v", i+1, s.Lat, s.Lon)
		}

		locations = append(locations, domain.Location{
			Name:   s.Name,
			Coords: domain.Coordinates{Lat: s.Lat, Lon: s.Lon},
		})
	}

	return locations, nil
}

func warmCache(ctx context.Context, store *storage.SQLStore, concurrency int) error {
	locations, err := loadSeedLocations(config.Get("SEED_LOCATIONS_PATH", "data/seeds/locations.json"))
	if err != nil {
		return err
	}

	provider, err := power.NewNASAPowerProvider(
		config.Get("NASA_POWER_BASE_URL", "https://power.larc.nasa.gov/api/temporal/climatology/point"),
		config.Get("NASA_POWER_PARAMS", ""),
		config.Get("NASA_POWER_COMMUNITY", ""),
		config.GetFloat("NASA_POWER_RPS", 1),
		store,
	)
	if err != nil {
		return err
	}

	log.Println("Warming irradiance cache...")
	warmed, err := services.WarmIrradiance(ctx,
		services.WarmIrradianceRequest{Concurrency: concurrency},
		&seedLocationRepo{locations: locations},
		provider,
	)
	if err != nil {
		return err
	}

	log.Printf("Warmed %d of %d locations.", warmed, len(locations))
	return nil
}
