package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"solar-chrome-service/internal/adapters/clock"
	"solar-chrome-service/internal/adapters/power"
	"solar-chrome-service/internal/adapters/repositories"
	"solar-chrome-service/internal/adapters/storage"
	"solar-chrome-service/internal/api"
	"solar-chrome-service/internal/chrome"
	"solar-chrome-service/internal/config"
	"solar-chrome-service/internal/domain"
	"solar-chrome-service/internal/platform/db"
	"solar-chrome-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, NASA POWER, Redis/Postgres) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/chrome.db")
	presetSeedPath := config.Get("SEED_PRESETS_PATH", "data/seeds/presets.json")
	locationSeedPath := config.Get("SEED_LOCATIONS_PATH", "data/seeds/locations.json")
	port := config.Get("PORT", "8080")

	korea := domain.Bounds{
		MinLat: config.GetFloat("KOREA_LAT_MIN", 33.0),
		MaxLat: config.GetFloat("KOREA_LAT_MAX", 38.0),
		MinLon: config.GetFloat("KOREA_LON_MIN", 126.0),
		MaxLon: config.GetFloat("KOREA_LON_MAX", 130.0),
	}

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed reference data on startup for local runs.
	if err := initAndSeed(sqliteDB, presetSeedPath, locationSeedPath); err != nil {
		log.Fatal(err)
	}

	store, err := openKVStore(sqliteDB)
	if err != nil {
		log.Fatal(err)
	}

	svc := chrome.NewService(clock.NewSystemClock(), store)
	defer svc.Close()
	chrome.SetDefault(svc)

	// NASA POWER lookups ride the same store so warmed entries survive restarts.
	provider, err := power.NewNASAPowerProvider(
		config.Get("NASA_POWER_BASE_URL", "https://power.larc.nasa.gov/api/temporal/climatology/point"),
		config.Get("NASA_POWER_PARAMS", ""),
		config.Get("NASA_POWER_COMMUNITY", ""),
		config.GetFloat("NASA_POWER_RPS", 1),
		store,
	)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqlitePresetRepository(sqliteDB)
	router := api.NewRouter(svc, store, provider, repo, korea)

	// Timeouts are tuned for cold-cache irradiance lookups (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqliteDB, nil
}

func initAndSeed(sqliteDB *sql.DB, presetPath, locationPath string) error {
	if err := repositories.InitSchema(sqliteDB); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedPresetsFromJSON(sqliteDB, presetPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedLocationsFromJSON(sqliteDB, locationPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// openKVStore picks the preference store backend: Redis when REDIS_URL
// is set, Postgres when DATABASE_URL is set, otherwise the local SQLite
// database shared with the reference data.
func openKVStore(sqliteDB *sql.DB) (ports.KeyValueStore, error) {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("open kv store: parse REDIS_URL: %w", err)
		}

		log.Println("Preference store: redis")
		return storage.NewRedisStore(redis.NewClient(opts)), nil
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pool, err := db.Open(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("open kv store: %w", err)
		}

		log.Println("Preference store: postgres")
		return storage.NewSQLStore(pool), nil
	}

	log.Println("Preference store: sqlite")
	return storage.NewSqliteStore(sqliteDB), nil
}
