package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"solar-chrome-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createKVStoreQuery := `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);
	`

	createPresetsQuery := `
	CREATE TABLE IF NOT EXISTS system_presets (
	    preset_id TEXT PRIMARY KEY,
	    name TEXT NOT NULL,
	    capacity_kw REAL NOT NULL,
	    module_type TEXT NOT NULL,
	    tracking_type TEXT NOT NULL,
	    install_cost_per_kw INTEGER NOT NULL,
	    description TEXT NOT NULL
	);
	`

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
	    name TEXT PRIMARY KEY,
	    lat REAL NOT NULL,
	    lon REAL NOT NULL
	);
	`

	statements := []string{
		createKVStoreQuery,
		createPresetsQuery,
		createLocationsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PresetSeed struct {
	PresetID         string  `json:"preset_id"`
	Name             string  `json:"name"`
	CapacityKW       float64 `json:"capacity_kw"`
	ModuleType       string  `json:"module_type"`
	TrackingType     string  `json:"tracking_type"`
	InstallCostPerKW int     `json:"install_cost_per_kw"`
	Description      string  `json:"description"`
}

// Populate the database with system preset data from a JSON file.
func SeedPresetsFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed presets: read %q: %w", jsonPath, err)
	}

	var data []PresetSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed presets: parse json: %w", err)
	}

	rows := make([]PresetSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.PresetID)
		if id == "" {
			return fmt.Errorf("seed presets: item at index %d: preset_id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed presets: item at index %d: name cannot be empty", i+1)
		}

		if item.CapacityKW <= 0 {
			return fmt.Errorf("seed presets: invalid capacity at index %d: %v", i+1, item.CapacityKW)
		}
		if item.InstallCostPerKW <= 0 {
			return fmt.Errorf("seed presets: invalid install cost at index %d: %d", i+1, item.InstallCostPerKW)
		}

		item.PresetID = id
		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed presets: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO system_presets (
		preset_id,
		name,
		capacity_kw,
		module_type,
		tracking_type,
		install_cost_per_kw,
		description
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed presets: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		_, err := stmt.Exec(
			p.PresetID,
			p.Name,
			p.CapacityKW,
			p.ModuleType,
			p.TrackingType,
			p.InstallCostPerKW,
			p.Description,
		)
		if err != nil {
			return fmt.Errorf("seed presets: insert preset_id=%s: %w", p.PresetID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed presets: commit tx: %w", err)
	}

	return nil
}

type LocationSeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Populate the database with named location data from a JSON file.
func SeedLocationsFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: read %q: %w", jsonPath, err)
	}

	var data []LocationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed locations: parse json: %w", err)
	}

	rows := make([]LocationSeed, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed locations: item at index %d: name cannot be empty", i+1)
		}
		if !domain.ValidCoordinates(item.Lat, item.Lon) {
			return fmt.Errorf("seed locations: invalid coordinates at index %d: lat=%v lon=%v", i+1, item.Lat, item.Lon)
		}
		rows = append(rows, LocationSeed{Name: name, Lat: item.Lat, Lon: item.Lon})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO locations (
		name,
		lat,
		lon
	)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		if _, err := stmt.Exec(l.Name, l.Lat, l.Lon); err != nil {
			return fmt.Errorf("seed locations: insert name=%s: %w", l.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
