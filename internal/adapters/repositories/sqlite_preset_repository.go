package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"solar-chrome-service/internal/domain"
)

// SQLite-backed implementation of the PresetRepository port.
type SqlitePresetRepository struct{ DB *sql.DB }

func NewSqlitePresetRepository(db *sql.DB) *SqlitePresetRepository {
	return &SqlitePresetRepository{DB: db}
}

// Return all system presets stored in the database, smallest capacity first.
func (s *SqlitePresetRepository) ListPresets(ctx context.Context) ([]domain.SystemPreset, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite preset repository: DB is nil")
	}

	query := `
	SELECT
		preset_id,
		name,
		capacity_kw,
		module_type,
		tracking_type,
		install_cost_per_kw,
		description
	FROM system_presets
	ORDER BY capacity_kw;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list presets: query system_presets table: %w", err)
	}
	defer rows.Close()

	presets := make([]domain.SystemPreset, 0, 8)
	for rows.Next() {
		var p domain.SystemPreset
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.CapacityKW,
			&p.ModuleType,
			&p.TrackingType,
			&p.InstallCostPerKW,
			&p.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("list presets: scan row: %w", err)
		}
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list presets: row iteration: %w", err)
	}

	return presets, nil
}

// Return all named locations stored in the database.
func (s *SqlitePresetRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite preset repository: DB is nil")
	}

	query := `
	SELECT
		name,
		lat,
		lon
	FROM locations
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 16)
	for rows.Next() {
		var l domain.Location
		err := rows.Scan(&l.Name, &l.Coords.Lat, &l.Coords.Lon)
		if err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}
