package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

func execAll(tx *sql.Tx, queries []string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query '%s': %w", query, err)
		}
	}
	return nil
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS donors (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					email TEXT,
					created_at DATETIME NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS devices (
					id TEXT PRIMARY KEY,
					donor_id TEXT NOT NULL,
					date_donated DATETIME NOT NULL,
					device_type TEXT NOT NULL,
					model TEXT,
					manufacturer TEXT,
					serial_number TEXT,
					condition TEXT NOT NULL,
					weight REAL NOT NULL CHECK (weight > 0),
					verified BOOLEAN NOT NULL DEFAULT 0,
					ferrous_metal REAL NOT NULL DEFAULT 0,
					aluminum REAL NOT NULL DEFAULT 0,
					copper REAL NOT NULL DEFAULT 0,
					other_metals REAL NOT NULL DEFAULT 0,
					plastic REAL NOT NULL DEFAULT 0,
					battery REAL NOT NULL DEFAULT 0,
					pcb REAL NOT NULL DEFAULT 0,
					flat_panel_display_module REAL NOT NULL DEFAULT 0,
					crt_glass_and_lead REAL NOT NULL DEFAULT 0,
					co2_emissions REAL NOT NULL DEFAULT 0,
					FOREIGN KEY (donor_id) REFERENCES donors(id)
				)`,
				`CREATE INDEX idx_devices_donor_date ON devices(donor_id, date_donated)`,

				`CREATE TABLE IF NOT EXISTS badges (
					id INTEGER PRIMARY KEY,
					name TEXT UNIQUE NOT NULL,
					description TEXT
				)`,

				`CREATE TABLE IF NOT EXISTS donor_badges (
					donor_id TEXT NOT NULL,
					badge_id INTEGER NOT NULL,
					awarded_at DATETIME NOT NULL,
					PRIMARY KEY (donor_id, badge_id),
					FOREIGN KEY (donor_id) REFERENCES donors(id),
					FOREIGN KEY (badge_id) REFERENCES badges(id)
				)`,
			})
		},
	},
	{
		Version:     2,
		Description: "Seed membership badges",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`INSERT OR IGNORE INTO badges (id, name, description) VALUES
					(5, 'one_month_member', 'Member for one month'),
					(6, 'two_month_member', 'Member for two months')`,
			})
		},
	},
	{
		Version:     3,
		Description: "Seed donation milestone badges",
		Up: func(tx *sql.Tx) error {
			if err := execAll(tx, []string{
				`INSERT OR IGNORE INTO badges (id, name, description) VALUES
					(1, 'first_donation', 'Donated a first device'),
					(2, 'hundred_pounds', 'Donated 100 pounds of electronics')`,
				`CREATE INDEX IF NOT EXISTS idx_devices_verified ON devices(verified)`,
			}); err != nil {
				return err
			}
			slog.Info("Seeded donation milestone badges")
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	if currentVersion > ExpectedSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", currentVersion, ExpectedSchemaVersion)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}
	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
