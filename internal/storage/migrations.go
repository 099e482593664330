package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application
// expects. Failing to reach it is fatal.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS garments (
					id TEXT PRIMARY KEY,
					user_id TEXT NOT NULL,
					hash TEXT UNIQUE NOT NULL,
					title TEXT NOT NULL,
					color TEXT,
					category TEXT,
					style TEXT,
					source TEXT NOT NULL DEFAULT 'owned',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_garments_user ON garments(user_id)`,
				`CREATE INDEX idx_garments_hash ON garments(hash)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Preference profiles",
		Up: func(tx *sql.Tx) error {
			query := `CREATE TABLE IF NOT EXISTS preferences (
				user_id TEXT PRIMARY KEY,
				gender TEXT,
				styles TEXT,
				colors TEXT,
				materials TEXT,
				fit_types TEXT,
				sizes TEXT,
				price_min REAL DEFAULT 0,
				price_max REAL DEFAULT 0,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`
			if _, err := tx.Exec(query); err != nil {
				return fmt.Errorf("failed to create preferences table: %w", err)
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Gap suggestion cache",
		Up: func(tx *sql.Tx) error {
			query := `CREATE TABLE IF NOT EXISTS gap_items (
				term TEXT PRIMARY KEY,
				image_url TEXT,
				cached_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`
			if _, err := tx.Exec(query); err != nil {
				return fmt.Errorf("failed to create gap_items table: %w", err)
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Debug("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
