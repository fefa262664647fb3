package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 2

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
				`CREATE TABLE IF NOT EXISTS pay_records (
					hash TEXT PRIMARY KEY,
					pay_date TEXT,
					date_valid INTEGER NOT NULL DEFAULT 0,
					pay_type TEXT NOT NULL DEFAULT '',
					current_totals TEXT NOT NULL DEFAULT '{}',
					ytd_totals TEXT NOT NULL DEFAULT '{}',
					source_file TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_pay_records_date ON pay_records(pay_date)`,

				`CREATE TABLE IF NOT EXISTS party_totals (
					party TEXT PRIMARY KEY,
					payload TEXT NOT NULL,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
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
		Description: "Index pay records by type for first-period checks",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE INDEX idx_pay_records_type ON pay_records(pay_type)`)
			if err != nil {
				return fmt.Errorf("failed to create pay_type index: %w", err)
			}
			return nil
		},
	},
}

// Migrate brings the schema up to ExpectedSchemaVersion, applying pending
// migrations in order inside individual transactions.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	var current int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
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
		// PRAGMA doesn't support placeholders.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Debug("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}
