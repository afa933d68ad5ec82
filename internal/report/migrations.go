package report

import (
	"context"
	"fmt"
)

type migration struct {
	sql     string
	version int
}

var migrations = []migration{
	{
		version: 1,
		sql: `
			CREATE TABLE scans (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				root TEXT NOT NULL,
				candidates TEXT NOT NULL,
				started_at INTEGER NOT NULL DEFAULT (unixepoch())
			);

			CREATE TABLE results (
				scan_id INTEGER NOT NULL REFERENCES scans(id),
				path TEXT NOT NULL,
				language TEXT,
				scanned_at INTEGER NOT NULL DEFAULT (unixepoch())
			);

			CREATE INDEX idx_results_scan ON results(scan_id);
			CREATE INDEX idx_results_language ON results(language);
		`,
	},
}

func (s *Store) runMigrations(ctx context.Context) error {
	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current database version: %w", err)
	}

	for _, migration := range migrations {
		if migration.version <= currentVersion {
			continue
		}
		if err := s.executeMigration(ctx, migration); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) executeMigration(ctx context.Context, migration migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, migration.sql); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", migration.version, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", migration.version)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to update database version to %d: %w", migration.version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", migration.version, err)
	}
	return nil
}
