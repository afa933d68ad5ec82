// Package report persists batch-scan outcomes to a local sqlite database
// so a scan can be summarized after the fact. The resolution engine itself
// stays pure; this store only records what the scan command observed.
package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoScans is returned when a summary is requested before any scan ran.
var ErrNoScans = errors.New("no scans recorded")

// Store wraps the scan report database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the report database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &Store{db: db}
	if err := store.runMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// BeginScan records a new scan over root with the given candidate names
// and returns its id for subsequent result rows.
func (s *Store) BeginScan(ctx context.Context, root string, candidates []string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO scans (root, candidates) VALUES (?, ?)",
		root, strings.Join(candidates, ","))
	if err != nil {
		return 0, fmt.Errorf("failed to record scan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get scan id: %w", err)
	}
	return id, nil
}

// RecordResult stores the outcome for one file. An empty language means
// the scan could not disambiguate the file.
func (s *Store) RecordResult(ctx context.Context, scanID int64, path, lang string) error {
	var langValue any
	if lang != "" {
		langValue = lang
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO results (scan_id, path, language) VALUES (?, ?, ?)",
		scanID, path, langValue)
	if err != nil {
		return fmt.Errorf("failed to record result for %s: %w", path, err)
	}
	return nil
}

// Summary aggregates one scan's outcomes.
type Summary struct {
	PerLanguage map[string]int
	Root        string
	Candidates  []string
	ScanID      int64
	Total       int
	Unresolved  int
}

// LatestSummary summarizes the most recent scan.
func (s *Store) LatestSummary(ctx context.Context) (*Summary, error) {
	summary := &Summary{PerLanguage: make(map[string]int)}

	var candidates string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, root, candidates FROM scans ORDER BY id DESC LIMIT 1").
		Scan(&summary.ScanID, &summary.Root, &candidates)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoScans
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest scan: %w", err)
	}
	if candidates != "" {
		summary.Candidates = strings.Split(candidates, ",")
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT language, COUNT(*) FROM results WHERE scan_id = ? GROUP BY language",
		summary.ScanID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var lang sql.NullString
		var count int
		if err := rows.Scan(&lang, &count); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		summary.Total += count
		if lang.Valid {
			summary.PerLanguage[lang.String] = count
		} else {
			summary.Unresolved = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate aggregate rows: %w", err)
	}

	return summary, nil
}
