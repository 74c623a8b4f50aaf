// Package store keeps a local history of successful fetches in SQLite.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// FetchEntry is one recorded pipeline run.
type FetchEntry struct {
	ID         string
	Period     string
	URL        string
	LatestDate string
	RowsParsed int
	RowsOnDate int
	RowsRanked int
	FetchedAt  time.Time
}

// Store implements the fetch-history log using modernc.org/sqlite.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite database at the given path and configures WAL mode.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "store: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS fetches (
	id          TEXT PRIMARY KEY,
	period      TEXT NOT NULL,
	url         TEXT NOT NULL,
	latest_date TEXT NOT NULL,
	rows_parsed INTEGER NOT NULL,
	rows_on_date INTEGER NOT NULL,
	rows_ranked INTEGER NOT NULL,
	fetched_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_fetches_fetched_at ON fetches(fetched_at);
`

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordFetch inserts a fetch entry. A missing ID or timestamp is filled in.
func (s *Store) RecordFetch(ctx context.Context, e FetchEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.FetchedAt.IsZero() {
		e.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fetches (id, period, url, latest_date, rows_parsed, rows_on_date, rows_ranked, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Period, e.URL, e.LatestDate, e.RowsParsed, e.RowsOnDate, e.RowsRanked, e.FetchedAt,
	)
	return eris.Wrap(err, "store: record fetch")
}

// RecentFetches returns up to limit entries, newest first.
func (s *Store) RecentFetches(ctx context.Context, limit int) ([]FetchEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, period, url, latest_date, rows_parsed, rows_on_date, rows_ranked, fetched_at
		 FROM fetches ORDER BY fetched_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "store: query fetches")
	}
	defer rows.Close() //nolint:errcheck

	var entries []FetchEntry
	for rows.Next() {
		var e FetchEntry
		if err := rows.Scan(&e.ID, &e.Period, &e.URL, &e.LatestDate,
			&e.RowsParsed, &e.RowsOnDate, &e.RowsRanked, &e.FetchedAt); err != nil {
			return nil, eris.Wrap(err, "store: scan fetch")
		}
		entries = append(entries, e)
	}
	return entries, eris.Wrap(rows.Err(), "store: iterate fetches")
}
