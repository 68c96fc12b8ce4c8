// Package store keeps a local history of runs in sqlite, so operators can
// see when the job last succeeded and what it processed.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// Counts are the run totals persisted on completion.
type Counts struct {
	Fetched    int
	Matched    int
	UniqueRows int
	Skipped    int
}

// Run is one row of the run history.
type Run struct {
	ID         string
	FeedURL    string
	Status     string // running, completed, failed
	Counts     Counts
	Error      string
	StartedAt  time.Time
	FinishedAt *time.Time
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	table := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		feed_url TEXT,
		status TEXT,
		fetched INTEGER,
		matched INTEGER,
		unique_rows INTEGER,
		skipped INTEGER,
		error_message TEXT,
		started_at DATETIME,
		finished_at DATETIME
	);
	`
	if _, err := db.Exec(table); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create runs table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// StartRun records a new run and returns its ID.
func (s *Store) StartRun(feedURL string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, feed_url, status, fetched, matched, unique_rows, skipped, error_message, started_at)
		 VALUES (?, ?, 'running', 0, 0, 0, 0, '', ?)`,
		id, feedURL, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("store: start run: %w", err)
	}
	return id, nil
}

// FinishRun marks a run completed with its final counts.
func (s *Store) FinishRun(id string, c Counts) error {
	_, err := s.db.Exec(
		`UPDATE runs SET status = 'completed', fetched = ?, matched = ?, unique_rows = ?, skipped = ?, finished_at = ?
		 WHERE id = ?`,
		c.Fetched, c.Matched, c.UniqueRows, c.Skipped, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("store: finish run %s: %w", id, err)
	}
	return nil
}

// FailRun marks a run failed with its error message.
func (s *Store) FailRun(id string, runErr error) error {
	msg := ""
	if runErr != nil {
		msg = runErr.Error()
	}
	_, err := s.db.Exec(
		`UPDATE runs SET status = 'failed', error_message = ?, finished_at = ? WHERE id = ?`,
		msg, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("store: fail run %s: %w", id, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, feed_url, status, fetched, matched, unique_rows, skipped, error_message, started_at, finished_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var finished sql.NullTime
		if err := rows.Scan(&r.ID, &r.FeedURL, &r.Status,
			&r.Counts.Fetched, &r.Counts.Matched, &r.Counts.UniqueRows, &r.Counts.Skipped,
			&r.Error, &r.StartedAt, &finished); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			r.FinishedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
