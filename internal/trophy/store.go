package trophy

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store handles SQLite persistence of wins. Writes are synchronous:
// game results arrive at human pace, so there is nothing to batch.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the trophy database at dataSourceName.
// Pass ":memory:" for an ephemeral store in tests.
func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open trophy database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Store{db: db}
	if err := s.initDB(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initDB creates the database schema.
func (s *Store) initDB() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return tx.Commit()
}

// AddWin records one win.
func (s *Store) AddWin(e Entry) error {
	if e.WonAtUTC.IsZero() {
		e.WonAtUTC = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO wins (game, mode, difficulty, result, won_at_utc) VALUES (?, ?, ?, ?, ?)`,
		e.Game, e.Mode, e.Difficulty, e.Result, e.WonAtUTC,
	)
	if err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}
	return nil
}

// CountWins returns the total number of recorded wins.
func (s *Store) CountWins() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM wins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count wins: %w", err)
	}
	return n, nil
}

// RecentEntries returns up to limit wins, newest first.
func (s *Store) RecentEntries(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT game, mode, difficulty, result, won_at_utc
		 FROM wins ORDER BY win_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Game, &e.Mode, &e.Difficulty, &e.Result, &e.WonAtUTC); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return entries, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
