// Package transcript keeps a SQLite log of the descriptions and alerts announced to the user.
package transcript

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Sources for entries.
const (
	SourceAlert       = "alert"
	SourceDescription = "description"
	SourceSummary     = "summary"
)

// Entry is one announced string.
type Entry struct {
	ID     int64
	At     time.Time
	Source string
	Text   string
}

// Store is a transcript database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

const schema = `
	CREATE TABLE IF NOT EXISTS announcements (
		id     INTEGER PRIMARY KEY AUTOINCREMENT,
		at     INTEGER NOT NULL,
		source TEXT NOT NULL,
		text   TEXT NOT NULL
	)
`

// Open opens or creates the transcript at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// a single connection keeps in-memory databases shared
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records text unless it repeats the latest entry from the same source. It reports
// whether a row was written. Empty text is never recorded.
func (s *Store) Append(source, text string) (bool, error) {
	if text == "" {
		return false, nil
	}

	var last string
	err := s.db.QueryRow(
		"SELECT text FROM announcements WHERE source = ? ORDER BY id DESC LIMIT 1", source,
	).Scan(&last)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return false, fmt.Errorf("reading last entry: %w", err)
	case last == text:
		return false, nil
	}

	if _, err := s.db.Exec(
		"INSERT INTO announcements (at, source, text) VALUES (?, ?, ?)",
		s.now().UnixNano(), source, text,
	); err != nil {
		return false, fmt.Errorf("inserting entry: %w", err)
	}
	return true, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, at, source, text
		FROM announcements
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at int64
		if err := rows.Scan(&e.ID, &at, &e.Source, &e.Text); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.At = time.Unix(0, at)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Count returns the number of entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM announcements").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// Clear deletes every entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM announcements"); err != nil {
		return fmt.Errorf("clearing transcript: %w", err)
	}
	return nil
}
