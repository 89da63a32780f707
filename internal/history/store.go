// Package history keeps an audit log of theme changes in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultLimit is used by Recent when limit is not positive
const DefaultLimit = 50

// ErrInvalidTransition is returned for a transition without a target theme
var ErrInvalidTransition = errors.New("invalid transition")

const schema = `
CREATE TABLE IF NOT EXISTS theme_transitions (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	from_theme TEXT NOT NULL,
	to_theme   TEXT NOT NULL,
	mode       TEXT NOT NULL,
	changed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_theme_transitions_changed_at ON theme_transitions (changed_at);
`

// Transition is one recorded theme change
type Transition struct {
	ID   string    `json:"id"`
	From string    `json:"from"`
	To   string    `json:"to"`
	Mode string    `json:"mode"`
	At   time.Time `json:"at"`
}

// Store persists transitions
type Store struct {
	db *sql.DB
}

// Open opens the database at path and creates the schema if needed
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate history database: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends t, assigning an ID and timestamp when missing
func (s *Store) Record(ctx context.Context, t *Transition) error {
	if t.To == "" {
		return ErrInvalidTransition
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.At.IsZero() {
		t.At = time.Now().UTC()
	} else {
		t.At = t.At.UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO theme_transitions (id, from_theme, to_theme, mode, changed_at)
		VALUES (?, ?, ?, ?, ?)
	`, t.ID, t.From, t.To, t.Mode, t.At.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert transition: %w", err)
	}
	return nil
}

// Recent returns up to limit transitions, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Transition, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, from_theme, to_theme, mode, changed_at
		FROM theme_transitions
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transitions: %w", err)
	}
	defer rows.Close()

	out := []Transition{}
	for rows.Next() {
		var t Transition
		var at string
		if err := rows.Scan(&t.ID, &t.From, &t.To, &t.Mode, &at); err != nil {
			return nil, fmt.Errorf("failed to scan transition: %w", err)
		}
		t.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", at, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transitions: %w", err)
	}

	return out, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
