// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package portfolio

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrNotSeeded   = errors.New("portfolio database is empty")
	ErrInvalidPath = errors.New("invalid database path")
)

// =============================================================================
// STORE
// =============================================================================

// Store reads portfolio content from a SQLite database. The terminal only
// ever reads from it; writes happen through Seed (and whatever external
// tooling manages the content).
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (creating if necessary) the portfolio database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// initSchema creates the tables if they do not exist yet.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profile (
		id           INTEGER PRIMARY KEY CHECK (id = 1),
		about        TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL DEFAULT '',
		socials      TEXT NOT NULL DEFAULT '{}',
		updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sections (
		id            TEXT PRIMARY KEY,
		type          TEXT NOT NULL,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		metadata      TEXT NOT NULL DEFAULT '{}',
		image_url     TEXT NOT NULL DEFAULT '',
		start_date    TIMESTAMP,
		end_date      TIMESTAMP,
		display_order INTEGER NOT NULL DEFAULT 0,
		is_featured   INTEGER NOT NULL DEFAULT 0,
		is_visible    INTEGER NOT NULL DEFAULT 1,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sections_type ON sections(type);
	CREATE INDEX IF NOT EXISTS idx_sections_order ON sections(type, display_order);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// =============================================================================
// SNAPSHOT LOADING
// =============================================================================

// Snapshot assembles the full portfolio snapshot: visible sections only,
// ordered by display order within each type. This is the one query path the
// terminal uses; handlers never filter visibility themselves.
func (s *Store) Snapshot(ctx context.Context) (*Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data := &Data{}

	row := s.db.QueryRowContext(ctx,
		`SELECT about, email, socials FROM profile WHERE id = 1`)

	var socialsJSON string
	err := row.Scan(&data.About, &data.ContactInfo.Email, &socialsJSON)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotSeeded
	case err != nil:
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if err := json.Unmarshal([]byte(socialsJSON), &data.ContactInfo.Socials); err != nil {
		return nil, fmt.Errorf("failed to decode socials: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, title, description, metadata, image_url,
		       start_date, end_date, display_order, is_featured, is_visible,
		       created_at, updated_at
		FROM sections
		WHERE is_visible = 1
		ORDER BY type, display_order, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to load sections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sec      Section
			metadata string
			start    sql.NullTime
			end      sql.NullTime
		)
		if err := rows.Scan(&sec.ID, &sec.Type, &sec.Title, &sec.Description,
			&metadata, &sec.ImageURL, &start, &end, &sec.DisplayOrder,
			&sec.IsFeatured, &sec.IsVisible, &sec.CreatedAt, &sec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sec.Metadata = json.RawMessage(metadata)
		if start.Valid {
			t := start.Time
			sec.StartDate = &t
		}
		if end.Valid {
			t := end.Time
			sec.EndDate = &t
		}
		data.add(sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading sections: %w", err)
	}

	return data, nil
}

// =============================================================================
// WRITE PATH (seeding / content management)
// =============================================================================

// SaveProfile upserts the single profile row.
func (s *Store) SaveProfile(ctx context.Context, about string, contact ContactInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	socials, err := json.Marshal(contact.Socials)
	if err != nil {
		return fmt.Errorf("failed to encode socials: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profile (id, about, email, socials, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			about = excluded.about,
			email = excluded.email,
			socials = excluded.socials,
			updated_at = excluded.updated_at`,
		about, contact.Email, string(socials), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// SaveSection upserts one section record.
func (s *Store) SaveSection(ctx context.Context, sec Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if sec.CreatedAt.IsZero() {
		sec.CreatedAt = now
	}
	sec.UpdatedAt = now

	metadata := string(sec.Metadata)
	if metadata == "" {
		metadata = "{}"
	}

	var start, end interface{}
	if sec.StartDate != nil {
		start = *sec.StartDate
	}
	if sec.EndDate != nil {
		end = *sec.EndDate
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sections (id, type, title, description, metadata, image_url,
			start_date, end_date, display_order, is_featured, is_visible,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			title = excluded.title,
			description = excluded.description,
			metadata = excluded.metadata,
			image_url = excluded.image_url,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			display_order = excluded.display_order,
			is_featured = excluded.is_featured,
			is_visible = excluded.is_visible,
			updated_at = excluded.updated_at`,
		sec.ID, sec.Type, sec.Title, sec.Description, metadata, sec.ImageURL,
		start, end, sec.DisplayOrder, sec.IsFeatured, sec.IsVisible,
		sec.CreatedAt, sec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save section %s: %w", sec.ID, err)
	}
	return nil
}

// Clear removes all content. Used by tests and by reseeding.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM sections`); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM profile`)
	return err
}
