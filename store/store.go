// SPDX-License-Identifier: MIT

// Package store keeps a library of saved designs in a SQLite database.
//
// Each design is a project.Document stored as JSON next to a few indexed
// columns used for listing. The database file is created on first Open.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/katalvlaran/filmcalc/internal/logging"
	"github.com/katalvlaran/filmcalc/project"
)

// ErrNotFound indicates no design matches the requested id or name.
var ErrNotFound = errors.New("store: design not found")

const schema = `
CREATE TABLE IF NOT EXISTS designs (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	substrate   TEXT NOT NULL,
	layer_count INTEGER NOT NULL,
	total_nm    REAL NOT NULL,
	document    TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_designs_name ON designs(name);
`

// timeLayout is fixed width so that text order in SQL matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is the listing view of a stored design.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Substrate string    `json:"substrate"`
	Layers    int       `json:"layers"`
	TotalNm   float64   `json:"totalThicknessNm"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is a design library backed by one SQLite file. It is safe for
// concurrent use.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	path   string
	now    func() time.Time
}

// Open opens or creates the library at path, creating parent directories
// as needed. A nil logger discards output.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// Pragmas below are per connection; one connection keeps them in force
	// and serializes writers.
	db.SetMaxOpenConns(1)
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: %s: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: initialize schema: %w", err)
	}
	logger.Debug("design library opened", "path", path)

	return &Store{db: db, logger: logger, path: path, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Put inserts or replaces d and returns the stored copy. A document without
// an id is assigned a new UUID. Documents failing Validate(nil) are rejected.
func (s *Store) Put(ctx context.Context, d project.Document) (project.Document, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if err := d.Validate(nil); err != nil {
		return project.Document{}, err
	}
	body, err := json.Marshal(d)
	if err != nil {
		return project.Document{}, fmt.Errorf("store: encode %s: %w", d.ID, err)
	}

	now := s.now().UTC().Format(timeLayout)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO designs (id, name, substrate, layer_count, total_nm, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			substrate = excluded.substrate,
			layer_count = excluded.layer_count,
			total_nm = excluded.total_nm,
			document = excluded.document,
			updated_at = excluded.updated_at`,
		d.ID, d.Name, d.Substrate, len(d.Layers), d.Stack().TotalThicknessNm(), string(body), now, now)
	if err != nil {
		return project.Document{}, fmt.Errorf("store: put %s: %w", d.ID, err)
	}
	s.logger.Info("design saved", "id", d.ID, "name", d.Name, "layers", len(d.Layers))

	return d, nil
}

// Get returns the design with the given id.
func (s *Store) Get(ctx context.Context, id string) (project.Document, error) {
	return s.scanDocument(s.db.QueryRowContext(ctx, `SELECT document FROM designs WHERE id = ?`, id), id)
}

// Find resolves key as an id first and then as a name. When several designs
// share a name the most recently updated wins.
func (s *Store) Find(ctx context.Context, key string) (project.Document, error) {
	d, err := s.Get(ctx, key)
	if !errors.Is(err, ErrNotFound) {
		return d, err
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT document FROM designs WHERE name = ? ORDER BY updated_at DESC LIMIT 1`, key)

	return s.scanDocument(row, key)
}

func (s *Store) scanDocument(row *sql.Row, key string) (project.Document, error) {
	var body string
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return project.Document{}, fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return project.Document{}, fmt.Errorf("store: get %q: %w", key, err)
	}
	var d project.Document
	if err := json.Unmarshal([]byte(body), &d); err != nil {
		return project.Document{}, fmt.Errorf("store: decode %q: %w", key, err)
	}

	return d, nil
}

// List returns all designs ordered by name, then id.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, substrate, layer_count, total_nm, created_at, updated_at
		FROM designs ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var created, updated string
		if err := rows.Scan(&e.ID, &e.Name, &e.Substrate, &e.Layers, &e.TotalNm, &created, &updated); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		if e.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("store: list %s: %w", e.ID, err)
		}
		if e.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
			return nil, fmt.Errorf("store: list %s: %w", e.ID, err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Delete removes the design with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.logger.Info("design deleted", "id", id)

	return nil
}
