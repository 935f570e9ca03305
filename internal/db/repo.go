// Package db implements the local SQLite cache of the remote collection.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mateconpizza/pinb/internal/sys/files"
)

type Table string

// SQLite is the on-disk cache of the account's bookmarks.
type SQLite struct {
	DB        *sqlx.DB `json:"-"`
	Cfg       *Cfg     `json:"db"`
	closeOnce sync.Once
}

// Cfg represents the configuration for the SQLite cache.
type Cfg struct {
	Name string `json:"name"` // Name of the SQLite database
	Path string `json:"path"` // Path to the SQLite database
}

// Fullpath returns the full path to the SQLite database.
func (c *Cfg) Fullpath() string {
	return filepath.Join(c.Path, c.Name)
}

// Exists returns true if the SQLite database exists.
func (c *Cfg) Exists() bool {
	return files.Exists(c.Fullpath())
}

// Name returns the name of the SQLite database.
func (r *SQLite) Name() string {
	return r.Cfg.Name
}

// Close closes the SQLite database connection and logs any errors
// encountered.
func (r *SQLite) Close() {
	s := r.Name()
	r.closeOnce.Do(func() {
		if err := r.DB.Close(); err != nil {
			slog.Error("closing database", "name", s, "error", err)
		} else {
			slog.Debug("database closed", "name", s)
		}
	})
}

// Open opens the cache at the given path, creating the file and its schema
// when missing.
func Open(p string) (*SQLite, error) {
	if p == "" {
		return nil, files.ErrPathEmpty
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %q: %w", p, err)
	}

	if err := files.MkdirAll(filepath.Dir(abs)); err != nil {
		return nil, err
	}

	sqlDB, err := openDatabase(abs)
	if err != nil {
		slog.Error("opening cache", "error", err, "path", abs)
		return nil, err
	}

	r := &SQLite{
		DB: sqlDB,
		Cfg: &Cfg{
			Name: filepath.Base(abs),
			Path: filepath.Dir(abs),
		},
	}

	if err := r.Init(context.Background()); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// openDatabase opens a SQLite database at the specified path and verifies
// the connection, returning the database handle or an error.
func openDatabase(s string) (*sqlx.DB, error) {
	slog.Debug("opening database", "path", s)

	db, err := sqlx.Open("sqlite3", s)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%w: on ping context", err)
	}

	return db, nil
}
