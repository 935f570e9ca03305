package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

type tableSchema struct {
	name  Table
	sql   string
	index string
}

// tablesAndSchema returns all tables and their schema.
func tablesAndSchema() []tableSchema {
	return []tableSchema{
		schemaBookmarks, schemaSync,
	}
}

// Init creates the required tables when they are missing.
func (r *SQLite) Init(ctx context.Context) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, s := range tablesAndSchema() {
			if err := tableCreate(tx, s.name, s.sql); err != nil {
				return fmt.Errorf("creating %q table: %w", s.name, err)
			}

			if s.index != "" {
				if _, err := tx.Exec(s.index); err != nil {
					return fmt.Errorf("creating %q index: %w", s.name, err)
				}
			}
		}

		return nil
	})
}

// tableExists checks whether a table with the specified name exists in the
// SQLite database.
func (r *SQLite) tableExists(t Table) (bool, error) {
	var count int

	err := r.DB.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name = ?", t)
	if err != nil {
		slog.Error("checking if table exists", "name", t, "error", err)
		return false, fmt.Errorf("tableExists: %w", err)
	}

	return count > 0, nil
}

// tableCreate creates a new table with the specified name in the SQLite
// database.
func tableCreate(tx *sqlx.Tx, name Table, schema string) error {
	slog.Debug("creating table", "name", name)

	_, err := tx.Exec(schema)
	if err != nil {
		return fmt.Errorf("error creating table: %w", err)
	}

	return nil
}

// resetSQLiteSequence resets the auto-increment sequence of the given
// tables.
func resetSQLiteSequence(tx *sqlx.Tx, tables ...Table) error {
	if len(tables) == 0 {
		slog.Warn("no tables provided to reset sqlite sequence")
		return nil
	}

	for _, t := range tables {
		slog.Debug("resetting sqlite sequence", "table", t)

		if _, err := tx.Exec("DELETE FROM sqlite_sequence WHERE name=?", t); err != nil {
			return fmt.Errorf("resetting sqlite sequence: %w", err)
		}
	}

	return nil
}

// Vacuum rebuilds the database file, repacking it into a minimal amount of
// disk space.
func (r *SQLite) Vacuum(ctx context.Context) error {
	slog.Debug("vacuuming database", "name", r.Name())

	if _, err := r.DB.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}

	return nil
}
