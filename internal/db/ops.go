package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

// All returns every cached bookmark, newest first.
func (r *SQLite) All(ctx context.Context) ([]*bookmark.Bookmark, error) {
	var bs []*bookmark.Bookmark

	err := r.DB.SelectContext(ctx, &bs, "SELECT * FROM bookmarks ORDER BY created_at DESC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("getting records: %w", err)
	}

	if len(bs) == 0 {
		return nil, ErrDBEmpty
	}

	return bs, nil
}

// ByID returns the bookmark with the given local ID.
func (r *SQLite) ByID(ctx context.Context, id int) (*bookmark.Bookmark, error) {
	b := bookmark.New()

	err := r.DB.GetContext(ctx, b, "SELECT * FROM bookmarks WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
		}

		return nil, fmt.Errorf("getting record by id: %w", err)
	}

	return b, nil
}

// ByIDList returns the bookmarks matching the given local IDs.
func (r *SQLite) ByIDList(ctx context.Context, ids []int) ([]*bookmark.Bookmark, error) {
	if len(ids) == 0 {
		return nil, ErrRecordIDNotProvided
	}

	q, args, err := sqlx.In("SELECT * FROM bookmarks WHERE id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, fmt.Errorf("building id query: %w", err)
	}

	var bs []*bookmark.Bookmark
	if err := r.DB.SelectContext(ctx, &bs, r.DB.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("getting records by ids: %w", err)
	}

	return bs, nil
}

// ByURL returns the bookmark with the given URL.
func (r *SQLite) ByURL(ctx context.Context, bURL string) (*bookmark.Bookmark, error) {
	b := bookmark.New()

	err := r.DB.GetContext(ctx, b, "SELECT * FROM bookmarks WHERE url = ?", bURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", ErrRecordNotFound, bURL)
		}

		return nil, fmt.Errorf("getting record by url: %w", err)
	}

	return b, nil
}

// Has reports whether a bookmark with the given URL is cached.
func (r *SQLite) Has(ctx context.Context, bURL string) bool {
	var count int
	if err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM bookmarks WHERE url = ?", bURL); err != nil {
		slog.Error("checking url", "url", bURL, "error", err)
		return false
	}

	return count > 0
}

// Count returns the number of cached bookmarks.
func (r *SQLite) Count(ctx context.Context) int {
	var count int
	if err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM bookmarks"); err != nil {
		return 0
	}

	return count
}

// InsertOne inserts a single bookmark.
func (r *SQLite) InsertOne(ctx context.Context, b *bookmark.Bookmark) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		return insertInto(tx, b)
	})
}

// InsertMany inserts the given bookmarks in a single transaction.
func (r *SQLite) InsertMany(ctx context.Context, bs []*bookmark.Bookmark) error {
	if len(bs) == 0 {
		return nil
	}

	slog.Debug("inserting many records", "count", len(bs))

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, b := range bs {
			if err := insertInto(tx, b); err != nil {
				return err
			}
		}

		return nil
	})
}

// Upsert inserts the bookmark, replacing the cached row when the URL is
// already present.
func (r *SQLite) Upsert(ctx context.Context, b *bookmark.Bookmark) error {
	if err := bookmark.Validate(b); err != nil {
		return err
	}

	b.EnsureHash()

	const q = `
    INSERT INTO bookmarks (url, title, desc, tags, hash, created_at, shared, to_read)
    VALUES (:url, :title, :desc, :tags, :hash, :created_at, :shared, :to_read)
    ON CONFLICT(url) DO UPDATE SET
        title      = excluded.title,
        desc       = excluded.desc,
        tags       = excluded.tags,
        hash       = excluded.hash,
        created_at = excluded.created_at,
        shared     = excluded.shared,
        to_read    = excluded.to_read`

	if _, err := r.DB.NamedExecContext(ctx, q, b); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}

	return nil
}

// DeleteByURL removes the bookmark with the given URL from the cache.
func (r *SQLite) DeleteByURL(ctx context.Context, bURL string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM bookmarks WHERE url = ?", bURL)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrRecordNotFound, bURL)
	}

	return nil
}

// ReplaceAll swaps the whole cache for the given collection and stamps the
// download time, in a single transaction.
func (r *SQLite) ReplaceAll(ctx context.Context, bs []*bookmark.Bookmark, downloadedAt time.Time) error {
	slog.Debug("replacing cache", "records", len(bs))

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec("DELETE FROM bookmarks"); err != nil {
			return fmt.Errorf("clearing bookmarks: %w", err)
		}

		if err := resetSQLiteSequence(tx, tableBookmarksName); err != nil {
			return err
		}

		for _, b := range bs {
			if err := insertInto(tx, b); err != nil {
				return err
			}
		}

		return setLastDownloaded(tx, downloadedAt)
	})
}

// LastDownloaded returns the stamp of the last full download, or the zero
// time when the cache was never filled.
func (r *SQLite) LastDownloaded(ctx context.Context) (time.Time, error) {
	var s string

	err := r.DB.GetContext(ctx, &s, "SELECT last_downloaded FROM sync WHERE id = 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}

		return time.Time{}, fmt.Errorf("getting sync stamp: %w", err)
	}

	t, err := time.Parse(bookmark.TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing sync stamp: %w", err)
	}

	return t, nil
}

// SetLastDownloaded stamps the time of the last full download.
func (r *SQLite) SetLastDownloaded(ctx context.Context, t time.Time) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		return setLastDownloaded(tx, t)
	})
}

// TagCounts returns every cached tag and its usage count.
func (r *SQLite) TagCounts(ctx context.Context) (map[string]int, error) {
	var lists []string

	err := r.DB.SelectContext(ctx, &lists, "SELECT tags FROM bookmarks WHERE tags <> ''")
	if err != nil {
		return nil, fmt.Errorf("getting tags: %w", err)
	}

	counts := make(map[string]int)
	for _, l := range lists {
		for _, t := range strings.Fields(l) {
			counts[t]++
		}
	}

	return counts, nil
}

// DropAll removes every record and the sync stamp, then vacuums.
func (r *SQLite) DropAll(ctx context.Context) error {
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, t := range []Table{tableBookmarksName, tableSyncName} {
			if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", t)); err != nil {
				return fmt.Errorf("clearing %q: %w", t, err)
			}
		}

		return resetSQLiteSequence(tx, tableBookmarksName)
	})
	if err != nil {
		return err
	}

	return r.Vacuum(ctx)
}

// insertInto inserts a bookmark within a transaction.
func insertInto(tx *sqlx.Tx, b *bookmark.Bookmark) error {
	if err := bookmark.Validate(b); err != nil {
		return err
	}

	if hasTx(tx, b.URL) {
		return fmt.Errorf("%w: %q", ErrRecordDuplicate, b.URL)
	}

	b.EnsureHash()

	const q = `
    INSERT INTO bookmarks (url, title, desc, tags, hash, created_at, shared, to_read)
    VALUES (:url, :title, :desc, :tags, :hash, :created_at, :shared, :to_read)`

	res, err := tx.NamedExec(q, b)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		b.ID = int(id)
	}

	return nil
}

// hasTx reports whether the URL is already cached, inside a transaction.
func hasTx(tx *sqlx.Tx, bURL string) bool {
	var count int
	if err := tx.Get(&count, "SELECT COUNT(*) FROM bookmarks WHERE url = ?", bURL); err != nil {
		return false
	}

	return count > 0
}

// setLastDownloaded writes the single-row sync stamp within a transaction.
func setLastDownloaded(tx *sqlx.Tx, t time.Time) error {
	const q = `
    INSERT INTO sync (id, last_downloaded) VALUES (1, ?)
    ON CONFLICT(id) DO UPDATE SET last_downloaded = excluded.last_downloaded`

	if _, err := tx.Exec(q, t.UTC().Format(bookmark.TimeLayout)); err != nil {
		return fmt.Errorf("stamping sync time: %w", err)
	}

	return nil
}

// withTx executes a function within a transaction.
func (r *SQLite) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback() // ensure rollback on panic
			panic(p)          // re-throw the panic after rollback
		} else if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Printf("rollback error: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("fn transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	return nil
}
