// Package service coordinates the remote account with the local cache.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/db"
)

var ErrNotSynced = errors.New("bookmarks were never synced, run 'sync' first")

// Remote is the slice of the API the syncer drives.
type Remote interface {
	LastUpdate(ctx context.Context) (time.Time, error)
	All(ctx context.Context) ([]*bookmark.Bookmark, error)
	Add(ctx context.Context, b *bookmark.Bookmark) error
	Delete(ctx context.Context, url string) error
}

// Store is the slice of the cache the syncer maintains.
type Store interface {
	Count(ctx context.Context) int
	Upsert(ctx context.Context, b *bookmark.Bookmark) error
	DeleteByURL(ctx context.Context, url string) error
	ReplaceAll(ctx context.Context, bs []*bookmark.Bookmark, downloadedAt time.Time) error
	LastDownloaded(ctx context.Context) (time.Time, error)
	SetLastDownloaded(ctx context.Context, t time.Time) error
}

// Syncer keeps the local cache consistent with the remote collection.
//
// Mutations go to the server first and touch the cache only once the server
// accepted them.
type Syncer struct {
	api   Remote
	store Store
	now   func() time.Time
}

// New creates a Syncer over the given remote and cache.
func New(api Remote, store Store) *Syncer {
	return &Syncer{api: api, store: store, now: time.Now}
}

// UpToDate reports whether the cache already holds everything the server
// has.
func (s *Syncer) UpToDate(ctx context.Context) (bool, error) {
	last, err := s.store.LastDownloaded(ctx)
	if err != nil {
		return false, err
	}

	if last.IsZero() || s.store.Count(ctx) == 0 {
		return false, nil
	}

	serverLast, err := s.api.LastUpdate(ctx)
	if err != nil {
		return false, fmt.Errorf("asking server for last update: %w", err)
	}

	slog.Debug("sync check", "server", serverLast, "local", last)

	return !serverLast.After(last), nil
}

// Refresh brings the cache up to date with the server, wholesale.
//
// It reports whether a fresh copy was downloaded; when the server has
// nothing newer than the cache and force is false, nothing happens.
func (s *Syncer) Refresh(ctx context.Context, force bool) (bool, error) {
	if !force {
		ok, err := s.UpToDate(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return false, nil
		}
	}

	bs, err := s.api.All(ctx)
	if err != nil {
		return false, fmt.Errorf("downloading bookmarks: %w", err)
	}

	if err := s.store.ReplaceAll(ctx, bs, s.now().UTC()); err != nil {
		return false, fmt.Errorf("replacing cache: %w", err)
	}

	slog.Info("downloaded fresh copy", "records", len(bs))

	return true, nil
}

// EnsureFresh refreshes the cache but degrades to the cached copy when the
// server cannot be reached, unless the cache is empty.
func (s *Syncer) EnsureFresh(ctx context.Context) error {
	if _, err := s.Refresh(ctx, false); err != nil {
		if s.store.Count(ctx) == 0 {
			return err
		}

		slog.Warn("using cached bookmarks", "error", err)
	}

	return nil
}

// Add creates or replaces the bookmark on the server, then in the cache.
func (s *Syncer) Add(ctx context.Context, b *bookmark.Bookmark) error {
	if err := bookmark.Validate(b); err != nil {
		return err
	}

	if b.CreatedAt == "" {
		b.CreatedAt = s.now().UTC().Format(bookmark.TimeLayout)
	}
	b.EnsureHash()

	if err := s.api.Add(ctx, b); err != nil {
		return fmt.Errorf("saving on server: %w", err)
	}

	if err := s.store.Upsert(ctx, b); err != nil {
		return err
	}

	return s.stamp(ctx)
}

// Delete removes the bookmark from the server, then from the cache.
func (s *Syncer) Delete(ctx context.Context, bURL string) error {
	if err := s.api.Delete(ctx, bURL); err != nil {
		return fmt.Errorf("deleting on server: %w", err)
	}

	if err := s.store.DeleteByURL(ctx, bURL); err != nil && !errors.Is(err, db.ErrRecordNotFound) {
		return err
	}

	return s.stamp(ctx)
}

// ToggleRead flips the read-later flag.
func (s *Syncer) ToggleRead(ctx context.Context, b *bookmark.Bookmark) error {
	b.ToRead = !b.ToRead
	return s.Add(ctx, b)
}

// ToggleShared flips the public flag.
func (s *Syncer) ToggleShared(ctx context.Context, b *bookmark.Bookmark) error {
	b.Shared = !b.Shared
	return s.Add(ctx, b)
}

// stamp records that the cache reflects the server as of now, so the next
// freshness check does not trigger a wholesale download for a change this
// client made itself.
func (s *Syncer) stamp(ctx context.Context) error {
	if err := s.store.SetLastDownloaded(ctx, s.now().UTC()); err != nil {
		return fmt.Errorf("stamping sync time: %w", err)
	}

	return nil
}
