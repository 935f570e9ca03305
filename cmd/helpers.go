package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/handler"
	"github.com/mateconpizza/pinb/internal/pinboard"
	"github.com/mateconpizza/pinb/internal/service"
	"github.com/mateconpizza/pinb/internal/sys"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/frame"
)

// openCache opens the local bookmarks cache, creating it on first use.
func openCache() (*db.SQLite, error) {
	r, err := db.Open(config.App.Path.CacheFile)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return r, nil
}

// newConsole builds a console whose interrupt handler closes the cache
// before exiting.
func newConsole(r *db.SQLite) *ui.Console {
	return ui.NewConsole(
		ui.WithFrame(frame.New(frame.WithColorBorder(color.Gray))),
		ui.WithTerminal(terminal.New(terminal.WithInterruptFn(func(err error) {
			r.Close()
			sys.ErrAndExit(err)
		}))),
	)
}

// newSyncer wires the account client and the cache into a syncer.
//
// Fails when no API token can be found.
func newSyncer(r *db.SQLite) (*service.Syncer, *pinboard.Client, error) {
	token, err := config.Token()
	if err != nil {
		return nil, nil, err
	}

	api := pinboard.New(token)

	return service.New(api, r), api, nil
}

// refreshCache brings the cache up to date when possible.
//
// Without a token the cached copy is served as is, an empty cache
// without a token is an error.
func refreshCache(ctx context.Context, r *db.SQLite) error {
	sy, _, err := newSyncer(r)
	if err != nil {
		if r.Count(ctx) == 0 {
			return err
		}

		slog.Warn("serving cache without account", "error", err)

		return nil
	}

	if err := sy.EnsureFresh(ctx); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// cachedRecords opens the cache, refreshes it when possible and resolves
// args to records.
//
// The caller owns the returned cache.
func cachedRecords(cmd *cobra.Command, args []string) (*db.SQLite, []*bookmark.Bookmark, error) {
	r, err := openCache()
	if err != nil {
		return nil, nil, err
	}

	ctx := cmd.Context()
	if err := refreshCache(ctx, r); err != nil {
		r.Close()
		return nil, nil, err
	}

	bs, err := handler.Records(ctx, r, args)
	if err != nil {
		r.Close()
		return nil, nil, fmt.Errorf("%w", err)
	}

	return r, bs, nil
}

// accountRecords is cachedRecords plus a syncer, for commands that push
// changes to the account.
func accountRecords(cmd *cobra.Command, args []string) (*db.SQLite, *service.Syncer, []*bookmark.Bookmark, error) {
	r, err := openCache()
	if err != nil {
		return nil, nil, nil, err
	}

	sy, _, err := newSyncer(r)
	if err != nil {
		r.Close()
		return nil, nil, nil, err
	}

	ctx := cmd.Context()
	if err := sy.EnsureFresh(ctx); err != nil {
		r.Close()
		return nil, nil, nil, fmt.Errorf("%w", err)
	}

	bs, err := handler.Records(ctx, r, args)
	if err != nil {
		r.Close()
		return nil, nil, nil, fmt.Errorf("%w", err)
	}

	return r, sy, bs, nil
}
