// Package handler wires the command line flows to the cache and the
// account.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/filter"
	"github.com/mateconpizza/pinb/internal/ui/menu"
)

var (
	ErrInvalidOption = errors.New("invalid option")
	ErrNoItems       = errors.New("no items")
)

// Records resolves command line arguments into cached bookmarks.
//
// Numeric arguments are looked up as local IDs, a single URL argument is
// matched exactly, anything else becomes a case insensitive text query.
// With no arguments the whole cache is returned.
func Records(ctx context.Context, r *db.SQLite, args []string) ([]*bookmark.Bookmark, error) {
	slog.Debug("resolving records", "args", args)

	ids, err := extractIDsFrom(args)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if len(ids) > 0 {
		return byIDs(ctx, r, ids, args)
	}

	if len(args) == 1 && URLValid(args[0]) {
		b, err := r.ByURL(ctx, args[0])
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		return []*bookmark.Bookmark{b}, nil
	}

	bs, err := r.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if len(args) > 0 {
		q := strings.Join(args, " ")

		bs = filter.Apply(bs, &filter.Options{Query: q})
		if len(bs) == 0 {
			return nil, fmt.Errorf("%w: %q", db.ErrRecordNoMatch, q)
		}
	}

	return bs, nil
}

// byIDs fetches the records matching the extracted IDs.
func byIDs(ctx context.Context, r *db.SQLite, ids []int, args []string) ([]*bookmark.Bookmark, error) {
	bs, err := r.ByIDList(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("records by id: %w", err)
	}

	if len(bs) == 0 {
		bids := strings.Join(args, ", ")
		return nil, fmt.Errorf("%w by id/s: %s", db.ErrRecordNotFound, bids)
	}

	return bs, nil
}

// Data resolves records and applies the narrowing flags of cmd.
func Data(
	cmd *cobra.Command,
	m *menu.Menu[bookmark.Bookmark],
	r *db.SQLite,
	args []string,
) ([]*bookmark.Bookmark, error) {
	bs, err := Records(cmd.Context(), r, args)
	if err != nil {
		return nil, err
	}

	o, err := filterFlags(cmd)
	if err != nil {
		return nil, err
	}

	bs = filter.Apply(bs, o)
	if len(bs) == 0 {
		return nil, db.ErrRecordNoMatch
	}

	mFlag, err := cmd.Flags().GetBool("menu")
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	mlFlag, err := cmd.Flags().GetBool("multiline")
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if mFlag || mlFlag {
		bs, err = selectionWithMenu(m, bs, fzfFormatter(mlFlag))
		if err != nil {
			return nil, err
		}
	}

	return bs, nil
}

// filterFlags builds the filter options from the command flags.
func filterFlags(cmd *cobra.Command) (*filter.Options, error) {
	o := &filter.Options{}

	var err error
	if o.Tags, err = cmd.Flags().GetStringSlice("tag"); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if o.Head, err = cmd.Flags().GetInt("head"); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if o.Tail, err = cmd.Flags().GetInt("tail"); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if o.Head < 0 || o.Tail < 0 {
		return nil, fmt.Errorf("%w: head=%d tail=%d", ErrInvalidOption, o.Head, o.Tail)
	}

	panes := map[string]*bool{
		"unread":   &o.Unread,
		"read":     &o.Read,
		"public":   &o.Public,
		"private":  &o.Private,
		"tagged":   &o.Tagged,
		"untagged": &o.Untagged,
	}

	for name, dst := range panes {
		if *dst, err = cmd.Flags().GetBool(name); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return o, nil
}
