package handler

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mateconpizza/pinb/internal/bookio"
	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/ui"
)

// ExportNetscape writes the whole cache as a bookmark interchange file.
//
// An empty path writes to stdout.
func ExportNetscape(c *ui.Console, r *db.SQLite, path string) error {
	return exportTo(c, r, path, ".html", bookio.ExportNetscape)
}

// ExportJSON writes the whole cache as JSON.
//
// An empty path writes to stdout.
func ExportJSON(c *ui.Console, r *db.SQLite, path string) error {
	return exportTo(c, r, path, ".json", bookio.ExportJSON)
}

func exportTo(
	c *ui.Console,
	r *db.SQLite,
	path, suffix string,
	fn func(io.Writer, []*bookmark.Bookmark) error,
) error {
	bs, err := r.All(context.Background())
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if path == "" {
		return fn(os.Stdout, bs)
	}

	path = files.EnsureSuffix(files.ExpandHomeDir(path), suffix)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := fn(f, bs); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Print(c.SuccessMesg(fmt.Sprintf("%d bookmark/s exported to %q\n", len(bs), path)))

	return nil
}
