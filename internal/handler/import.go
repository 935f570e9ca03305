package handler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/mateconpizza/rotato"
	"golang.org/x/sync/semaphore"

	"github.com/mateconpizza/pinb/internal/bookio"
	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/browser"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/scraper"
	"github.com/mateconpizza/pinb/internal/service"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/ui"
)

// ImportBrowser pulls bookmarks out of an installed web browser and pushes
// the new ones to the account.
func ImportBrowser(c *ui.Console, r *db.SQLite, sy *service.Syncer, force bool) error {
	br, err := browser.Select(c)
	if err != nil {
		return err
	}

	if err := br.LoadPaths(); err != nil {
		return fmt.Errorf("%w", err)
	}

	bs, err := br.Import(c, force)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	ctx := context.Background()

	bs = dropKnown(ctx, c, r, bs)
	bs = dropInvalid(c, bs)

	if len(bs) == 0 {
		fmt.Print(c.InfoMesg("no new bookmarks found\n"))
		return nil
	}

	scrapeMissingDesc(c, bs, force)

	return intoAccount(ctx, c, sy, bs, force)
}

// ImportNetscape reads a bookmark interchange file and pushes the new
// records to the account.
func ImportNetscape(c *ui.Console, r *db.SQLite, sy *service.Syncer, path string, force bool) error {
	path = files.ExpandHomeDir(path)
	if err := files.ExistsErr(path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	bs, err := bookio.ParseNetscape(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %q: %w", filepath.Base(path), err)
	}

	c.F.Headerln(fmt.Sprintf("found %d bookmarks in %q", len(bs), filepath.Base(path))).Flush()

	ctx := context.Background()

	bs = dropKnown(ctx, c, r, bs)
	bs = dropInvalid(c, bs)

	if len(bs) == 0 {
		fmt.Print(c.InfoMesg("no new bookmarks found\n"))
		return nil
	}

	return intoAccount(ctx, c, sy, bs, force)
}

// dropKnown filters out bookmarks whose URL is already in the account.
func dropKnown(ctx context.Context, c *ui.Console, r *db.SQLite, bs []*bookmark.Bookmark) []*bookmark.Bookmark {
	keep := make([]*bookmark.Bookmark, 0, len(bs))

	for _, b := range bs {
		if !r.Has(ctx, b.URL) {
			keep = append(keep, b)
		}
	}

	if d := len(bs) - len(keep); d > 0 {
		fmt.Print(c.WarningMesg(fmt.Sprintf("skipping %d duplicate bookmark/s\n", d)))
	}

	return keep
}

// dropInvalid filters out bookmarks the server would reject.
func dropInvalid(c *ui.Console, bs []*bookmark.Bookmark) []*bookmark.Bookmark {
	keep := make([]*bookmark.Bookmark, 0, len(bs))

	for _, b := range bs {
		if err := bookmark.Validate(b); err != nil {
			slog.Debug("dropping bookmark", "url", b.URL, "error", err)
			continue
		}

		keep = append(keep, b)
	}

	if d := len(bs) - len(keep); d > 0 {
		fmt.Print(c.WarningMesg(fmt.Sprintf("skipping %d bookmark/s with unsupported URLs\n", d)))
	}

	return keep
}

// scrapeMissingDesc fills in missing descriptions from the webpages.
func scrapeMissingDesc(c *ui.Console, bs []*bookmark.Bookmark, force bool) {
	missing := make([]*bookmark.Bookmark, 0, len(bs))

	for _, b := range bs {
		if b.Desc == "" {
			missing = append(missing, b)
		}
	}

	if len(missing) == 0 || force {
		return
	}

	q := fmt.Sprintf("scrape missing data for %d bookmark/s?", len(missing))
	if !c.Confirm(q, "n") {
		return
	}

	sp := rotato.New(
		rotato.WithMesg("scraping missing data..."),
		rotato.WithMesgColor(rotato.ColorBrightBlue),
		rotato.WithSpinnerColor(rotato.ColorGray),
	)
	sp.Start()
	defer sp.Done()

	const maxGoroutines = 10

	var (
		wg  sync.WaitGroup
		sem = semaphore.NewWeighted(maxGoroutines)
	)

	ctx := context.Background()

	for _, b := range missing {
		if err := sem.Acquire(ctx, 1); err != nil {
			slog.Warn("acquiring semaphore", "error", err)
			break
		}

		wg.Add(1)

		go func(b *bookmark.Bookmark) {
			defer wg.Done()
			defer sem.Release(1)

			sc := scraper.New(b.URL)
			if err := sc.Start(); err != nil {
				return
			}

			if b.Title == "" {
				b.Title, _ = sc.Title()
			}

			b.Desc, _ = sc.Desc()
		}(b)
	}

	wg.Wait()
}

// intoAccount pushes the bookmarks to the server one by one.
func intoAccount(ctx context.Context, c *ui.Console, sy *service.Syncer, bs []*bookmark.Bookmark, force bool) error {
	if !force {
		if err := c.ConfirmErr(fmt.Sprintf("import %d bookmark/s?", len(bs)), "y"); err != nil {
			return err
		}
	}

	sp := rotato.New(
		rotato.WithMesg("importing bookmark/s..."),
		rotato.WithMesgColor(rotato.ColorBrightGreen),
	)
	sp.Start()

	for _, b := range bs {
		if err := sy.Add(ctx, b); err != nil {
			sp.Done()
			return fmt.Errorf("importing %q: %w", b.URL, err)
		}
	}

	sp.Done()

	fmt.Print(c.SuccessMesg(fmt.Sprintf("%d bookmark/s imported\n", len(bs))))

	return nil
}
