package handler

import (
	"context"
	"fmt"

	"github.com/mateconpizza/rotato"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/service"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/menu"
)

var credB = func(s string) string { return color.BrightRed(s).Bold().String() }

// Remove deletes the bookmarks from the account after confirmation.
func Remove(c *ui.Console, sy *service.Syncer, bs []*bookmark.Bookmark) error {
	if err := validateRemove(c, bs); err != nil {
		return err
	}

	if !config.App.Flags.Force {
		c.F.Header(credB("Removing Bookmarks\n\n")).Flush()

		m := menu.New[bookmark.Bookmark](
			menu.WithUseDefaults(),
			menu.WithSettings(config.Fzf.Settings),
			menu.WithMultiSelection(),
			menu.WithHeader("select record/s to remove", false),
		)

		if err := Confirmation(c, m, &bs, credB("remove"), color.BrightRed); err != nil {
			return err
		}
	}

	return removeRecords(c, sy, bs)
}

// removeRecords deletes every record from the server, then from the cache.
func removeRecords(c *ui.Console, sy *service.Syncer, bs []*bookmark.Bookmark) error {
	sp := rotato.New(
		rotato.WithMesg("removing bookmark/s..."),
		rotato.WithMesgColor(rotato.ColorGray),
	)
	sp.Start()

	ctx := context.Background()

	for _, b := range bs {
		if err := sy.Delete(ctx, b.URL); err != nil {
			sp.Done()
			return fmt.Errorf("removing %q: %w", b.URL, err)
		}
	}

	sp.Done()

	fmt.Print(c.SuccessMesg(fmt.Sprintf("%d bookmark/s removed\n", len(bs))))

	return nil
}
