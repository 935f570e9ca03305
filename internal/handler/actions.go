package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mateconpizza/rotato"
	"golang.org/x/sync/semaphore"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/qr"
	"github.com/mateconpizza/pinb/internal/service"
	"github.com/mateconpizza/pinb/internal/status"
	"github.com/mateconpizza/pinb/internal/sys"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/txt"
	"github.com/mateconpizza/pinb/internal/wayback"
)

var (
	cbc = func(s string) string { return color.BrightCyan(s).Italic().String() }
	cbg = func(s string) string { return color.BrightGreen(s).Bold().String() }
	cy  = func(s string) string { return color.Yellow(s).String() }
)

// Open opens the bookmark URLs in the default browser.
func Open(c *ui.Console, bs []*bookmark.Bookmark) error {
	const maxGoroutines = 15

	n := len(bs)

	q := fmt.Sprintf("%s %d bookmarks, continue?", cbg("opening"), n)
	if err := confirmUserLimit(c, n, maxGoroutines, q); err != nil {
		return err
	}

	sp := rotato.New(
		rotato.WithMesg("opening bookmarks..."),
		rotato.WithMesgColor(rotato.ColorBrightGreen),
		rotato.WithSpinnerColor(rotato.ColorBrightGreen),
	)
	sp.Start()
	defer sp.Done()

	var (
		wg    sync.WaitGroup
		sem   = semaphore.NewWeighted(maxGoroutines)
		errCh = make(chan error, n)
	)

	for _, b := range bs {
		if err := sem.Acquire(context.Background(), 1); err != nil {
			return fmt.Errorf("acquiring semaphore: %w", err)
		}

		wg.Add(1)

		go func(u string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := sys.OpenInBrowser(u); err != nil {
				errCh <- fmt.Errorf("open error: %w", err)
			}
		}(b.URL)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		return err
	}

	return nil
}

// Copy puts the bookmark URLs on the system clipboard.
func Copy(c *ui.Console, bs []*bookmark.Bookmark) error {
	var sb strings.Builder
	for _, b := range bs {
		sb.WriteString(b.URL + "\n")
	}

	if err := sys.CopyClipboard(sb.String()); err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Print(c.SuccessMesg(fmt.Sprintf("%d URL/s copied to clipboard\n", len(bs))))

	return nil
}

// QR renders a QR code for each bookmark, or opens it as a labeled image.
func QR(c *ui.Console, bs []*bookmark.Bookmark, open bool) error {
	for _, b := range bs {
		code, err := qr.New(b.URL)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		if open {
			if err := openQR(code, b); err != nil {
				return err
			}

			continue
		}

		var sb strings.Builder

		sb.WriteString(b.Title + "\n")
		sb.WriteString(b.URL + "\n")
		sb.WriteString(code.String())
		t := sb.String()
		fmt.Print(t)

		lines := len(strings.Split(t, "\n"))

		terminal.WaitForEnter()
		c.ClearLine(lines)
	}

	return nil
}

// openQR saves the QR code as a labeled PNG and hands it to the system
// image viewer.
func openQR(code *qr.QRCode, b *bookmark.Bookmark) error {
	const maxLabelLen = 55

	if err := code.GenerateImg(config.App.Name); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := code.Label(txt.Shorten(b.Title, maxLabelLen), "top"); err != nil {
		return fmt.Errorf("%w: adding top label", err)
	}

	if err := code.Label(txt.Shorten(b.URL, maxLabelLen), "bottom"); err != nil {
		return fmt.Errorf("%w: adding bottom label", err)
	}

	if err := code.Open(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// CheckStatus probes every bookmark URL and reports the status codes.
func CheckStatus(c *ui.Console, bs []*bookmark.Bookmark) error {
	n := len(bs)
	if n == 0 {
		return db.ErrRecordNotFound
	}

	const maxGoroutines = 15

	q := fmt.Sprintf("checking %s of %d, continue?", cbg("status"), n)
	if err := confirmUserLimit(c, n, maxGoroutines, q); err != nil {
		return err
	}

	c.F.Header(fmt.Sprintf("checking %s of %d bookmarks\n", cbg("status"), n)).Flush()

	return status.Check(c, bs)
}

// Snapshot looks up each bookmark in the Wayback Machine and opens the
// closest archived copy.
func Snapshot(c *ui.Console, bs []*bookmark.Bookmark) error {
	ctx := context.Background()

	for _, b := range bs {
		sp := rotato.New(
			rotato.WithMesg("asking the wayback machine..."),
			rotato.WithMesgColor(rotato.ColorBrightBlue),
		)
		sp.Start()

		snap, err := wayback.Available(ctx, b.URL)
		sp.Done()

		if err != nil {
			if errors.Is(err, wayback.ErrNoSnapshot) {
				fmt.Print(c.WarningMesg(fmt.Sprintf("no snapshot for %s\n", cbc(txt.Shorten(b.URL, 60)))))
				continue
			}

			return fmt.Errorf("%w", err)
		}

		fmt.Print(c.SuccessMesg(fmt.Sprintf("snapshot from %s\n", snap.Time().Format("January 2, 2006"))))

		if err := sys.OpenInBrowser(snap.URL); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// ToggleRead flips the read later flag on each bookmark.
func ToggleRead(c *ui.Console, sy *service.Syncer, bs []*bookmark.Bookmark) error {
	ctx := context.Background()

	for _, b := range bs {
		if err := sy.ToggleRead(ctx, b); err != nil {
			return fmt.Errorf("%w", err)
		}

		state := "read"
		if b.ToRead {
			state = "to read later"
		}

		fmt.Print(c.SuccessMesg(fmt.Sprintf("[%d] marked as %s\n", b.ID, state)))
	}

	return nil
}

// ToggleShared flips each bookmark between public and private.
func ToggleShared(c *ui.Console, sy *service.Syncer, bs []*bookmark.Bookmark) error {
	ctx := context.Background()

	for _, b := range bs {
		if err := sy.ToggleShared(ctx, b); err != nil {
			return fmt.Errorf("%w", err)
		}

		state := "private"
		if b.Shared {
			state = "public"
		}

		fmt.Print(c.SuccessMesg(fmt.Sprintf("[%d] marked as %s\n", b.ID, state)))
	}

	return nil
}
