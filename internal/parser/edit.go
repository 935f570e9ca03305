package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/scraper"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

var ErrBufferUnchanged = errors.New("buffer unchanged")

// BookmarkEdit holds information about a bookmark edit operation.
type BookmarkEdit struct {
	item   *bookmark.Bookmark
	header []byte
	body   []byte
	footer []byte
	idx    int
	total  int
}

func newBookmarkEdit(b *bookmark.Bookmark) *BookmarkEdit {
	return &BookmarkEdit{
		item: b,
		body: b.Buffer(),
	}
}

func (be *BookmarkEdit) Buffer() []byte {
	buf := make([]byte, 0, len(be.header)+len(be.body)+len(be.footer))
	buf = append(buf, be.header...)
	buf = append(buf, be.body...)
	buf = append(buf, be.footer...)

	return buf
}

// Edit opens a bookmark in the text editor and parses the result.
//
// Returns ErrBufferUnchanged when nothing was modified.
func Edit(te *files.TextEditor, b *bookmark.Bookmark, idx, total int) (*bookmark.Bookmark, error) {
	be := newBookmarkEdit(b)
	be.idx = idx
	be.total = total

	prepareBufferForEdition(be)

	buf := be.Buffer()

	modified, err := te.EditBytes(buf, config.App.Name)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if bytes.Equal(modified, buf) {
		return nil, ErrBufferUnchanged
	}

	lines := strings.Split(string(modified), "\n")
	if err := ValidateBookmarkFormat(lines); err != nil {
		return nil, fmt.Errorf("invalid bookmark format: %w", err)
	}

	tb := BookmarkContent(lines)
	if be.item.Equals(tb) {
		return nil, ErrBufferUnchanged
	}

	tb = scrapeBookmark(tb)
	tb.ID = be.item.ID
	tb.CreatedAt = be.item.CreatedAt
	tb.EnsureHash()

	return tb, nil
}

// prepareBufferForEdition prepends the header and appends the footer.
func prepareBufferForEdition(be *BookmarkEdit) {
	const spaces = 10

	newBookmark := be.item.ID == 0

	shortTitle := txt.Shorten(be.item.Title, terminal.MinWidth-spaces-6)

	header := fmt.Appendf(nil, "# %d %s\n#\n", be.item.ID, shortTitle)
	if newBookmark {
		header = fmt.Appendf(nil, "# %s\n#\n", shortTitle)
	}

	s := "bookmark edition"
	if newBookmark {
		s = "bookmark addition"
	}

	sep := txt.CenteredLine(terminal.MinWidth-spaces, s)

	meta := fmt.Appendf(nil, "# version:\tv%s\n# %s\n\n", config.App.Version, sep)

	be.footer = fmt.Appendf(nil, " [%d/%d]", be.idx+1, be.total)
	if newBookmark {
		be.footer = fmt.Appendf(nil, " [New]")
	}

	header = append(header, meta...)
	be.header = append(be.header, header...)
}

// scrapeBookmark fills in a missing title, and description, from the
// webpage itself.
func scrapeBookmark(b *bookmark.Bookmark) *bookmark.Bookmark {
	if b.Title != "" {
		return b
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sc := scraper.New(b.URL, scraper.WithContext(ctx), scraper.WithSpinner("scraping webpage..."))
	if err := sc.Start(); err != nil {
		slog.Warn("scraping", "url", b.URL, "error", err)
	}

	t, _ := sc.Title()
	b.Title = validateAttr(b.Title, t)

	if b.Desc == "" {
		d, _ := sc.Desc()
		b.Desc = validateAttr(b.Desc, d)
	}

	return b
}

// validateAttr normalizes an attribute, falling back when empty.
func validateAttr(s, fallback string) string {
	s = strings.TrimSpace(txt.NormalizeSpace(s))
	if s == "" {
		return strings.TrimSpace(fallback)
	}

	return s
}
