// Package bookio reads and writes bookmark interchange files, the Netscape
// bookmark format every browser and the service itself export, and plain
// JSON.
package bookio

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

var ErrNoBookmarksFound = errors.New("no bookmarks found in file")

const netscapeHeader = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Pinboard Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
`

// ParseNetscape extracts bookmarks from a Netscape bookmark file. The format
// leaves <DT> and <DD> unclosed, the HTML5 parser normalizes that into
// siblings.
func ParseNetscape(r io.Reader) ([]*bookmark.Bookmark, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing netscape file: %w", err)
	}

	var bs []*bookmark.Bookmark

	doc.Find("dt > a").Each(func(_ int, a *goquery.Selection) {
		u, ok := a.Attr("href")
		if !ok || u == "" {
			return
		}

		b := bookmark.New()
		b.URL = u
		b.Title = strings.TrimSpace(a.Text())
		b.Tags = bookmark.ParseTags(a.AttrOr("tags", ""))
		b.Shared = a.AttrOr("private", "0") != "1"
		b.ToRead = a.AttrOr("toread", "0") == "1"

		if b.Title == "" {
			b.Title = u
		}

		if ts := a.AttrOr("add_date", ""); ts != "" {
			if sec, err := strconv.ParseInt(ts, 10, 64); err == nil {
				b.CreatedAt = time.Unix(sec, 0).UTC().Format(bookmark.TimeLayout)
			}
		}

		if dd := a.Parent().NextFiltered("dd"); dd.Length() > 0 {
			b.Desc = strings.TrimSpace(dd.Text())
		}

		b.EnsureHash()
		bs = append(bs, b)
	})

	if len(bs) == 0 {
		return nil, ErrNoBookmarksFound
	}

	return bs, nil
}

// ExportNetscape writes bookmarks in the Netscape bookmark format, with the
// private/toread/tags attributes the service round-trips.
func ExportNetscape(w io.Writer, bs []*bookmark.Bookmark) error {
	var sb strings.Builder

	sb.WriteString(netscapeHeader)

	for _, b := range bs {
		tags := strings.ReplaceAll(b.Tags, " ", ",")
		fmt.Fprintf(&sb, "<DT><A HREF=\"%s\" ADD_DATE=\"%d\" PRIVATE=\"%s\" TOREAD=\"%s\" TAGS=\"%s\">%s</A>\n",
			html.EscapeString(b.URL),
			addDate(b),
			boolAttr(!b.Shared),
			boolAttr(b.ToRead),
			html.EscapeString(tags),
			html.EscapeString(b.Title),
		)

		if b.Desc != "" {
			fmt.Fprintf(&sb, "<DD>%s\n", html.EscapeString(b.Desc))
		}
	}

	sb.WriteString("</DL></p>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing netscape file: %w", err)
	}

	return nil
}

func boolAttr(v bool) string {
	if v {
		return "1"
	}

	return "0"
}

// addDate returns the bookmark's creation time as unix seconds, now when the
// record carries no valid timestamp.
func addDate(b *bookmark.Bookmark) int64 {
	if t := b.Timestamp(); !t.IsZero() {
		return t.Unix()
	}

	return time.Now().Unix()
}
