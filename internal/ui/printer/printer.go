// Package printer formats bookmark data for the terminal.
package printer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/mateconpizza/pinb/internal/bookio"
	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/config"
	"github.com/mateconpizza/pinb/internal/db"
	"github.com/mateconpizza/pinb/internal/sys/files"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

// Records prints the bookmarks in the frame format.
func Records(bs []*bookmark.Bookmark) error {
	lastIdx := len(bs) - 1
	for i := range bs {
		fmt.Print(txt.Frame(bs[i]))

		if i != lastIdx {
			fmt.Println()
		}
	}

	return nil
}

// Oneline prints one bookmark per line.
func Oneline(bs []*bookmark.Bookmark) error {
	for i := range bs {
		fmt.Print(txt.Oneline(bs[i]))
	}

	return nil
}

// ByField prints a single field of every bookmark.
func ByField(bs []*bookmark.Bookmark, f string) error {
	for i := range bs {
		v, err := bs[i].Field(f)
		if err != nil {
			return fmt.Errorf("%w", err)
		}

		fmt.Println(v)
	}

	return nil
}

// JSON prints the bookmarks as an indented JSON array.
func JSON(bs []*bookmark.Bookmark) error {
	return bookio.ExportJSON(os.Stdout, bs)
}

// TagsTable prints tag counts as a table, sorted by name.
func TagsTable(counts map[string]int) error {
	rows := make([][]string, 0, len(counts))
	for _, t := range sortedTags(counts) {
		rows = append(rows, []string{t, strconv.Itoa(counts[t])})
	}

	fmt.Print(txt.CreateSimpleTable([]string{"Tag", "Bookmarks"}, rows))

	return nil
}

// TagsJSON prints tag counts as JSON.
func TagsJSON(counts map[string]int) error {
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}

	fmt.Println(string(data))

	return nil
}

// Overview prints the cache summary shown by the bare command: record and
// visibility counts, tag count, last download and cache path.
func Overview(ctx context.Context, c *ui.Console, r *db.SQLite) error {
	bs, err := r.All(ctx)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	var unread, private, untagged int

	for _, b := range bs {
		if b.ToRead {
			unread++
		}

		if !b.Shared {
			private++
		}

		if b.Tags == "" {
			untagged++
		}
	}

	tags, err := r.TagCounts(ctx)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	updated := "never"
	if last, err := r.LastDownloaded(ctx); err == nil && !last.IsZero() {
		updated = txt.RelativeISOTime(last.Format(time.RFC3339))
	}

	name := color.Yellow(r.Name()).Italic().String()
	c.F.Headerln(name).
		Rowln(txt.PaddedLine("bookmarks:", len(bs))).
		Rowln(txt.PaddedLine("unread:", unread)).
		Rowln(txt.PaddedLine("private:", private)).
		Rowln(txt.PaddedLine("untagged:", untagged)).
		Rowln(txt.PaddedLine("tags:", len(tags))).
		Rowln(txt.PaddedLine("updated:", updated)).
		Rowln(txt.PaddedLine("path:", files.CollapseHomeDir(config.App.Path.CacheFile))).
		Flush()

	return nil
}

func sortedTags(counts map[string]int) []string {
	tags := make([]string, 0, len(counts))
	for t := range counts {
		tags = append(tags, t)
	}

	sort.Strings(tags)

	return tags
}
