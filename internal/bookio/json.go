package bookio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

// ExportJSON writes bookmarks as an indented JSON array, tags as lists.
func ExportJSON(w io.Writer, bs []*bookmark.Bookmark) error {
	items := make([]*bookmark.BookmarkJSON, 0, len(bs))
	for _, b := range bs {
		items = append(items, b.JSON())
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing bookmarks: %w", err)
	}

	return nil
}
