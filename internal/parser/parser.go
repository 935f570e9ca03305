package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

var ErrLineNotFound = errors.New("line not found")

// Buffer field markers, they delimit the editable blocks.
const (
	urlMarker    = "# URL:"
	titleMarker  = "# Title:"
	tagsMarker   = "# Tags:"
	descMarker   = "# Description:"
	sharedMarker = "# Private:"
	toReadMarker = "# Read Later:"
	endMarker    = "# end"
)

// BookmarkContent parses the provided buffer lines into a bookmark.
func BookmarkContent(lines []string) *bookmark.Bookmark {
	b := bookmark.New()
	b.URL = cleanLines(txt.ExtractBlock(lines, urlMarker, titleMarker))
	b.Title = cleanLines(txt.ExtractBlock(lines, titleMarker, tagsMarker))
	b.Tags = bookmark.ParseTags(cleanLines(txt.ExtractBlock(lines, tagsMarker, descMarker)))
	b.Desc = cleanLines(txt.ExtractBlock(lines, descMarker, sharedMarker))
	b.Shared = !parseYesNo(txt.ExtractBlock(lines, sharedMarker, toReadMarker))
	b.ToRead = parseYesNo(txt.ExtractBlock(lines, toReadMarker, endMarker))

	return b
}

// ValidateBookmarkFormat checks the buffer still holds a URL.
func ValidateBookmarkFormat(lines []string) error {
	u := txt.ExtractBlock(lines, urlMarker, titleMarker)
	if strings.TrimSpace(u) == "" {
		return fmt.Errorf("%w: URL", ErrLineNotFound)
	}

	return nil
}

// cleanLines sanitizes a block by trimming lines and dropping empty ones.
func cleanLines(s string) string {
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))

	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}

		result = append(result, trimmed)
	}

	return strings.Join(result, "\n")
}

// parseYesNo reads an affirmative answer from a buffer block.
func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return true
	default:
		return false
	}
}
