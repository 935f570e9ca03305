// Package filter narrows bookmark collections with local, in-memory
// predicates.
package filter

import (
	"sort"
	"strings"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

// Options collects every narrowing the list commands expose.
type Options struct {
	Query    string   // Case insensitive substring over title+description
	Tags     []string // All tags must be present
	Unread   bool     // Only bookmarks marked to read
	Read     bool     // Only bookmarks already read
	Public   bool     // Only shared bookmarks
	Private  bool     // Only unshared bookmarks
	Tagged   bool     // Only bookmarks with at least one tag
	Untagged bool     // Only bookmarks without tags
	Head     int      // Keep the first n records
	Tail     int      // Keep the last n records
}

// Counts summarizes a collection the way the filter pane groups it.
type Counts struct {
	All      int `json:"all"`
	Unread   int `json:"unread"`
	Read     int `json:"read"`
	Private  int `json:"private"`
	Public   int `json:"public"`
	Tagged   int `json:"tagged"`
	Untagged int `json:"untagged"`
}

// TagCount pairs a tag with the number of bookmarks carrying it.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Apply runs every active narrowing in o over bs, returning a new slice.
func Apply(bs []*bookmark.Bookmark, o *Options) []*bookmark.Bookmark {
	if o == nil {
		return bs
	}

	out := make([]*bookmark.Bookmark, 0, len(bs))
	for _, b := range bs {
		if o.Unread && !b.ToRead {
			continue
		}
		if o.Read && b.ToRead {
			continue
		}
		if o.Public && !b.Shared {
			continue
		}
		if o.Private && b.Shared {
			continue
		}
		if o.Tagged && b.Tags == "" {
			continue
		}
		if o.Untagged && b.Tags != "" {
			continue
		}
		if len(o.Tags) > 0 && !HasTags(b, o.Tags...) {
			continue
		}
		if o.Query != "" && !HasText(b, o.Query) {
			continue
		}

		out = append(out, b)
	}

	return limit(out, o.Head, o.Tail)
}

// HasTags reports whether b carries every given tag, case insensitively.
func HasTags(b *bookmark.Bookmark, tags ...string) bool {
	have := make(map[string]bool, len(tags))
	for _, t := range b.TagList() {
		have[strings.ToLower(t)] = true
	}

	for _, t := range tags {
		if !have[strings.ToLower(t)] {
			return false
		}
	}

	return true
}

// HasText reports whether the title or description contain s, case
// insensitively.
func HasText(b *bookmark.Bookmark, s string) bool {
	return strings.Contains(strings.ToLower(b.Title+b.Desc), strings.ToLower(s))
}

// Count tallies the collection into filter pane groups.
func Count(bs []*bookmark.Bookmark) *Counts {
	c := &Counts{All: len(bs)}
	for _, b := range bs {
		if b.ToRead {
			c.Unread++
		} else {
			c.Read++
		}

		if b.Shared {
			c.Public++
		} else {
			c.Private++
		}

		if b.Tags == "" {
			c.Untagged++
		} else {
			c.Tagged++
		}
	}

	return c
}

// Tags returns every known tag with its usage count, sorted case
// insensitively by name.
func Tags(bs []*bookmark.Bookmark) []TagCount {
	counter := make(map[string]int)
	for _, b := range bs {
		for _, t := range b.TagList() {
			counter[t]++
		}
	}

	tags := make([]TagCount, 0, len(counter))
	for name, n := range counter {
		tags = append(tags, TagCount{Name: name, Count: n})
	}

	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i].Name) < strings.ToLower(tags[j].Name)
	})

	return tags
}

// limit keeps the first head and/or last tail records.
func limit(bs []*bookmark.Bookmark, head, tail int) []*bookmark.Bookmark {
	if head > 0 && head < len(bs) {
		bs = bs[:head]
	}

	if tail > 0 && tail < len(bs) {
		bs = bs[len(bs)-tail:]
	}

	return bs
}
