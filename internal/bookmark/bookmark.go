// Package bookmark contains the bookmark record.
package bookmark

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the timestamp format used by the bookmarking service.
const TimeLayout = "2006-01-02T15:04:05Z"

var (
	ErrDuplicate    = errors.New("bookmark already exists")
	ErrInvalid      = errors.New("bookmark invalid")
	ErrInvalidID    = errors.New("invalid bookmark id")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("no bookmark found")
	ErrNotSelected  = errors.New("no bookmark selected")
	ErrURLEmpty     = errors.New("URL cannot be empty")
	ErrURLScheme    = errors.New("URL scheme must be http or https")
	ErrUnknownField = errors.New("bookmark field unknown")
)

// Bookmark represents a bookmark.
//
// Tags hold the service wire format: a single space separated string.
type Bookmark struct {
	ID        int    `db:"id"         json:"id"`
	URL       string `db:"url"        json:"url"`
	Title     string `db:"title"      json:"title"`
	Desc      string `db:"desc"       json:"desc"`
	Tags      string `db:"tags"       json:"tags"`
	Hash      string `db:"hash"       json:"hash"`
	CreatedAt string `db:"created_at" json:"created_at"`
	Shared    bool   `db:"shared"     json:"shared"`
	ToRead    bool   `db:"to_read"    json:"to_read"`
}

// BookmarkJSON is the export form, with tags as a list.
type BookmarkJSON struct {
	ID        int      `json:"id"`
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	Desc      string   `json:"desc"`
	Tags      []string `json:"tags"`
	Hash      string   `json:"hash"`
	CreatedAt string   `json:"created_at"`
	Shared    bool     `json:"shared"`
	ToRead    bool     `json:"to_read"`
}

// New creates a new bookmark, public by default like the remote service.
func New() *Bookmark {
	return &Bookmark{Shared: true}
}

func (b *Bookmark) JSON() *BookmarkJSON {
	return &BookmarkJSON{
		ID:        b.ID,
		URL:       b.URL,
		Title:     b.Title,
		Desc:      b.Desc,
		Tags:      b.TagList(),
		Hash:      b.Hash,
		CreatedAt: b.CreatedAt,
		Shared:    b.Shared,
		ToRead:    b.ToRead,
	}
}

func (b *Bookmark) Bytes() []byte {
	return toBytes(b)
}

// TagList returns the tags as a list.
func (b *Bookmark) TagList() []string {
	return strings.Fields(b.Tags)
}

// Field returns the value of a field.
func (b *Bookmark) Field(f string) (string, error) {
	var s string

	switch f {
	case "id", "i", "1":
		s = strconv.Itoa(b.ID)
	case "url", "u", "2":
		s = b.URL
	case "title", "t", "3":
		s = b.Title
	case "tags", "T", "4":
		s = b.Tags
	case "desc", "d", "5":
		s = b.Desc
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
	}

	return s, nil
}

// Equals reports whether b and o describe the same bookmark, ignoring the
// local ID.
func (b *Bookmark) Equals(o *Bookmark) bool {
	if b == nil || o == nil {
		return b == o
	}

	return b.URL == o.URL &&
		b.Title == o.Title &&
		b.Desc == o.Desc &&
		b.Tags == o.Tags &&
		b.Shared == o.Shared &&
		b.ToRead == o.ToRead
}

// HashURL returns the md5 hex digest of the bookmark URL, the identity the
// remote service uses for a post.
func (b *Bookmark) HashURL() string {
	return HashURL(b.URL)
}

// EnsureHash fills in the Hash field when the server response omitted it.
func (b *Bookmark) EnsureHash() {
	if b.Hash == "" {
		b.Hash = b.HashURL()
	}
}

// Timestamp parses CreatedAt, returning the zero time on failure.
func (b *Bookmark) Timestamp() time.Time {
	t, err := time.Parse(TimeLayout, b.CreatedAt)
	if err != nil {
		return time.Time{}
	}

	return t
}

// Domain returns the lowercased host of the bookmark URL, without the
// leading "www.".
func (b *Bookmark) Domain() (string, error) {
	u, err := url.Parse(b.URL)
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}

	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www."), nil
}

func (b *Bookmark) Buffer() []byte {
	return fmt.Appendf(nil, `# URL: (required)
%s
# Title: (leave an empty line for web fetch)
%s
# Tags: (space separated)
%s
# Description:
%s
# Private: (yes/no)
%s
# Read Later: (yes/no)
%s

# end ------------------------------------------------------------------`,
		b.URL, b.Title, ParseTags(b.Tags), b.Desc,
		yesno(!b.Shared), yesno(b.ToRead))
}

// HashURL returns the md5 hex digest of a URL.
func HashURL(rawURL string) string {
	sum := md5.Sum([]byte(rawURL))
	return hex.EncodeToString(sum[:])
}

// ParseTags normalizes a space or comma separated tag string.
//
// Duplicates are dropped case insensitively keeping the first occurrence,
// order is preserved.
func ParseTags(tags string) string {
	split := strings.FieldsFunc(tags, func(r rune) bool {
		return r == ',' || r == ' '
	})

	return strings.Join(uniqueTags(split), " ")
}

// Validate checks the bookmark is storable.
func Validate(b *Bookmark) error {
	if b.URL == "" {
		return ErrURLEmpty
	}

	u, err := url.Parse(b.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q", ErrURLScheme, b.URL)
	}

	return nil
}

func NewFromJSON(j *BookmarkJSON) *Bookmark {
	b := New()
	b.ID = j.ID
	b.URL = j.URL
	b.Title = j.Title
	b.Desc = j.Desc
	b.Tags = ParseTags(strings.Join(j.Tags, " "))
	b.Hash = j.Hash
	b.CreatedAt = j.CreatedAt
	b.Shared = j.Shared
	b.ToRead = j.ToRead
	b.EnsureHash()

	return b
}

func uniqueTags(t []string) []string {
	var (
		tags []string
		seen = make(map[string]bool)
	)

	for _, tag := range t {
		if tag == "" {
			continue
		}

		key := strings.ToLower(tag)
		if !seen[key] {
			seen[key] = true

			tags = append(tags, tag)
		}
	}

	return tags
}

func toBytes(b *Bookmark) []byte {
	bj, err := json.MarshalIndent(b.JSON(), "", "  ")
	if err != nil {
		return nil
	}

	return bj
}

func yesno(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
