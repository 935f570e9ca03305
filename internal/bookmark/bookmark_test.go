package bookmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSingleBookmark() *Bookmark {
	return &Bookmark{
		URL:       "https://www.example.com",
		Title:     "Title",
		Desc:      "Description",
		Tags:      "test tag1 go",
		CreatedAt: "2023-01-01T12:00:00Z",
		Shared:    true,
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	b := testSingleBookmark()
	require.NoError(t, Validate(b))

	b = testSingleBookmark()
	b.URL = ""
	assert.ErrorIs(t, Validate(b), ErrURLEmpty)

	b = testSingleBookmark()
	b.URL = "ftp://example.com/file"
	assert.ErrorIs(t, Validate(b), ErrURLScheme)

	b = testSingleBookmark()
	b.Tags = ""
	assert.NoError(t, Validate(b), "untagged bookmarks are valid")
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"space separated", "go cli tools", "go cli tools"},
		{"comma separated", "go,cli,tools", "go cli tools"},
		{"mixed separators", "go, cli tools", "go cli tools"},
		{"duplicates keep first", "go Go cli go", "go cli"},
		{"extra whitespace", "  go   cli  ", "go cli"},
		{"empty", "", ""},
		{"only separators", " , , ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseTags(tt.input))
		})
	}
}

func TestHashURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5564fd6a95028f02e52b38bb1743c816", HashURL("https://example.org"))

	b := testSingleBookmark()
	b.EnsureHash()
	assert.Equal(t, "e149be135a8b6803951f75776d589aaa", b.Hash)

	// an already present hash is kept
	b.URL = "https://other.example.com"
	b.EnsureHash()
	assert.Equal(t, "e149be135a8b6803951f75776d589aaa", b.Hash)
}

func TestEquals(t *testing.T) {
	t.Parallel()

	a := testSingleBookmark()
	b := testSingleBookmark()
	b.ID = 42
	assert.True(t, a.Equals(b), "local ID must not affect equality")

	b.ToRead = true
	assert.False(t, a.Equals(b))

	var nilB *Bookmark
	assert.False(t, a.Equals(nilB))
}

func TestTagList(t *testing.T) {
	t.Parallel()

	b := testSingleBookmark()
	assert.Equal(t, []string{"test", "tag1", "go"}, b.TagList())

	b.Tags = ""
	assert.Empty(t, b.TagList())
}

func TestDomain(t *testing.T) {
	t.Parallel()

	b := testSingleBookmark()
	d, err := b.Domain()
	require.NoError(t, err)
	assert.Equal(t, "example.com", d)
}

func TestNewFromJSON(t *testing.T) {
	t.Parallel()

	j := &BookmarkJSON{
		URL:   "https://example.org",
		Title: "Example",
		Tags:  []string{"go", "web"},
	}

	b := NewFromJSON(j)
	assert.Equal(t, "go web", b.Tags)
	assert.Equal(t, "5564fd6a95028f02e52b38bb1743c816", b.Hash)
	assert.True(t, b.Shared)
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	b := testSingleBookmark()
	b.ToRead = true

	buf := string(b.Buffer())
	assert.Contains(t, buf, "# URL:")
	assert.Contains(t, buf, b.URL)
	assert.Contains(t, buf, "# Tags: (space separated)")
	assert.Contains(t, buf, "# Read Later: (yes/no)\nyes")
	assert.Contains(t, buf, "# Private: (yes/no)\nno")
}
