package txt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortenString(t *testing.T) {
	t.Parallel()

	test := []struct {
		input    string
		expected string
		length   int
	}{
		{
			input:    "This is a long string",
			length:   10,
			expected: "This is...",
		},
		{
			input:    "Neque porro quisquam est qui dolorem ipsum quia dolor sit amet, consectetur, adipisci velit...",
			length:   20,
			expected: "Neque porro quisq...",
		},
	}

	for _, tt := range test {
		r := Shorten(tt.input, tt.length)
		assert.Len(t, r, tt.length)
		assert.Equal(t, tt.expected, r)
	}
}

//nolint:funlen //test
func TestSplitIntoChunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		strLen   int
		expected []string
	}{
		{
			name:     "Single word shorter than strLen",
			input:    "hello",
			strLen:   10,
			expected: []string{"hello"},
		},
		{
			name:     "Multiple words fitting in one chunk",
			input:    "hello world",
			strLen:   11,
			expected: []string{"hello world"},
		},
		{
			name:     "Multiple words split into chunks",
			input:    "hello world this is a test",
			strLen:   10,
			expected: []string{"hello", "world this", "is a test"},
		},
		{
			name:     "Words split exactly at strLen",
			input:    "hello world",
			strLen:   5,
			expected: []string{"hello", "world"},
		},
		{
			name:     "Words split with spaces",
			input:    "hello world this is a test",
			strLen:   15,
			expected: []string{"hello world", "this is a test"},
		},
		{
			name:     "Multiple words with varying lengths",
			input:    "a bb ccc dddd eeeee",
			strLen:   10,
			expected: []string{"a bb ccc", "dddd eeeee"},
		},
		{
			name:     "Long sentence with multiple chunks",
			input:    "The quick brown fox jumps over the lazy dog",
			strLen:   10,
			expected: []string{"The quick", "brown fox", "jumps over", "the lazy", "dog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := SplitIntoChunks(tt.input, tt.strLen)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"  hello   world  ", "hello world"},
		{"one\ttwo\nthree", "one two three"},
		{"", ""},
		{"single", "single"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeSpace(tt.input))
	}
}

func TestTagsWithPound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tags sorted and prefixed",
			input:    "golang cli bookmarks",
			expected: "#bookmarks #cli #golang ",
		},
		{
			name:     "single tag",
			input:    "reading",
			expected: "#reading ",
		},
		{
			name:     "empty tags",
			input:    "",
			expected: "",
		},
		{
			name:     "extra whitespace ignored",
			input:    "  b   a ",
			expected: "#a #b ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, TagsWithPound(tt.input))
		})
	}
}

func TestTagsWithUnicode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "go·cli·tools", TagsWithUnicode("go cli tools"))
	assert.Equal(t, "solo", TagsWithUnicode("solo"))
	assert.Empty(t, TagsWithUnicode(""))
}

func TestURLBreadCrumbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "https://example.org/title/some-title",
			expected: "example.org › title › some-title",
		},
		{
			input:    "https://example.org",
			expected: "https://example.org",
		},
		{
			input:    "https://example.org/",
			expected: "example.org",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, URLBreadCrumbs(tt.input))
	}
}

func TestRelativeISOTime(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.Equal(t, "today", RelativeISOTime(now.Format(time.RFC3339)))
	assert.Equal(t, "yesterday", RelativeISOTime(now.AddDate(0, 0, -1).Format(time.RFC3339)))
	assert.Equal(t, "invalid timestamp", RelativeISOTime("not-a-date"))
}

func TestCenteredLine(t *testing.T) {
	t.Parallel()

	got := CenteredLine(20, "label")
	assert.Len(t, got, 20)
	assert.Contains(t, got, " label ")

	// too narrow, label wins
	assert.Equal(t, "a very long label", CenteredLine(5, "a very long label"))
}
