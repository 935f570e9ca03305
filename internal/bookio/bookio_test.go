package bookio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

const testNetscapeFile = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Pinboard Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
<DT><A HREF="https://go.dev" ADD_DATE="1704067200" PRIVATE="0" TOREAD="0" TAGS="go,programming">The Go Programming Language</A>
<DD>Build simple, secure, scalable systems.
<DT><A HREF="https://pinboard.in" ADD_DATE="1704067260" PRIVATE="1" TOREAD="1" TAGS="bookmarks">Pinboard</A>
<DT><A HREF="https://example.com" ADD_DATE="1704067320" PRIVATE="0" TOREAD="0" TAGS="">example.com</A>
</DL></p>
`

func TestParseNetscape(t *testing.T) {
	t.Parallel()

	bs, err := ParseNetscape(strings.NewReader(testNetscapeFile))
	require.NoError(t, err)
	require.Len(t, bs, 3)

	godev := bs[0]
	assert.Equal(t, "https://go.dev", godev.URL)
	assert.Equal(t, "The Go Programming Language", godev.Title)
	assert.Equal(t, "Build simple, secure, scalable systems.", godev.Desc)
	assert.Equal(t, "go programming", godev.Tags)
	assert.True(t, godev.Shared)
	assert.False(t, godev.ToRead)
	assert.Equal(t, "2024-01-01T00:00:00Z", godev.CreatedAt)
	assert.NotEmpty(t, godev.Hash)

	pb := bs[1]
	assert.Equal(t, "Pinboard", pb.Title)
	assert.Empty(t, pb.Desc, "entry without <DD> has no description")
	assert.False(t, pb.Shared)
	assert.True(t, pb.ToRead)

	assert.Empty(t, bs[2].Tags)
}

func TestParseNetscapeEmpty(t *testing.T) {
	t.Parallel()

	_, err := ParseNetscape(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	require.ErrorIs(t, err, ErrNoBookmarksFound)
}

func TestNetscapeRoundTrip(t *testing.T) {
	t.Parallel()

	orig := []*bookmark.Bookmark{
		{
			URL:       "https://go.dev/doc?a=1&b=2",
			Title:     "Docs <& more>",
			Desc:      "line with \"quotes\" & ampersands",
			Tags:      "go docs",
			CreatedAt: "2024-06-01T10:00:00Z",
			Shared:    true,
			ToRead:    false,
		},
		{
			URL:       "https://private.example.com",
			Title:     "Private",
			Tags:      "secret",
			CreatedAt: "2024-06-02T10:00:00Z",
			Shared:    false,
			ToRead:    true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportNetscape(&buf, orig))

	got, err := ParseNetscape(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(orig))

	for i := range orig {
		assert.True(t, orig[i].Equals(got[i]), "bookmark %d changed in round trip:\nwant %+v\ngot  %+v", i, orig[i], got[i])
		assert.Equal(t, orig[i].CreatedAt, got[i].CreatedAt)
	}
}

func TestExportJSON(t *testing.T) {
	t.Parallel()

	bs := []*bookmark.Bookmark{
		{
			ID:        1,
			URL:       "https://go.dev",
			Title:     "Go",
			Tags:      "go programming",
			CreatedAt: "2024-01-01T00:00:00Z",
			Shared:    true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, bs))

	var items []*bookmark.BookmarkJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "https://go.dev", items[0].URL)
	assert.Equal(t, []string{"go", "programming"}, items[0].Tags)
	assert.True(t, items[0].Shared)
}
