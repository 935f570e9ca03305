package blink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBookmarksFile = `{
  "checksum": "f88e2e2bbbcb62ab29a7f9b5be6fdda8",
  "roots": {
    "bookmark_bar": {
      "children": [
        {
          "date_added": "13379257043306561",
          "guid": "8cb3b956-e4f1-4df5-bae9-b30275a29cab",
          "name": "The Go Programming Language",
          "type": "url",
          "url": "https://go.dev"
        },
        {
          "children": [
            {
              "guid": "1d5bff8a-426e-4982-b7d2-8110fe62e9ed",
              "name": "Pinboard",
              "type": "url",
              "url": "https://pinboard.in"
            }
          ],
          "name": "reading",
          "type": "folder"
        }
      ],
      "name": "Bookmarks bar",
      "type": "folder"
    },
    "other": {
      "children": [],
      "name": "Other bookmarks",
      "type": "folder"
    },
    "sync_transaction_version": "1"
  },
  "version": 1
}`

func TestParseBookmarks(t *testing.T) {
	t.Parallel()

	marks, err := parseBookmarks([]byte(testBookmarksFile))
	require.NoError(t, err)
	require.Len(t, marks, 2)

	byURL := make(map[string]*blinkBookmark, len(marks))
	for _, m := range marks {
		byURL[m.url] = m
	}

	godev, ok := byURL["https://go.dev"]
	require.True(t, ok, "expected go.dev to be found")
	assert.Equal(t, "The Go Programming Language", godev.title)
	assert.Equal(t, "Bookmarks bar", godev.folder)

	pinboard, ok := byURL["https://pinboard.in"]
	require.True(t, ok, "expected pinboard.in to be found")
	assert.Equal(t, "reading", pinboard.folder, "nested bookmarks keep their own folder")
}

func TestParseBookmarksInvalid(t *testing.T) {
	t.Parallel()

	_, err := parseBookmarks([]byte("not json"))
	require.Error(t, err)
}

func TestParseProfiles(t *testing.T) {
	t.Parallel()

	raw := `{
	  "profile": {
	    "info_cache": {
	      "Default": {"name": "Personal"},
	      "Profile 1": {"name": ""}
	    }
	  }
	}`

	profiles, err := parseProfiles([]byte(raw))
	require.NoError(t, err)

	want := map[string]string{
		"Default":   "Personal",
		"Profile 1": "Profile 1",
	}
	assert.Equal(t, want, profiles)
}

func TestLoadPaths(t *testing.T) {
	t.Parallel()

	b := New("Chromium", nil)
	require.NoError(t, b.LoadPaths())

	unsupported := New("Netscape Navigator", nil)
	require.ErrorIs(t, unsupported.LoadPaths(), ErrBrowserUnsupported)
}

func TestShortKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "g", New("Google Chrome", nil).Short())
	assert.Equal(t, "v", New("Vivaldi", nil).Short())
}
