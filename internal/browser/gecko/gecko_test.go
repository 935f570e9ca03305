package gecko

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPlacesDB creates an in-memory places database with two generic
// bookmarks, one browser internal bookmark and one tag folder.
func setupPlacesDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", fmt.Sprintf("file:places_%d?mode=memory", time.Now().UnixNano()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema := `
	CREATE TABLE moz_places (id INTEGER PRIMARY KEY, url TEXT);
	CREATE TABLE moz_bookmarks (
		id INTEGER PRIMARY KEY,
		type INTEGER,
		fk INTEGER,
		parent INTEGER,
		title TEXT
	);`
	_, err = db.Exec(schema)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO moz_places (id, url) VALUES
		(1, 'https://golang.org'),
		(2, 'about:config'),
		(3, 'https://www.sqlite.org')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO moz_bookmarks (id, type, fk, parent, title) VALUES
		(10, 1, 1, 2, 'The Go Programming Language'),
		(11, 1, 2, 2, 'Config'),
		(12, 1, 3, 2, 'SQLite'),
		(20, 2, NULL, 4, 'dev'),
		(21, 1, 1, 20, NULL)`)
	require.NoError(t, err)

	return db
}

func TestQueryBookmarks(t *testing.T) {
	t.Parallel()

	db := setupPlacesDB(t)

	gmarks, err := queryBookmarks(db)
	require.NoError(t, err)
	require.Len(t, gmarks, 2)

	byURL := make(map[string]*geckoBookmark, len(gmarks))
	for _, gb := range gmarks {
		byURL[gb.url] = gb
	}

	golang, ok := byURL["https://golang.org"]
	require.True(t, ok, "expected golang.org to be imported")
	assert.Equal(t, "The Go Programming Language", golang.Title)
	assert.Contains(t, golang.tags, "dev")
	assert.Contains(t, golang.tags, importTag())

	sqlite, ok := byURL["https://www.sqlite.org"]
	require.True(t, ok, "expected sqlite.org to be imported")
	assert.Equal(t, importTag(), sqlite.tags)

	_, found := byURL["about:config"]
	assert.False(t, found, "browser internal urls must be skipped")
}

func TestAllProfiles(t *testing.T) {
	t.Parallel()

	data := `[General]
StartWithLastProfile=1

[Profile0]
Name=default
IsRelative=1
Path=abcd1234.default

[Profile1]
Name=dev
IsRelative=1
Path=xyz987.dev

[Install4F96D1932A9F858E]
Default=abcd1234.default
`
	path := filepath.Join(t.TempDir(), "profiles.ini")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	profiles, err := allProfiles(path)
	require.NoError(t, err)

	want := map[string]string{
		"default": "abcd1234.default",
		"dev":     "xyz987.dev",
	}
	assert.Equal(t, want, profiles)
}

func TestIsNonGenericURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		url      string
		expected bool
	}{
		{"about:blank", true},
		{"apt:install", true},
		{"chrome://extensions", true},
		{"file:///path/to/file", true},
		{"place:bookmarks", true},
		{"vivaldi://settings", true},
		{"moz-extension://abc/popup.html", true},
		{"http://example.com", false},
		{"https://example.com", false},
		{"ftp://example.com", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, isNonGenericURL(tc.url), "url: %q", tc.url)
	}
}

func TestOpenPlacesMissing(t *testing.T) {
	t.Parallel()

	_, err := openPlaces(filepath.Join(t.TempDir(), "places.sqlite"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBrowserIsOpen)
}
