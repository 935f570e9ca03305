//nolint:paralleltest //test
package db

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

// setupTestDB sets up an in-memory test database.
func setupTestDB(t *testing.T) *SQLite {
	t.Helper()

	db, err := openDatabase(fmt.Sprintf("file:testdb_%d?mode=memory", time.Now().UnixNano()))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	r := &SQLite{DB: db, Cfg: &Cfg{Name: "testdb"}}
	if err := r.Init(t.Context()); err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}

	return r
}

// teardownthewall closes the database connection.
func teardownthewall(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		slog.Error("closing database", "error", err)
	}
}

func testSingleBookmark() *bookmark.Bookmark {
	return &bookmark.Bookmark{
		URL:       "https://www.example.com",
		Title:     "Title",
		Desc:      "Description",
		Tags:      "test tag1 go",
		CreatedAt: "2023-01-01T12:00:00Z",
		Shared:    true,
	}
}

func testSliceBookmarks(n int) []*bookmark.Bookmark {
	bs := make([]*bookmark.Bookmark, 0, n)
	for i := range n {
		b := testSingleBookmark()
		b.Title = fmt.Sprintf("Title %d", i)
		b.URL = fmt.Sprintf("https://www.example%d.com", i)
		b.Tags = fmt.Sprintf("test tag%d go", i)
		b.Desc = fmt.Sprintf("Description %d", i)
		b.CreatedAt = fmt.Sprintf("2023-01-01T12:00:%02dZ", i)
		bs = append(bs, b)
	}

	return bs
}

func testPopulatedDB(t *testing.T, n int) *SQLite {
	t.Helper()

	r := setupTestDB(t)
	if err := r.InsertMany(t.Context(), testSliceBookmarks(n)); err != nil {
		t.Fatalf("failed to insert bookmarks: %v", err)
	}

	return r
}

func TestInit(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	for _, s := range tablesAndSchema() {
		exists, err := r.tableExists(s.name)
		assert.NoError(t, err)
		assert.True(t, exists, "table %q does not exist", s.name)
	}
}

func TestOpenCreatesMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cache", "bookmarks.db")

	r, err := Open(p)
	require.NoError(t, err)
	defer r.Close()

	assert.True(t, r.Cfg.Exists())
	assert.Equal(t, "bookmarks.db", r.Name())

	// reopening an existing cache keeps its records
	require.NoError(t, r.InsertOne(t.Context(), testSingleBookmark()))
	r.Close()

	r2, err := Open(p)
	require.NoError(t, err)
	defer r2.Close()

	assert.Equal(t, 1, r2.Count(t.Context()))
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
