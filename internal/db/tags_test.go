package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCounts(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	bs := testSliceBookmarks(3) // tags: "test tagN go"
	untagged := testSingleBookmark()
	untagged.URL = "https://untagged.example.com"
	untagged.Tags = ""
	bs = append(bs, untagged)

	require.NoError(t, r.InsertMany(t.Context(), bs))

	counts, err := r.TagCounts(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 3, counts["test"])
	assert.Equal(t, 3, counts["go"])
	assert.Equal(t, 1, counts["tag0"])
	assert.NotContains(t, counts, "")
}

func TestTagCountsEmpty(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	counts, err := r.TagCounts(t.Context())
	require.NoError(t, err)
	assert.Empty(t, counts)
}
