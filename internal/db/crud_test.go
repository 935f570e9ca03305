//nolint:paralleltest //test
package db

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertOne(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	record := testSingleBookmark()
	err := r.withTx(t.Context(), func(tx *sqlx.Tx) error {
		return insertInto(tx, record)
	})
	assert.NoError(t, err, "failed to insert record")
	assert.Equal(t, 1, record.ID, "insert should backfill the local ID")
	assert.NotEmpty(t, record.Hash, "insert should backfill the hash")
}

func TestInsertDuplicate(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	b := testSingleBookmark()
	require.NoError(t, r.InsertOne(t.Context(), b))

	err := r.InsertOne(t.Context(), testSingleBookmark())
	assert.ErrorIs(t, err, ErrRecordDuplicate, "expected duplicated record error")
}

func TestInsertMany(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	require.NoError(t, r.InsertMany(t.Context(), testSliceBookmarks(10)))
	assert.Equal(t, 10, r.Count(t.Context()))
}

func TestByID(t *testing.T) {
	r := testPopulatedDB(t, 5)
	defer teardownthewall(r.DB)

	b, err := r.ByID(t.Context(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, b.ID)

	_, err = r.ByID(t.Context(), 99)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestByIDList(t *testing.T) {
	r := testPopulatedDB(t, 5)
	defer teardownthewall(r.DB)

	bs, err := r.ByIDList(t.Context(), []int{1, 3, 5})
	require.NoError(t, err)
	assert.Len(t, bs, 3)

	_, err = r.ByIDList(t.Context(), nil)
	assert.ErrorIs(t, err, ErrRecordIDNotProvided)
}

func TestByURL(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	b := testSingleBookmark()
	require.NoError(t, r.InsertOne(t.Context(), b))

	got, err := r.ByURL(t.Context(), b.URL)
	require.NoError(t, err)
	assert.Equal(t, b.Title, got.Title)

	_, err = r.ByURL(t.Context(), "https://nope.example.com")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestHas(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	b := testSingleBookmark()
	require.NoError(t, r.InsertOne(t.Context(), b))

	assert.True(t, r.Has(t.Context(), b.URL))
	assert.False(t, r.Has(t.Context(), "https://nope.example.com"))
}

func TestUpsert(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	b := testSingleBookmark()
	require.NoError(t, r.Upsert(t.Context(), b))
	assert.Equal(t, 1, r.Count(t.Context()))

	// same URL replaces the cached row
	b2 := testSingleBookmark()
	b2.Title = "Updated"
	b2.ToRead = true
	require.NoError(t, r.Upsert(t.Context(), b2))
	assert.Equal(t, 1, r.Count(t.Context()))

	got, err := r.ByURL(t.Context(), b.URL)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Title)
	assert.True(t, got.ToRead)
}

func TestDeleteByURL(t *testing.T) {
	r := setupTestDB(t)
	defer teardownthewall(r.DB)

	b := testSingleBookmark()
	require.NoError(t, r.InsertOne(t.Context(), b))
	require.NoError(t, r.DeleteByURL(t.Context(), b.URL))

	_, err := r.ByURL(t.Context(), b.URL)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = r.DeleteByURL(t.Context(), b.URL)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestAllNewestFirst(t *testing.T) {
	r := testPopulatedDB(t, 3)
	defer teardownthewall(r.DB)

	bs, err := r.All(t.Context())
	require.NoError(t, err)
	require.Len(t, bs, 3)
	assert.Equal(t, "Title 2", bs[0].Title, "newest bookmark comes first")

	empty := setupTestDB(t)
	defer teardownthewall(empty.DB)

	_, err = empty.All(t.Context())
	assert.ErrorIs(t, err, ErrDBEmpty)
}
