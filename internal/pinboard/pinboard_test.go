package pinboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

func TestLastUpdate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/update", r.URL.Path)
		assert.Equal(t, "s3cret", r.URL.Query().Get("auth_token"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Contains(t, r.Header.Get("User-Agent"), "pinb")

		_, _ = w.Write([]byte(`{"update_time":"2023-06-01T10:00:00Z"}`))
	}))
	defer srv.Close()

	c := New("s3cret", WithBaseURL(srv.URL))

	got, err := c.LastUpdate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC), got)
}

func TestAllDecodesPosts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/all", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"href":"https://go.dev","description":"Go","extended":"The language",
			 "hash":"abc","time":"2023-01-01T00:00:00Z","shared":"yes","toread":"no","tags":"go lang"},
			{"href":"https://example.org","description":"Example","extended":"",
			 "hash":"","time":"2023-02-01T00:00:00Z","shared":"no","toread":"yes","tags":""}
		]`))
	}))
	defer srv.Close()

	c := New("tok", WithBaseURL(srv.URL))

	bs, err := c.All(context.Background())
	require.NoError(t, err)
	require.Len(t, bs, 2)

	assert.Equal(t, "Go", bs[0].Title)
	assert.Equal(t, "The language", bs[0].Desc)
	assert.Equal(t, "go lang", bs[0].Tags)
	assert.True(t, bs[0].Shared)
	assert.False(t, bs[0].ToRead)
	assert.Equal(t, "abc", bs[0].Hash)

	assert.False(t, bs[1].Shared)
	assert.True(t, bs[1].ToRead)
	assert.NotEmpty(t, bs[1].Hash, "missing hash is derived from the URL")
}

func TestAllRateLimitServesCache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[{"href":"https://go.dev","description":"Go","extended":"",
			"hash":"abc","time":"2023-01-01T00:00:00Z","shared":"yes","toread":"no","tags":""}]`))
	}))
	defer srv.Close()

	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New("tok", WithBaseURL(srv.URL), WithClock(func() time.Time { return now }))

	ctx := context.Background()

	_, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	// a second ask within the rate limit never reaches the server
	now = now.Add(time.Minute)
	bs, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
	require.Len(t, bs, 1)
	assert.Equal(t, "https://go.dev", bs[0].URL)
}

func TestAllSkipsDownloadWhenServerUnchanged(t *testing.T) {
	t.Parallel()

	var allHits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/posts/update":
			_, _ = w.Write([]byte(`{"update_time":"2023-06-01T00:00:00Z"}`))
		case "/posts/all":
			allHits.Add(1)
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New("tok", WithBaseURL(srv.URL), WithClock(func() time.Time { return now }))

	ctx := context.Background()

	_, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), allHits.Load())

	// past the rate limit, but the server has nothing newer
	now = now.Add(10 * time.Minute)
	_, err = c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), allHits.Load())
}

func TestAddSendsReplaceParams(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/add", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "https://go.dev", q.Get("url"))
		assert.Equal(t, "Go", q.Get("description"))
		assert.Equal(t, "The language", q.Get("extended"))
		assert.Equal(t, "go lang", q.Get("tags"))
		assert.Equal(t, "yes", q.Get("replace"))
		assert.Equal(t, "no", q.Get("shared"))
		assert.Equal(t, "yes", q.Get("toread"))
		assert.NotEmpty(t, q.Get("dt"))

		_, _ = w.Write([]byte(`{"result_code":"done"}`))
	}))
	defer srv.Close()

	c := New("tok", WithBaseURL(srv.URL))

	b := testBookmark()
	require.NoError(t, c.Add(context.Background(), b))
}

func TestAddServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"something went wrong"}`))
	}))
	defer srv.Close()

	c := New("tok", WithBaseURL(srv.URL))

	err := c.Add(context.Background(), testBookmark())
	assert.ErrorIs(t, err, ErrAPI)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/delete", r.URL.Path)
		assert.Equal(t, "https://go.dev", r.URL.Query().Get("url"))

		_, _ = w.Write([]byte(`{"result_code":"item not found"}`))
	}))
	defer srv.Close()

	c := New("tok", WithBaseURL(srv.URL))

	// a delete for an unknown URL is not an error
	assert.NoError(t, c.Delete(context.Background(), "https://go.dev"))
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/suggest", r.URL.Path)
		_, _ = w.Write([]byte(`[{"popular":["go","golang"]},{"recommended":["programming"]}]`))
	}))
	defer srv.Close()

	c := New("tok", WithBaseURL(srv.URL))

	s, err := c.Suggest(context.Background(), "https://go.dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "golang"}, s.Popular)
	assert.Equal(t, []string{"programming"}, s.Recommended)
}

func TestUnauthorized(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New("bad-token", WithBaseURL(srv.URL))

	_, err := c.LastUpdate(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestEmptyToken(t *testing.T) {
	t.Parallel()

	c := New("")
	_, err := c.LastUpdate(context.Background())
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	got, err := ParseTime("2023-06-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC), got)

	// fractional seconds and explicit offsets both appear in the wild
	got, err = ParseTime("2023-06-01T10:00:00.123456+00:00")
	require.NoError(t, err)
	assert.Equal(t, 2023, got.Year())

	_, err = ParseTime("not-a-time")
	assert.Error(t, err)
}

func testBookmark() *bookmark.Bookmark {
	return &bookmark.Bookmark{
		URL:    "https://go.dev",
		Title:  "Go",
		Desc:   "The language",
		Tags:   "go lang",
		Shared: false,
		ToRead: true,
	}
}
