package wayback

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func withTestAPI(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(handler)
	old := apiURL
	apiURL = srv.URL

	t.Cleanup(func() {
		apiURL = old
		srv.Close()
	})
}

func TestAvailable(t *testing.T) {
	withTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("url"); got != "https://example.com" {
			t.Errorf("url query = %q", got)
		}

		fmt.Fprint(w, `{
			"archived_snapshots": {
				"closest": {
					"available": true,
					"url": "http://web.archive.org/web/20240101000000/https://example.com",
					"timestamp": "20240101000000",
					"status": "200"
				}
			}
		}`)
	})

	snap, err := Available(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("Available() error = %v", err)
	}

	if snap.URL != "http://web.archive.org/web/20240101000000/https://example.com" {
		t.Errorf("snapshot URL = %q", snap.URL)
	}

	if snap.Status != "200" {
		t.Errorf("snapshot status = %q", snap.Status)
	}

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !snap.Time().Equal(want) {
		t.Errorf("snapshot time = %v, want %v", snap.Time(), want)
	}
}

func TestAvailableNoSnapshot(t *testing.T) {
	withTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"archived_snapshots": {}}`)
	})

	_, err := Available(context.Background(), "https://example.com")
	if !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("error = %v, want ErrNoSnapshot", err)
	}
}

func TestAvailableAPIFailure(t *testing.T) {
	withTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := Available(context.Background(), "https://example.com")
	if !errors.Is(err, ErrAPIRequestFail) {
		t.Errorf("error = %v, want ErrAPIRequestFail", err)
	}
}

func TestSnapshotTimeInvalid(t *testing.T) {
	s := &Snapshot{Timestamp: "not-a-time"}
	if !s.Time().IsZero() {
		t.Errorf("Time() = %v, want zero", s.Time())
	}
}
