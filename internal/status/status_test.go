package status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

func TestMakeRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
		wantErr  bool
	}{
		{
			name:     "ok",
			handler:  func(w http.ResponseWriter, r *http.Request) {},
			wantCode: http.StatusOK,
			wantErr:  false,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			b := bookmark.New()
			b.ID = 1
			b.URL = srv.URL

			res := makeRequest(context.Background(), b)
			if res.statusCode != tt.wantCode {
				t.Errorf("statusCode = %d, want %d", res.statusCode, tt.wantCode)
			}

			if res.hasError != tt.wantErr {
				t.Errorf("hasError = %v, want %v", res.hasError, tt.wantErr)
			}
		})
	}
}

func TestMakeRequestUnreachable(t *testing.T) {
	t.Parallel()

	b := bookmark.New()
	b.ID = 2
	b.URL = "http://127.0.0.1:1"

	res := makeRequest(context.Background(), b)
	if !res.hasError {
		t.Error("hasError = false for unreachable host")
	}
}

func TestErrStatusCode(t *testing.T) {
	t.Parallel()

	if got := errStatusCode(context.DeadlineExceeded); got != http.StatusGatewayTimeout {
		t.Errorf("deadline exceeded = %d, want %d", got, http.StatusGatewayTimeout)
	}

	if got := errStatusCode(errors.New("boom")); got != http.StatusNotFound {
		t.Errorf("generic error = %d, want %d", got, http.StatusNotFound)
	}
}
