// Package wayback checks URLs against the Internet Archive Wayback
// Machine availability API.
package wayback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var (
	ErrAPIRequestFail = errors.New("internet archive: API request failed")
	ErrNoSnapshot     = errors.New("internet archive: no snapshot available")
)

// TimeLayout is the timestamp format of the availability API.
const TimeLayout = "20060102150405"

var apiURL = "https://archive.org/wayback/available"

const userAgent = "pinb (https://github.com/mateconpizza/pinb)"

// Snapshot is the closest archived copy of a URL.
type Snapshot struct {
	URL       string // address of the archived copy
	Timestamp string
	Status    string
}

// Time parses the snapshot timestamp, returning the zero time on failure.
func (s *Snapshot) Time() time.Time {
	t, err := time.Parse(TimeLayout, s.Timestamp)
	if err != nil {
		return time.Time{}
	}

	return t
}

// availabilityResponse is the API response structure.
type availabilityResponse struct {
	ArchivedSnapshots struct {
		Closest struct {
			Available bool   `json:"available"`
			URL       string `json:"url"`
			Timestamp string `json:"timestamp"`
			Status    string `json:"status"`
		} `json:"closest"`
	} `json:"archived_snapshots"`
}

// Available fetches the closest Wayback Machine snapshot for a URL.
//
// Returns ErrNoSnapshot when the archive holds no copy.
func Available(ctx context.Context, originalURL string) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	q := req.URL.Query()
	q.Add("url", originalURL)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAPIRequestFail, err)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("closing response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status: %d", ErrAPIRequestFail, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var avail availabilityResponse
	if err := json.Unmarshal(body, &avail); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	closest := avail.ArchivedSnapshots.Closest
	if !closest.Available || closest.URL == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoSnapshot, originalURL)
	}

	return &Snapshot{
		URL:       closest.URL,
		Timestamp: closest.Timestamp,
		Status:    closest.Status,
	}, nil
}
