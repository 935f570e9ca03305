// Package pinboard implements the slice of the Pinboard v1 API the
// application needs.
package pinboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mateconpizza/pinb/internal/bookmark"
)

const (
	defaultBaseURL = "https://api.pinboard.in/v1"
	userAgent      = "pinb (https://github.com/mateconpizza/pinb)"
	clientTimeout  = 30 * time.Second

	// The server refuses posts/all more often than every 5 minutes.
	allRateLimit = 5 * time.Minute
)

var (
	ErrAPI             = errors.New("server reported an error")
	ErrUnauthorized    = errors.New("unauthorized, check the API token")
	ErrTooManyRequests = errors.New("too many requests, slow down")
	ErrTokenEmpty      = errors.New("API token is empty")
)

// post is the bookmark wire format of the service.
type post struct {
	Href        string `json:"href"`
	Description string `json:"description"`
	Extended    string `json:"extended"`
	Hash        string `json:"hash"`
	Time        string `json:"time"`
	Shared      string `json:"shared"`
	ToRead      string `json:"toread"`
	Tags        string `json:"tags"`
}

// Suggestions holds the tag suggestions for a URL.
type Suggestions struct {
	URL         string   `json:"url"`
	Popular     []string `json:"popular"`
	Recommended []string `json:"recommended"`
}

// Client talks to the bookmarking service for one account.
type Client struct {
	token string
	base  string
	hc    *http.Client
	now   func() time.Time

	mu       sync.Mutex
	allCache []*bookmark.Bookmark
	lastAll  time.Time
}

type OptFn func(*Client)

// WithBaseURL points the client at another server root.
func WithBaseURL(s string) OptFn {
	return func(c *Client) {
		c.base = strings.TrimSuffix(s, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) OptFn {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithClock replaces the wall clock used for rate limiting.
func WithClock(now func() time.Time) OptFn {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a client for the given API token.
func New(token string, opts ...OptFn) *Client {
	c := &Client{
		token: token,
		base:  defaultBaseURL,
		hc:    &http.Client{Timeout: clientTimeout},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LastUpdate returns the time of the most recent change on the server.
func (c *Client) LastUpdate(ctx context.Context) (time.Time, error) {
	body, err := c.call(ctx, "posts/update", nil)
	if err != nil {
		return time.Time{}, err
	}

	var r struct {
		UpdateTime string `json:"update_time"`
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return time.Time{}, fmt.Errorf("decoding update time: %w", err)
	}

	t, err := ParseTime(r.UpdateTime)
	if err != nil {
		return time.Time{}, err
	}

	return t, nil
}

// All downloads every bookmark of the account.
//
// The endpoint is heavily rate limited, so a fetch made too soon after the
// previous one serves the copy kept from that call instead of hitting the
// server again.
func (c *Client) All(ctx context.Context) ([]*bookmark.Bookmark, error) {
	tooSoon, err := c.allTooSoon(ctx)
	if err != nil {
		return nil, err
	}

	if tooSoon {
		slog.Debug("posts/all asked again within the rate limit, serving cached copy")
		c.mu.Lock()
		defer c.mu.Unlock()

		return append([]*bookmark.Bookmark(nil), c.allCache...), nil
	}

	body, err := c.call(ctx, "posts/all", nil)
	if err != nil {
		return nil, err
	}

	var posts []post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("decoding bookmarks: %w", err)
	}

	bs := make([]*bookmark.Bookmark, 0, len(posts))
	for i := range posts {
		bs = append(bs, fromPost(&posts[i]))
	}

	c.mu.Lock()
	c.allCache = bs
	c.lastAll = c.now()
	c.mu.Unlock()

	return bs, nil
}

// Add creates or replaces the bookmark on the server.
func (c *Client) Add(ctx context.Context, b *bookmark.Bookmark) error {
	dt := b.CreatedAt
	if dt == "" {
		dt = c.now().UTC().Format(bookmark.TimeLayout)
	}

	params := url.Values{}
	params.Set("url", b.URL)
	params.Set("description", b.Title)
	params.Set("extended", b.Desc)
	params.Set("tags", b.Tags)
	params.Set("dt", dt)
	params.Set("replace", "yes")
	params.Set("shared", yesno(b.Shared))
	params.Set("toread", yesno(b.ToRead))

	body, err := c.call(ctx, "posts/add", params)
	if err != nil {
		return err
	}

	return checkResult(body)
}

// Delete removes the bookmark for the given URL from the server.
//
// Deleting a URL the server never had is not an error.
func (c *Client) Delete(ctx context.Context, bURL string) error {
	params := url.Values{}
	params.Set("url", bURL)

	_, err := c.call(ctx, "posts/delete", params)

	return err
}

// Suggest asks the server for popular and recommended tags for a URL.
func (c *Client) Suggest(ctx context.Context, bURL string) (*Suggestions, error) {
	params := url.Values{}
	params.Set("url", bURL)

	body, err := c.call(ctx, "posts/suggest", params)
	if err != nil {
		return nil, err
	}

	// the response is a list of one-key objects
	var chunks []map[string][]string
	if err := json.Unmarshal(body, &chunks); err != nil {
		return nil, fmt.Errorf("decoding suggestions: %w", err)
	}

	s := &Suggestions{URL: bURL}
	for _, chunk := range chunks {
		s.Popular = append(s.Popular, chunk["popular"]...)
		s.Recommended = append(s.Recommended, chunk["recommended"]...)
	}

	return s, nil
}

// allTooSoon reports whether asking for everything again would be wasteful.
func (c *Client) allTooSoon(ctx context.Context) (bool, error) {
	c.mu.Lock()
	lastAll := c.lastAll
	c.mu.Unlock()

	if lastAll.IsZero() {
		return false, nil
	}

	if c.now().Sub(lastAll) < allRateLimit {
		return true, nil
	}

	last, err := c.LastUpdate(ctx)
	if err != nil {
		return false, err
	}

	return last.Before(lastAll), nil
}

// call performs a GET against the API, returning the raw body.
func (c *Client) call(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if c.token == "" {
		return nil, ErrTokenEmpty
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("auth_token", c.token)
	params.Set("format", "json")

	u := c.base + "/" + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	slog.Debug("calling api", "path", path)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %q: %w", path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("closing response body", "error", err)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrTooManyRequests
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %q returned %s", ErrAPI, path, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return body, nil
}

// checkResult inspects a mutation response for a server-side failure.
func checkResult(body []byte) error {
	var r struct {
		Code       string `json:"code"`
		ResultCode string `json:"result_code"`
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}

	code := r.Code
	if code == "" {
		code = r.ResultCode
	}
	if code != "" && code != "done" {
		return fmt.Errorf("%w: %s", ErrAPI, code)
	}

	return nil
}

// ParseTime parses a timestamp as the server formats them.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", s, err)
	}

	return t.UTC(), nil
}

func fromPost(p *post) *bookmark.Bookmark {
	b := bookmark.New()
	b.URL = p.Href
	b.Title = p.Description
	b.Desc = p.Extended
	b.Tags = p.Tags
	b.Hash = p.Hash
	b.CreatedAt = p.Time
	b.Shared = p.Shared == "yes"
	b.ToRead = p.ToRead == "yes"
	b.EnsureHash()

	return b
}

func yesno(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
