// Package scraper fetches a webpage and extracts the fields a bookmark
// wants, title and description.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mateconpizza/rotato"
)

var (
	ErrScrapeNotStarted  = errors.New("scrape not started")
	ErrUnsupportedScheme = errors.New("unsupported scheme")
)

// defaultTitle is used when a page has no usable <title>.
const defaultTitle = "untitled"

// maxBodySize caps how much of a response body is parsed.
const maxBodySize = 10 * 1024 * 1024

// descSelectors are tried in order, first non-empty content wins.
var descSelectors = []string{
	"meta[name='description']",
	"meta[name='Description']",
	"meta[property='description']",
	"meta[property='Description']",
	"meta[property='og:description']",
	"meta[property='og:Description']",
	"meta[name='og:description']",
	"meta[name='og:Description']",
}

type OptFn func(*Options)

type Options struct {
	uri     string
	doc     *goquery.Document
	ctx     context.Context
	started bool
	sp      *rotato.Rotato
}

type Scraper struct {
	Options
}

// New creates a new Scraper for the given URL.
func New(s string, opts ...OptFn) *Scraper {
	o := &Options{ctx: context.Background()}
	for _, opt := range opts {
		opt(o)
	}

	o.uri = s

	return &Scraper{Options: *o}
}

func WithContext(ctx context.Context) OptFn {
	return func(o *Options) {
		o.ctx = ctx
	}
}

func WithSpinner(mesg string) OptFn {
	return func(o *Options) {
		o.sp = rotato.New(
			rotato.WithMesg(mesg),
			rotato.WithMesgColor(rotato.ColorYellow),
			rotato.WithSpinnerColor(rotato.ColorBrightMagenta),
		)
	}
}

// Start fetches and parses the URL content.
//
// A fetch failure still leaves the Scraper usable, Title and Desc fall
// back to their defaults.
func (s *Scraper) Start() error {
	if s.started {
		return nil
	}

	if s.sp != nil {
		s.sp.Start()
		defer s.sp.Done()
	}

	doc, err := fetchDocument(s.ctx, s.uri)
	s.doc = doc
	s.started = true

	return err
}

// Title retrieves the page title, falling back to `untitled` when the
// page has none.
func (s *Scraper) Title() (string, error) {
	if !s.started {
		return "", ErrScrapeNotStarted
	}

	t := strings.TrimSpace(s.doc.Find("title").Text())
	if t == "" {
		return defaultTitle, nil
	}

	return t, nil
}

// Desc retrieves the page description from the usual meta tags, empty
// when the page declares none.
func (s *Scraper) Desc() (string, error) {
	if !s.started {
		return "", ErrScrapeNotStarted
	}

	for _, selector := range descSelectors {
		desc := s.doc.Find(selector).AttrOr("content", "")
		if desc != "" {
			return strings.TrimSpace(desc), nil
		}
	}

	return "", nil
}

func setHeaders(r *http.Request) {
	r.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:124.0) Gecko/20100101 Firefox/124.0")
	r.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	r.Header.Set("Accept-Language", "en-US,en;q=0.5")
	r.Header.Set("Connection", "keep-alive")
}

// fetchDocument fetches and parses the HTML content from a URL. It
// always returns a usable document, empty on failure.
func fetchDocument(ctx context.Context, s string) (*goquery.Document, error) {
	s = normalizeURL(s)
	if !isSupportedScheme(s) {
		return emptyDoc(), fmt.Errorf("%w: %q", ErrUnsupportedScheme, s)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s, http.NoBody)
	if err != nil {
		return emptyDoc(), fmt.Errorf("creating request: %w", err)
	}

	setHeaders(req)

	cl := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}

	start := time.Now()

	res, err := cl.Do(req)
	if err != nil {
		return emptyDoc(), fmt.Errorf("request failed: %w", err)
	}

	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("closing response body", "url", s, "error", err)
		}
	}()

	slog.Debug("scraper response", "url", s, "status", res.StatusCode, "duration", time.Since(start))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return emptyDoc(), fmt.Errorf("unexpected status %d for %q", res.StatusCode, s)
	}

	ct := res.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(ct), "html") {
		slog.Warn("unexpected content type", "url", s, "content_type", ct)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return emptyDoc(), fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}

func emptyDoc() *goquery.Document {
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(""))
	return doc
}

func normalizeURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return "https://" + raw
	}

	return raw
}

func isSupportedScheme(rawURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)

	return scheme == "http" || scheme == "https"
}
