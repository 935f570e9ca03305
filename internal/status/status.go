// Package status checks bookmark URLs for liveness.
package status

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/mateconpizza/pinb/internal/bookmark"
	"github.com/mateconpizza/pinb/internal/sys/terminal"
	"github.com/mateconpizza/pinb/internal/ui"
	"github.com/mateconpizza/pinb/internal/ui/color"
	"github.com/mateconpizza/pinb/internal/ui/txt"
)

// maxConRequests caps the concurrent requests.
const maxConRequests = 10

var (
	cb  = func(s any) string { return color.Blue(s).Bold().String() }
	cbg = func(s any) string { return color.BrightGreen(s).String() }
	cr  = func(s any) string { return color.Red(s).String() }
	cbr = func(s any) string { return color.BrightRed(s).String() }
	cy  = func(s any) string { return color.Yellow(s).String() }
	ctb = func(s string) string { return color.Text(s).Bold().String() }
)

type Response struct {
	URL        string
	bID        int
	statusCode int
	hasError   bool
}

func (r *Response) String() string {
	id := fmt.Sprintf("ID %s", color.Text(fmt.Sprintf("%-3d", r.bID)).Bold())
	colorStatus, colorCode := prettifyURLStatus(r.statusCode)
	u := txt.Shorten(r.URL, terminal.MinWidth)

	return fmt.Sprintf("%s (%s %s) %s", id, colorCode, colorStatus, u)
}

// Check probes every bookmark URL, printing each result as it lands and
// a summary at the end.
func Check(c *ui.Console, bs []*bookmark.Bookmark) error {
	var (
		responses = make([]*Response, 0, len(bs))
		sem       = semaphore.NewWeighted(maxConRequests)
		wg        sync.WaitGroup
		mu        sync.Mutex
	)

	ctx := context.Background()
	start := time.Now()

	for _, b := range bs {
		if err := sem.Acquire(ctx, 1); err != nil {
			return fmt.Errorf("acquiring semaphore: %w", err)
		}

		wg.Add(1)

		go func(b *bookmark.Bookmark) {
			defer wg.Done()
			defer sem.Release(1)

			res := makeRequest(ctx, b)

			mu.Lock()
			responses = append(responses, res)
			printResponse(c, res)
			mu.Unlock()
		}(b)
	}

	wg.Wait()

	printSummaryStatus(c, responses, time.Since(start))

	return nil
}

// makeRequest sends an HTTP GET request to the bookmark URL.
func makeRequest(ctx context.Context, b *bookmark.Bookmark) *Response {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.URL, http.NoBody)
	if err != nil {
		slog.Error("creating request", "url", b.URL, "error", err)
		return newResponse(b, http.StatusNotFound, true)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return newResponse(b, errStatusCode(err), true)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("closing response body", "url", b.URL, "error", err)
		}
	}()

	return newResponse(b, resp.StatusCode, resp.StatusCode != http.StatusOK)
}

func newResponse(b *bookmark.Bookmark, statusCode int, hasError bool) *Response {
	return &Response{
		URL:        b.URL,
		bID:        b.ID,
		statusCode: statusCode,
		hasError:   hasError,
	}
}

// errStatusCode maps a transport error to a representative status code.
func errStatusCode(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case isNetworkUnreachableError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusNotFound
	}
}

// printResponse prints a single result with a status icon.
func printResponse(c *ui.Console, r *Response) {
	switch r.statusCode / 100 {
	case 2:
		c.F.Reset().Success(r.String() + "\n").Flush()
	case 3:
		c.F.Reset().Warning(r.String() + "\n").Flush()
	case 4, 5:
		c.F.Reset().Error(r.String() + "\n").Flush()
	default:
		c.F.Reset().Midln(r.String()).Flush()
	}
}

// prettifyURLStatus formats an HTTP status code by category.
func prettifyURLStatus(code int) (status, statusCode string) {
	switch code / 100 {
	case 2:
		status = cbg("OK")
		statusCode = cbg(code)
	case 3:
		status = cy("WA")
		statusCode = cy(code)
	case 4:
		status = cbr("ER")
		statusCode = cbr(code)
	case 5:
		status = cr("ER")
		statusCode = cr(code)
	default:
		status = cy("WA")
		statusCode = cy(code)
	}

	return status, statusCode
}

// fmtSummary formats one status-code line of the summary.
func fmtSummary(n, statusCode int, c color.ColorFn) string {
	total := fmt.Sprintf(c("%-3d").Bold().String(), n)
	code := c(statusCode).String()
	s := http.StatusText(statusCode)

	statusText := color.Text(s).Italic().String()
	if s == "" {
		statusText = color.Text("non-standard code").Italic().String()
	}

	return total + " URLs returned '" + statusText + "' (" + code + ")"
}

// printSummaryStatus prints the grouped status codes and the URLs that
// failed.
func printSummaryStatus(c *ui.Console, r []*Response, d time.Duration) {
	codes := make(map[int][]*Response)
	for _, res := range r {
		codes[res.statusCode] = append(codes[res.statusCode], res)
	}

	c.F.Reset().Rowln().Header(ctb("Summary URLs status:\n"))

	for statusCode, res := range codes {
		n := len(res)

		switch statusCode / 100 {
		case 2:
			c.F.Midln(fmtSummary(n, statusCode, color.BrightGreen))
		case 3:
			c.F.Midln(fmtSummary(n, statusCode, color.Yellow))
		case 4:
			c.F.Midln(fmtSummary(n, statusCode, color.BrightRed))
		case 5:
			c.F.Midln(fmtSummary(n, statusCode, color.Red))
		default:
			c.F.Midln(fmtSummary(n, statusCode, color.Yellow))
		}

		for _, r := range res {
			if r.statusCode == http.StatusOK {
				continue
			}

			c.F.Rowln(fmt.Sprintf(" > %-3d %s", r.bID, txt.Shorten(r.URL, terminal.MinWidth)))
		}
	}

	took := fmt.Sprintf("%.2fs", d.Seconds())
	total := fmt.Sprintf("Total %s checked,", cb(len(r)))
	c.F.Rowln().Footerln(total + " took " + cb(took)).Flush()
}

func isNetworkUnreachableError(err error) bool {
	var netOpErr *net.OpError
	if errors.As(err, &netOpErr) {
		return netOpErr.Op == "connect" &&
			strings.Contains(netOpErr.Err.Error(), "network is unreachable")
	}

	return false
}
