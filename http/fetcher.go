// Package http provides the HTTP implementation of duden.Fetcher for
// retrieving spelling pages from the dictionary site.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/akarpinski/duden"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultRequestsPerSecond is the default polite request rate against
// the dictionary site. Lookups are occasional, so one request per
// second costs nothing in practice.
const DefaultRequestsPerSecond = 1.0

// defaultUserAgent identifies the tool to the site.
const defaultUserAgent = "duden-cli/1.0"

// Ensure Fetcher implements duden.Fetcher at compile time.
var _ duden.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves dictionary pages over HTTP. Concurrent batch
// lookups share its rate limiter, so the site sees a bounded request
// rate regardless of worker count.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	timeout   time.Duration
	rps       float64
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRequestsPerSecond sets the request rate limit.
// Defaults to DefaultRequestsPerSecond if not specified.
func WithRequestsPerSecond(rps float64) Option {
	return func(f *Fetcher) {
		f.rps = rps
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		rps:       DefaultRequestsPerSecond,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	f.limiter = rate.NewLimiter(rate.Limit(f.rps), 1)

	return f
}

// Fetch retrieves the page body from the given URL.
// A 404 response means the dictionary has no entry for the word (or the
// word has multiple entries under disambiguated URLs) and maps to
// ENOTFOUND.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", duden.Errorf(duden.ENOTFOUND, "no dictionary entry at %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", duden.Errorf(duden.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
