// Package slog provides logging decorators for duden interfaces using
// the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/akarpinski/duden"
)

// Ensure LoggingFetcher implements duden.Fetcher.
var _ duden.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   duden.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next duden.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the URL, duration and
// outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("fetched page",
		"url", url,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
