// Package slog provides logging decorators for glean collaborators.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/glean-dev/glean"
)

// Ensure Fetcher implements glean.Fetcher at compile time.
var _ glean.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a glean.Fetcher with debug logging of URL, duration, and
// payload size.
type Fetcher struct {
	next   glean.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a logging Fetcher around next.
func NewFetcher(next glean.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	f.logger.Debug("fetch",
		"url", url,
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
