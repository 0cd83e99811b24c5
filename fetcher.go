package glean

import "context"

// Fetcher retrieves raw HTML for a URL.
// Retry and timeout policy belongs to implementations; the pipeline treats
// any fetch failure as "no article".
type Fetcher interface {
	// Fetch returns the page HTML for the given URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher (connections,
	// browser processes). Must be called when the Fetcher is no longer
	// needed.
	Close() error
}
