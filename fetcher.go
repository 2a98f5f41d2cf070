package duden

import "context"

// Fetcher retrieves the HTML of a dictionary page.
type Fetcher interface {
	// Fetch returns the page body for the given URL.
	// Returns ENOTFOUND if the dictionary has no entry at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
