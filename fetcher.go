package jdex

import "context"

// Fetcher retrieves raw page content from a location.
type Fetcher interface {
	// Fetch returns the content stored at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any held resources.
	Close() error
}
