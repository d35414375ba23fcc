package pricetag

import "context"

// Fetcher retrieves rendered HTML for a product page.
// Implementations may use browser automation to handle JavaScript-rendered
// storefronts. Each fetch loads a fresh document; nothing is cached.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter throttles page fetches per retail domain so that bulk
// refreshes don't hammer a single storefront.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
