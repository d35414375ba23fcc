// Package check orchestrates on-demand price refreshes: it fetches one or
// more product pages and runs extraction against each freshly loaded
// document. The extraction engine itself is synchronous and stateless;
// concurrency, rate limiting, and retries all live here, on the caller's
// side of the boundary.
package check

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/pricetag"
	"golang.org/x/sync/errgroup"
)

// Check is the outcome of one price check.
type Check struct {
	URL    string
	Result *pricetag.Result
	Err    error
}

// Checker fetches product pages and extracts prices with bounded
// concurrency. Fetch failures are retried with backoff; extraction never
// retries, since re-running over the same snapshot is idempotent.
type Checker struct {
	Fetcher  pricetag.Fetcher
	Registry pricetag.ExtractorRegistry

	// RateLimiter, if set, throttles fetches per retail domain.
	RateLimiter pricetag.DomainLimiter

	// Snapshots, if set, receives the raw HTML of every successful
	// fetch. Snapshot failures are logged, never fatal.
	Snapshots pricetag.SnapshotStore

	// Concurrency bounds parallel fetches. Defaults to 4.
	Concurrency int

	// RetryDelays overrides the fetch backoff schedule. Nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration

	// Logf, if set, receives retry progress lines.
	Logf LogFunc
}

// Run checks every URL and returns one Check per URL, in input order.
// A failed fetch is recorded in the Check's Err; it never aborts the
// remaining URLs. The returned error reports context cancellation only.
func (c *Checker) Run(ctx context.Context, urls []string) ([]Check, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	checks := make([]Check, len(urls))

	// Keep the caller's context separate: errgroup cancels the derived
	// context once Wait returns, even on success.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, pageURL := range urls {
		g.Go(func() error {
			checks[i] = c.checkOne(gctx, pageURL, delays)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return checks, err
	}
	return checks, ctx.Err()
}

func (c *Checker) checkOne(ctx context.Context, pageURL string, delays []time.Duration) Check {
	// Every attempt, retries included, takes a fresh rate-limit token so
	// a retry storm cannot hammer one retailer.
	fetch := c.Fetcher.Fetch
	if c.RateLimiter != nil {
		domain := domainOf(pageURL)
		fetch = func(ctx context.Context, url string) (string, error) {
			if err := c.RateLimiter.Wait(ctx, domain); err != nil {
				return "", err
			}
			return c.Fetcher.Fetch(ctx, url)
		}
	}

	html, err := FetchWithRetryDelays(ctx, pageURL, fetch, c.Logf, delays)
	if err != nil {
		return Check{URL: pageURL, Err: err}
	}

	if c.Snapshots != nil {
		if _, err := c.Snapshots.Save(ctx, pageURL, html); err != nil && c.Logf != nil {
			c.Logf("  snapshot %s: %v", pageURL, err)
		}
	}

	result, err := c.Registry.GetForURL(pageURL).Extract(html, pageURL)
	if err != nil {
		return Check{URL: pageURL, Err: err}
	}
	return Check{URL: pageURL, Result: result}
}

// domainOf extracts the host for rate-limiting purposes. Malformed URLs
// share a single bucket.
func domainOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return pageURL
	}
	return u.Host
}
