// Package rod provides a browser-based implementation of pricetag.Fetcher.
// Modern storefronts render prices with JavaScript, so a plain HTTP fetch
// often returns a skeleton page without the buybox.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/pricetag"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// desktopUserAgent is sent instead of the headless-Chrome default, which
// several retailers answer with a bot interstitial instead of the product.
const desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// settleDelay bounds the wait for late-rendering price widgets after the
// load event.
const settleDelay = 300 * time.Millisecond

// Ensure Fetcher implements pricetag.Fetcher at compile time.
var _ pricetag.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered product pages using Chrome browser automation.
// Every Fetch loads a fresh page, so repeated checks of the same URL see a
// fresh document. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the product URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Create a new page
	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      desktopUserAgent,
		AcceptLanguage: "en-US,en",
	}); err != nil {
		return "", err
	}

	// Navigate to URL
	if err := page.Navigate(url); err != nil {
		return "", err
	}

	// Wait for page to load
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Give client-rendered price widgets a moment to settle
	if err := page.WaitStable(settleDelay); err != nil {
		return "", err
	}

	// Get rendered HTML
	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
