package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pricetag"
)

// Ensure LoggingRegistry implements pricetag.ExtractorRegistry.
var _ pricetag.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with debug logging for
// retailer routing.
type LoggingRegistry struct {
	next   pricetag.ExtractorRegistry
	router pricetag.Router
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next pricetag.ExtractorRegistry, router pricetag.Router, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, router: router, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(retailer pricetag.Retailer) pricetag.SiteExtractor {
	return r.next.Get(retailer)
}

// GetForURL routes the URL, logs the routed retailer, and returns the
// appropriate extractor.
func (r *LoggingRegistry) GetForURL(pageURL string) pricetag.SiteExtractor {
	begin := time.Now()
	retailer := r.router.Route(pageURL)
	retailerName := string(retailer)
	if retailer == pricetag.RetailerUnknown {
		retailerName = "(generic)"
	}
	r.logger.Info("retailer routing",
		"url", pageURL,
		"retailer", retailerName,
		"duration", time.Since(begin),
	)
	return r.next.GetForURL(pageURL)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(retailer pricetag.Retailer, extractor pricetag.SiteExtractor) {
	r.next.Register(retailer, extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []pricetag.Retailer {
	return r.next.List()
}
