package goquery

import "github.com/fwojciec/pricetag"

var _ pricetag.ExtractorRegistry = (*Registry)(nil)

// Registry manages retailer-specific extractors and routes page URLs to
// them. It uses a Router to identify the retailer and returns the matching
// extractor, falling back to a generic extractor when the retailer is
// unknown or no specific extractor is registered.
type Registry struct {
	router     pricetag.Router
	fallback   pricetag.SiteExtractor
	extractors map[pricetag.Retailer]pricetag.SiteExtractor
}

// NewRegistry creates a new Registry with the given router and fallback
// extractor. The fallback is used when GetForURL cannot find a specific
// extractor for the routed retailer.
func NewRegistry(router pricetag.Router, fallback pricetag.SiteExtractor) *Registry {
	return &Registry{
		router:     router,
		fallback:   fallback,
		extractors: make(map[pricetag.Retailer]pricetag.SiteExtractor),
	}
}

// DefaultRegistry returns a Registry wired with every supported retailer
// and the generic fallback.
func DefaultRegistry() *Registry {
	r := NewRegistry(DefaultRouter(), NewGenericExtractor())
	r.Register(pricetag.RetailerAmazon, NewAmazonExtractor())
	r.Register(pricetag.RetailerTarget, NewTargetExtractor())
	r.Register(pricetag.RetailerWalmart, NewWalmartExtractor())
	r.Register(pricetag.RetailerBestBuy, NewBestBuyExtractor())
	r.Register(pricetag.RetailerEbay, NewEbayExtractor())
	r.Register(pricetag.RetailerEtsy, NewEtsyExtractor())
	return r
}

// Get returns the extractor for a specific retailer.
// Returns nil if no extractor is registered for the retailer.
func (r *Registry) Get(retailer pricetag.Retailer) pricetag.SiteExtractor {
	return r.extractors[retailer]
}

// GetForURL routes the page URL and returns the appropriate extractor.
// Falls back to the fallback extractor if the retailer is unknown or no
// extractor is registered for the routed retailer.
func (r *Registry) GetForURL(pageURL string) pricetag.SiteExtractor {
	retailer := r.router.Route(pageURL)
	if extractor, ok := r.extractors[retailer]; ok {
		return extractor
	}
	return r.fallback
}

// Register adds an extractor for a retailer.
// If an extractor is already registered for the retailer, it is replaced.
func (r *Registry) Register(retailer pricetag.Retailer, extractor pricetag.SiteExtractor) {
	r.extractors[retailer] = extractor
}

// List returns all registered retailers.
func (r *Registry) List() []pricetag.Retailer {
	retailers := make([]pricetag.Retailer, 0, len(r.extractors))
	for retailer := range r.extractors {
		retailers = append(retailers, retailer)
	}
	return retailers
}

// Extract resolves the price and stock status for a product page using the
// default registry. It is the package-level convenience entry point.
func Extract(html string, pageURL string) (*pricetag.Result, error) {
	return DefaultRegistry().GetForURL(pageURL).Extract(html, pageURL)
}
