package pricetag

// Result holds the outcome of one extraction call against a product page.
type Result struct {
	// Price is the single authoritative current price, or nil when no
	// strategy produced a validated candidate. An absent price means
	// "unknown", never a hard failure.
	Price *float64

	// InStock reports availability. It defaults to true and is only set
	// false on a positive out-of-stock signal; absence of a signal is not
	// evidence of stock.
	InStock bool
}

// SiteExtractor extracts a price and stock status from one retailer's markup.
// Implementations are an ordered chain of strategies (selector probing,
// JSON-LD, microdata, text scanning) tried until one yields a valid price.
type SiteExtractor interface {
	// Extract parses HTML and resolves the current price and availability.
	// The pageURL is used to disambiguate structured data belonging to the
	// main product from embedded recommendation blocks.
	Extract(html string, pageURL string) (*Result, error)

	// Name returns the extractor's identifier (e.g., "amazon", "generic").
	Name() string
}

// Retailer identifies a supported retail site.
type Retailer string

// Supported retailers.
const (
	RetailerUnknown Retailer = ""
	RetailerAmazon  Retailer = "amazon"
	RetailerTarget  Retailer = "target"
	RetailerWalmart Retailer = "walmart"
	RetailerBestBuy Retailer = "bestbuy"
	RetailerEbay    Retailer = "ebay"
	RetailerEtsy    Retailer = "etsy"
)

// Router maps a page URL to a retailer by substring containment, evaluated
// in a fixed registration order (first match wins). An unmatched or
// malformed URL is not an error; it returns RetailerUnknown.
type Router interface {
	Route(pageURL string) Retailer
}

// ExtractorRegistry manages per-retailer extractors.
type ExtractorRegistry interface {
	// Get returns the extractor for a specific retailer.
	// Returns nil if no extractor is registered for the retailer.
	Get(retailer Retailer) SiteExtractor

	// GetForURL routes the URL and returns the appropriate extractor.
	// Falls back to a generic extractor if the retailer is unknown.
	GetForURL(pageURL string) SiteExtractor

	// Register adds an extractor for a retailer.
	Register(retailer Retailer, extractor SiteExtractor)

	// List returns all registered retailers.
	List() []Retailer
}
