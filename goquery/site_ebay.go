package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

var _ pricetag.SiteExtractor = (*EbayExtractor)(nil)

const ebayCeiling = 100000

// ebayExclude keeps listing-carousel prices ("similar items", "sponsored")
// out of the probe.
const ebayExclude = `[class*="carousel"], .x-related-items, [data-testid="x-rail"]`

var ebaySelectors = []string{
	".x-price-primary .ux-textspans",
	".x-bin-price__content span",
	"#prcIsum",
}

// EbayExtractor resolves prices on eBay listing pages. Ended listings are
// treated as out of stock.
type EbayExtractor struct{}

// NewEbayExtractor creates a new EbayExtractor.
func NewEbayExtractor() *EbayExtractor {
	return &EbayExtractor{}
}

// Name returns the extractor's identifier.
func (e *EbayExtractor) Name() string {
	return "ebay"
}

// Extract resolves the current price and availability from an eBay listing
// page snapshot.
func (e *EbayExtractor) Extract(html string, pageURL string) (*pricetag.Result, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	strategies := []strategy{
		func(d *goquery.Document) (float64, bool) {
			return probeSelectors(d, ebaySelectors, ebayCeiling, ebayExclude)
		},
		func(d *goquery.Document) (float64, bool) {
			return microdataPrice(d, ebayCeiling, ebayExclude)
		},
	}

	inStock := true
	if mdInStock, ok := microdataAvailability(doc); ok {
		inStock = mdInStock
	} else {
		inStock = textInStock(doc, []string{"out of stock", "this listing has ended", "this listing was ended"})
	}

	return &pricetag.Result{
		Price:   runStrategies(doc, strategies),
		InStock: inStock,
	}, nil
}
