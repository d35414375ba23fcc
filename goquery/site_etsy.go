package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

var _ pricetag.SiteExtractor = (*EtsyExtractor)(nil)

const etsyCeiling = 10000

var etsySelectors = []string{
	`[data-buy-box-region="price"] .wt-text-title-larger`,
	`[data-buy-box-region="price"] p`,
	`[data-selector="price-only"]`,
}

// EtsyExtractor resolves prices on Etsy listing pages.
type EtsyExtractor struct{}

// NewEtsyExtractor creates a new EtsyExtractor.
func NewEtsyExtractor() *EtsyExtractor {
	return &EtsyExtractor{}
}

// Name returns the extractor's identifier.
func (e *EtsyExtractor) Name() string {
	return "etsy"
}

// Extract resolves the current price and availability from an Etsy listing
// page snapshot.
func (e *EtsyExtractor) Extract(html string, pageURL string) (*pricetag.Result, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	sd := parseJSONLD(doc, etsyCeiling, pagePath(pageURL))

	strategies := []strategy{
		func(d *goquery.Document) (float64, bool) {
			return probeSelectors(d, etsySelectors, etsyCeiling, "")
		},
		func(*goquery.Document) (float64, bool) {
			return sd.price, sd.hasPrice
		},
	}

	inStock := true
	if sd.inStock != nil {
		inStock = *sd.inStock
	} else {
		inStock = textInStock(doc, []string{"sold out"})
	}

	return &pricetag.Result{
		Price:   runStrategies(doc, strategies),
		InStock: inStock,
	}, nil
}
