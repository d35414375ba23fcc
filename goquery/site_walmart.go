package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

var _ pricetag.SiteExtractor = (*WalmartExtractor)(nil)

const walmartCeiling = 10000

var walmartSelectors = []string{
	`[data-testid="price-wrap"] [itemprop="price"]`,
	`span[itemprop="price"]`,
	`[data-automation-id="product-price"] span`,
}

// WalmartExtractor resolves prices on Walmart product pages, which carry
// both microdata markers and JSON-LD.
type WalmartExtractor struct{}

// NewWalmartExtractor creates a new WalmartExtractor.
func NewWalmartExtractor() *WalmartExtractor {
	return &WalmartExtractor{}
}

// Name returns the extractor's identifier.
func (e *WalmartExtractor) Name() string {
	return "walmart"
}

// Extract resolves the current price and availability from a Walmart
// product page snapshot.
func (e *WalmartExtractor) Extract(html string, pageURL string) (*pricetag.Result, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	sd := parseJSONLD(doc, walmartCeiling, pagePath(pageURL))

	strategies := []strategy{
		func(d *goquery.Document) (float64, bool) {
			return probeSelectors(d, walmartSelectors, walmartCeiling, "")
		},
		func(*goquery.Document) (float64, bool) {
			return sd.price, sd.hasPrice
		},
		func(d *goquery.Document) (float64, bool) {
			return microdataPrice(d, walmartCeiling, "")
		},
	}

	inStock := true
	switch {
	case sd.inStock != nil:
		inStock = *sd.inStock
	default:
		if mdInStock, ok := microdataAvailability(doc); ok {
			inStock = mdInStock
		} else {
			inStock = textInStock(doc, []string{"out of stock", "currently unavailable"})
		}
	}

	return &pricetag.Result{
		Price:   runStrategies(doc, strategies),
		InStock: inStock,
	}, nil
}
