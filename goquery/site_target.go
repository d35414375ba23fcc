package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

var _ pricetag.SiteExtractor = (*TargetExtractor)(nil)

const targetCeiling = 10000

var targetSelectors = []string{
	`[data-test="product-price"]`,
	`[data-test="current-price"] span`,
}

// TargetExtractor resolves prices on Target product pages. Target renders
// most product data from JSON-LD, so the structured-data strategy carries
// pages where the price test ids have shifted.
type TargetExtractor struct{}

// NewTargetExtractor creates a new TargetExtractor.
func NewTargetExtractor() *TargetExtractor {
	return &TargetExtractor{}
}

// Name returns the extractor's identifier.
func (e *TargetExtractor) Name() string {
	return "target"
}

// Extract resolves the current price and availability from a Target
// product page snapshot.
func (e *TargetExtractor) Extract(html string, pageURL string) (*pricetag.Result, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	sd := parseJSONLD(doc, targetCeiling, pagePath(pageURL))

	strategies := []strategy{
		func(d *goquery.Document) (float64, bool) {
			return probeSelectors(d, targetSelectors, targetCeiling, "")
		},
		func(*goquery.Document) (float64, bool) {
			return sd.price, sd.hasPrice
		},
	}

	inStock := true
	switch {
	case sd.inStock != nil:
		inStock = *sd.inStock
	case hasElement(doc, `[data-test="outOfStockMessage"]`):
		inStock = false
	default:
		inStock = textInStock(doc, []string{"out of stock", "sold out"})
	}

	return &pricetag.Result{
		Price:   runStrategies(doc, strategies),
		InStock: inStock,
	}, nil
}
