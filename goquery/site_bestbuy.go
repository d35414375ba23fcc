package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

var _ pricetag.SiteExtractor = (*BestBuyExtractor)(nil)

const bestBuyCeiling = 100000

var bestBuySelectors = []string{
	`.priceView-hero-price span[aria-hidden="true"]`,
	`.priceView-customer-price span[aria-hidden="true"]`,
	`[data-testid="customer-price"] span`,
}

// BestBuyExtractor resolves prices on Best Buy product pages. Sold-out
// items keep their price but render a disabled add-to-cart button.
type BestBuyExtractor struct{}

// NewBestBuyExtractor creates a new BestBuyExtractor.
func NewBestBuyExtractor() *BestBuyExtractor {
	return &BestBuyExtractor{}
}

// Name returns the extractor's identifier.
func (e *BestBuyExtractor) Name() string {
	return "bestbuy"
}

// Extract resolves the current price and availability from a Best Buy
// product page snapshot.
func (e *BestBuyExtractor) Extract(html string, pageURL string) (*pricetag.Result, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	sd := parseJSONLD(doc, bestBuyCeiling, pagePath(pageURL))

	strategies := []strategy{
		func(d *goquery.Document) (float64, bool) {
			return probeSelectors(d, bestBuySelectors, bestBuyCeiling, "")
		},
		func(*goquery.Document) (float64, bool) {
			return sd.price, sd.hasPrice
		},
	}

	inStock := true
	switch {
	case sd.inStock != nil:
		inStock = *sd.inStock
	case hasElement(doc, ".add-to-cart-button[disabled]") ||
		containsText(doc.Find(".fulfillment-add-to-cart-button"), "sold out"):
		inStock = false
	default:
		inStock = textInStock(doc, []string{"sold out"})
	}

	return &pricetag.Result{
		Price:   runStrategies(doc, strategies),
		InStock: inStock,
	}, nil
}
