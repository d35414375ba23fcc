package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

var _ pricetag.SiteExtractor = (*GenericExtractor)(nil)

const genericCeiling = pricetag.DefaultCeiling

// genericExclude scopes out recommendation and cross-sell containers whose
// prices belong to other products.
const genericExclude = `[class*="carousel"], [class*="recommend"], [class*="cross-sell"], [class*="related-products"], [class*="upsell"]`

// genericSelectors cover the class names storefront themes commonly give
// the main product price.
var genericSelectors = []string{
	".product-price .price",
	".price-current",
	".sales-price",
	".product__price",
	".product-price",
	"#price",
	".price",
}

// GenericExtractor is the fallback rule set for unrecognized sites. It runs
// the full strategy chain: selector probing, JSON-LD, microdata, and as a
// last resort a free-text scan of price-looking elements.
type GenericExtractor struct{}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// Name returns the extractor's identifier.
func (e *GenericExtractor) Name() string {
	return "generic"
}

// Extract resolves the current price and availability from any product
// page snapshot.
func (e *GenericExtractor) Extract(html string, pageURL string) (*pricetag.Result, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	sd := parseJSONLD(doc, genericCeiling, pagePath(pageURL))

	strategies := []strategy{
		func(d *goquery.Document) (float64, bool) {
			return probeSelectors(d, genericSelectors, genericCeiling, genericExclude)
		},
		func(*goquery.Document) (float64, bool) {
			return sd.price, sd.hasPrice
		},
		func(d *goquery.Document) (float64, bool) {
			return microdataPrice(d, genericCeiling, genericExclude)
		},
		func(d *goquery.Document) (float64, bool) {
			return scanPriceText(d, genericCeiling, genericExclude)
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
			inStock = textInStock(doc, genericOutOfStockPhrases)
		}
	}

	return &pricetag.Result{
		Price:   runStrategies(doc, strategies),
		InStock: inStock,
	}, nil
}
