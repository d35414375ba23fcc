package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

var _ pricetag.SiteExtractor = (*AmazonExtractor)(nil)

// amazonCeiling reflects the breadth of the catalog; Amazon lists items
// well past the ranges of single-category retailers.
const amazonCeiling = 100000

// amazonExclude scopes out carousel and cross-sell widgets whose prices
// would otherwise match the buybox selectors.
const amazonExclude = ".a-carousel, [data-a-carousel-options], #sims-consolidated-1_feature_div, #sims-consolidated-2_feature_div, #similarities_feature_div"

// amazonSelectors probe the buybox price in order of specificity. The
// legacy priceblock ids still appear on older page templates; the
// offscreen span is the current accessible-price pattern.
var amazonSelectors = []string{
	"#corePriceDisplay_desktop_feature_div .a-price .a-offscreen",
	"#corePrice_feature_div .a-price .a-offscreen",
	"#priceblock_ourprice",
	"#priceblock_dealprice",
	"#price_inside_buybox",
	".a-price .a-offscreen",
}

// AmazonExtractor resolves prices on Amazon product pages. Amazon marks
// superseded prices with the a-text-price basis block and a strike data
// attribute in addition to the shared class markers.
type AmazonExtractor struct{}

// NewAmazonExtractor creates a new AmazonExtractor.
func NewAmazonExtractor() *AmazonExtractor {
	return &AmazonExtractor{}
}

// Name returns the extractor's identifier.
func (e *AmazonExtractor) Name() string {
	return "amazon"
}

// Extract resolves the current price and availability from an Amazon
// product page snapshot.
func (e *AmazonExtractor) Extract(html string, pageURL string) (*pricetag.Result, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	strategies := []strategy{
		func(d *goquery.Document) (float64, bool) {
			return probeSelectors(d, amazonSelectors, amazonCeiling, amazonExclude+", .basisPrice, [data-a-strike=\"true\"]")
		},
		func(d *goquery.Document) (float64, bool) {
			sd := parseJSONLD(d, amazonCeiling, pagePath(pageURL))
			return sd.price, sd.hasPrice
		},
	}

	return &pricetag.Result{
		Price:   runStrategies(doc, strategies),
		InStock: e.inStock(doc),
	}, nil
}

// inStock checks the availability block first; Amazon renders "Currently
// unavailable." there for out-of-stock and delisted items.
func (e *AmazonExtractor) inStock(doc *goquery.Document) bool {
	avail := strings.ToLower(doc.Find("#availability").Text())
	if strings.Contains(avail, "unavailable") || strings.Contains(avail, "out of stock") {
		return false
	}
	return textInStock(doc, []string{"currently unavailable"})
}
