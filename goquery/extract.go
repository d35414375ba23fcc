package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

// strategy attempts to extract a validated price from a parsed document.
// Strategies that find no valid candidate return false; the next strategy
// in the chain runs.
type strategy func(doc *goquery.Document) (float64, bool)

// runStrategies tries each strategy in order and returns the first
// validated price. Returns nil when the chain is exhausted.
func runStrategies(doc *goquery.Document, strategies []strategy) *float64 {
	for _, s := range strategies {
		if v, ok := s(doc); ok {
			return &v
		}
	}
	return nil
}

// parseDoc parses an HTML snapshot into a queryable document.
func parseDoc(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pricetag.Errorf(pricetag.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// pagePath returns the path component of a page URL for scoping structured
// data to the main product. Malformed URLs degrade to an empty path, which
// disables scoping.
func pagePath(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Path
}

// containsText reports whether the selection's text contains the phrase,
// case-insensitively.
func containsText(sel *goquery.Selection, phrase string) bool {
	return strings.Contains(strings.ToLower(sel.Text()), phrase)
}
