package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// genericOutOfStockPhrases are the negative-availability text signals used
// by rule sets without store-specific markers.
var genericOutOfStockPhrases = []string{"out of stock", "sold out", "currently unavailable"}

// textInStock reports availability by the absence of negative-availability
// phrases in the page's visible text. Default is in stock; only a positive
// match of a negative signal flips it.
func textInStock(doc *goquery.Document, phrases []string) bool {
	body := strings.ToLower(doc.Find("body").Text())
	for _, phrase := range phrases {
		if strings.Contains(body, phrase) {
			return false
		}
	}
	return true
}

// hasElement reports whether the document contains at least one element
// matching the selector. Used for store-specific structural out-of-stock
// markers such as disabled purchase buttons.
func hasElement(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
