package goquery

import "github.com/PuerkitoBio/goquery"

// microdataPrice looks for an element carrying the schema.org price
// microdata marker, preferring the machine-readable content attribute over
// rendered text. Candidates flagged as superseded are skipped.
func microdataPrice(doc *goquery.Document, ceiling float64, exclude string) (float64, bool) {
	var price float64
	found := false

	doc.Find(`[itemprop="price"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if exclude != "" && sel.Closest(exclude).Length() > 0 {
			return true
		}
		if isSuperseded(sel) {
			return true
		}
		if v, ok := candidatePrice(sel, ceiling); ok {
			price, found = v, true
			return false
		}
		return true
	})
	return price, found
}

// microdataAvailability reads the schema.org availability marker, carried
// in an href or content attribute depending on the element.
func microdataAvailability(doc *goquery.Document) (inStock bool, ok bool) {
	doc.Find(`[itemprop="availability"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		token := sel.AttrOr("href", sel.AttrOr("content", ""))
		if token == "" {
			return true
		}
		inStock, ok = availability(map[string]any{"availability": token})
		return !ok
	})
	return inStock, ok
}
