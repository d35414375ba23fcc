package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

// probeSelectors tries each CSS selector in order. For every matched
// element it first rejects superseded prices, then parses a price from the
// element's content attribute (structured-data-in-attribute pattern) or its
// text. The first valid, non-rejected candidate wins; selector order is a
// sequence of attempts, not a single winner-takes-all first match.
//
// The exclude selector, when non-empty, scopes out elements sitting inside
// recommendation/carousel/cross-sell containers even if they match a probe.
func probeSelectors(doc *goquery.Document, selectors []string, ceiling float64, exclude string) (float64, bool) {
	var price float64
	found := false

	for _, selector := range selectors {
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
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
		if found {
			return price, true
		}
	}
	return 0, false
}

// candidatePrice parses a price from a candidate element, preferring a
// machine-readable content attribute over rendered text when present.
func candidatePrice(sel *goquery.Selection, ceiling float64) (float64, bool) {
	if content, ok := sel.Attr("content"); ok {
		if v, ok := pricetag.ParsePrice(content, ceiling); ok {
			return v, true
		}
	}
	return pricetag.ParsePrice(sel.Text(), ceiling)
}
