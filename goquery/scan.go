package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
)

// rejectedPriceLabels disqualify free-text candidates labeled as a
// non-current price, beyond what the strikethrough filter catches.
var rejectedPriceLabels = []string{"was", "regular", "compare", "originally", "list price", "rrp", "msrp"}

// rejectedLabelRE matches the labels as whole words, so product copy that
// merely contains one as a substring ("Dishwasher") is not rejected.
var rejectedLabelRE = regexp.MustCompile(`\b(was|regular|compare|originally|list price|rrp|msrp)\b`)

// scanPriceText is the last-resort strategy of the generic rule set: scan
// elements whose class or id names look price-related and take the first
// surviving valid price. If the page-wide pass finds nothing, a narrower
// pass restricted to the purchase/buy-button area runs.
func scanPriceText(doc *goquery.Document, ceiling float64, exclude string) (float64, bool) {
	if v, ok := scanWithin(doc.Selection, ceiling, exclude); ok {
		return v, true
	}
	return scanBuyArea(doc, ceiling, exclude)
}

// scanBuyArea is the narrowest pass: within the purchase/buy-button area
// any text is fair game, since pages that reach this point name their
// price elements unrecognizably.
func scanBuyArea(doc *goquery.Document, ceiling float64, exclude string) (float64, bool) {
	var price float64
	found := false

	doc.Find(`[class*="buy"], [id*="buy"], [class*="add-to-cart"], form[action*="cart"]`).
		EachWithBreak(func(_ int, area *goquery.Selection) bool {
			if exclude != "" && area.Closest(exclude).Length() > 0 {
				return true
			}
			if isSuperseded(area) || labeledNonCurrent(area) {
				return true
			}
			if v, ok := pricetag.ParsePrice(area.Text(), ceiling); ok {
				price, found = v, true
				return false
			}
			return true
		})
	return price, found
}

func scanWithin(root *goquery.Selection, ceiling float64, exclude string) (float64, bool) {
	var price float64
	found := false

	root.Find(`[class*="price"], [id*="price"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if exclude != "" && sel.Closest(exclude).Length() > 0 {
			return true
		}
		if isSuperseded(sel) {
			return true
		}
		if labeledNonCurrent(sel) {
			return true
		}
		if v, ok := pricetag.ParsePrice(sel.Text(), ceiling); ok {
			price, found = v, true
			return false
		}
		return true
	})
	return price, found
}

// labeledNonCurrent rejects candidates whose own text or class/id labels
// them as a "was/regular/compare" style price. Class and id names match on
// substrings ("was-price"); visible text must carry the label as a whole
// word.
func labeledNonCurrent(sel *goquery.Selection) bool {
	attrs := strings.ToLower(sel.AttrOr("class", "") + " " + sel.AttrOr("id", ""))
	for _, label := range rejectedPriceLabels {
		if strings.Contains(attrs, label) {
			return true
		}
	}
	return rejectedLabelRE.MatchString(strings.ToLower(sel.Text()))
}
