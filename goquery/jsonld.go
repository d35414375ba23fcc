package goquery

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pricetag"
	"github.com/kaptinlin/jsonrepair"
)

// structuredData holds the signals recovered from a page's embedded
// schema.org metadata.
type structuredData struct {
	price    float64
	hasPrice bool
	inStock  *bool // nil when no availability field was present
}

// parseJSONLD scans every ld+json script block for Product records and
// returns the first validated offer price and availability in document
// order. Malformed blocks are repaired and re-parsed; blocks that still
// fail are skipped.
//
// Pages embedding structured data for recommended products carry several
// Product records; when pagePath is non-empty the record identifying
// itself with the current path is preferred, falling back to the first
// record in document order.
func parseJSONLD(doc *goquery.Document, ceiling float64, pagePath string) structuredData {
	var products []map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		for _, rec := range decodeRecords(sel.Text()) {
			if isProduct(rec) {
				products = append(products, rec)
			}
		}
	})

	var sd structuredData
	for _, product := range orderByPath(products, pagePath) {
		for _, offer := range offersOf(product) {
			if !sd.hasPrice {
				if v, ok := offerPrice(offer, ceiling); ok {
					sd.price, sd.hasPrice = v, true
				}
			}
			if sd.inStock == nil {
				if inStock, ok := availability(offer); ok {
					sd.inStock = &inStock
				}
			}
		}
		if sd.hasPrice && sd.inStock != nil {
			break
		}
	}
	return sd
}

// decodeRecords parses one script block into flat records, normalizing the
// possible shapes: a single record, an array of records, or a @graph
// wrapper array.
func decodeRecords(text string) []map[string]any {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		// Publishers ship trailing commas and unquoted keys; repair and
		// retry before giving up on the block.
		repaired, repairErr := jsonrepair.JSONRepair(text)
		if repairErr != nil {
			return nil
		}
		if err := json.Unmarshal([]byte(repaired), &v); err != nil {
			return nil
		}
	}
	return flattenRecords(v)
}

func flattenRecords(v any) []map[string]any {
	switch t := v.(type) {
	case []any:
		var records []map[string]any
		for _, item := range t {
			records = append(records, flattenRecords(item)...)
		}
		return records
	case map[string]any:
		if graph, ok := t["@graph"].([]any); ok {
			var records []map[string]any
			for _, item := range graph {
				records = append(records, flattenRecords(item)...)
			}
			return records
		}
		return []map[string]any{t}
	}
	return nil
}

// isProduct checks the record's @type, which may be a string or an array
// of strings.
func isProduct(rec map[string]any) bool {
	switch t := rec["@type"].(type) {
	case string:
		return t == "Product"
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == "Product" {
				return true
			}
		}
	}
	return false
}

// orderByPath moves the product record whose url or @id matches pagePath
// to the front, preserving document order otherwise.
func orderByPath(products []map[string]any, pagePath string) []map[string]any {
	if pagePath == "" || pagePath == "/" || len(products) < 2 {
		return products
	}
	for i, product := range products {
		if productMatchesPath(product, pagePath) {
			ordered := make([]map[string]any, 0, len(products))
			ordered = append(ordered, product)
			ordered = append(ordered, products[:i]...)
			ordered = append(ordered, products[i+1:]...)
			return ordered
		}
	}
	return products
}

func productMatchesPath(product map[string]any, pagePath string) bool {
	for _, key := range []string{"url", "@id"} {
		if s, ok := product[key].(string); ok && strings.Contains(s, pagePath) {
			return true
		}
	}
	return false
}

// offersOf normalizes the offers field, which may be a single offer object
// or an array of offers.
func offersOf(product map[string]any) []map[string]any {
	switch t := product["offers"].(type) {
	case map[string]any:
		return []map[string]any{t}
	case []any:
		var offers []map[string]any
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				offers = append(offers, m)
			}
		}
		return offers
	}
	return nil
}

// offerPrice reads the offer's price, preferring the aggregate lowPrice
// field over the singular price when both are present. Structured-data
// numerics are taken as-is, without re-parsing or rounding.
func offerPrice(offer map[string]any, ceiling float64) (float64, bool) {
	for _, key := range []string{"lowPrice", "price"} {
		v, ok := numericValue(offer[key])
		if !ok {
			continue
		}
		if pricetag.ValidPrice(v, ceiling) {
			return v, true
		}
	}
	return 0, false
}

func numericValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(strings.Map(func(r rune) rune {
			switch r {
			case '$', '£', '€', ',':
				return -1
			}
			return r
		}, t))
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// availability interprets the offer's schema.org availability token.
// Negative tokens are checked first since availability values are usually
// full schema.org URLs.
func availability(offer map[string]any) (inStock bool, ok bool) {
	s, isString := offer["availability"].(string)
	if !isString {
		return false, false
	}
	token := strings.ToLower(s)

	for _, negative := range []string{"outofstock", "soldout", "discontinued"} {
		if strings.Contains(token, negative) {
			return false, true
		}
	}
	for _, positive := range []string{"instock", "preorder", "presale", "limitedavailability"} {
		if strings.Contains(token, positive) {
			return true, true
		}
	}
	return false, false
}
