package pricetag

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultCeiling is the upper implausibility bound applied to parsed prices
// when a rule set does not configure its own. Rule sets tuned for cheaper
// catalogs use a lower bound.
const DefaultCeiling = 100000

// priceRE matches a currency amount: an optional currency symbol, digits
// with optional thousands separators, and an optional two-digit fraction.
var priceRE = regexp.MustCompile(`[$£€]?\s*(\d{1,3}(?:,\d{3})+|\d+)(?:\.(\d{2}))?`)

// ParsePrice extracts the first currency amount from a text fragment.
// Thousands separators are stripped and the value is rounded to cent
// precision. Returns false for text with no amount, non-positive values,
// and values at or above the ceiling. A ceiling of zero or below means
// DefaultCeiling.
func ParsePrice(text string, ceiling float64) (float64, bool) {
	m := priceRE.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	raw := strings.ReplaceAll(m[1], ",", "")
	if m[2] != "" {
		raw += "." + m[2]
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	v = math.Round(v*100) / 100

	if !ValidPrice(v, ceiling) {
		return 0, false
	}
	return v, true
}

// ValidPrice reports whether v is a plausible consumer-goods price:
// strictly positive and below the ceiling. Structured-data numerics are
// validated with this directly, without re-parsing or rounding.
func ValidPrice(v float64, ceiling float64) bool {
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	return v > 0 && v < ceiling
}
