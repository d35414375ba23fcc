// Package goquery implements the price-extraction engine on top of parsed
// HTML snapshots. Each retailer gets a rule set: an ordered chain of
// extraction strategies (selector probing, JSON-LD, microdata, free-text
// scanning) tried in sequence until one yields a validated price. A generic
// rule set covers unrecognized sites.
package goquery

import (
	"strings"

	"github.com/fwojciec/pricetag"
)

// Ensure Router implements pricetag.Router at compile time.
var _ pricetag.Router = (*Router)(nil)

// Router dispatches page URLs to retailers by substring containment.
// Routes are evaluated in registration order and the first match wins, so a
// domain that contains another registered domain as a substring must be
// registered before it.
type Router struct {
	routes []route
}

type route struct {
	substr   string
	retailer pricetag.Retailer
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{}
}

// Add registers a URL substring for a retailer. Registration order is
// match priority.
func (r *Router) Add(substr string, retailer pricetag.Retailer) {
	r.routes = append(r.routes, route{substr: substr, retailer: retailer})
}

// Route returns the first registered retailer whose substring is contained
// in pageURL. Unmatched and malformed URLs return RetailerUnknown; routing
// never fails.
func (r *Router) Route(pageURL string) pricetag.Retailer {
	for _, rt := range r.routes {
		if strings.Contains(pageURL, rt.substr) {
			return rt.retailer
		}
	}
	return pricetag.RetailerUnknown
}

// DefaultRouter returns a Router preloaded with the supported retailers in
// their canonical priority order.
func DefaultRouter() *Router {
	r := NewRouter()
	r.Add("amazon.", pricetag.RetailerAmazon)
	r.Add("target.com", pricetag.RetailerTarget)
	r.Add("walmart.com", pricetag.RetailerWalmart)
	r.Add("bestbuy.com", pricetag.RetailerBestBuy)
	r.Add("ebay.", pricetag.RetailerEbay)
	r.Add("etsy.com", pricetag.RetailerEtsy)
	return r
}
