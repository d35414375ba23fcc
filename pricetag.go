// Package pricetag extracts the current price and stock status of a product
// from a retailer page. Given an HTML snapshot and its source URL it resolves
// a single authoritative price from heterogeneous markup: competing price
// elements, struck-through "was" prices, JSON-LD structured data, microdata,
// and free-text fallbacks.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/).
package pricetag
