package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// supersededClassMarkers flag "was"/"list" prices by class name.
var supersededClassMarkers = []string{"was", "original", "old", "strike", "list-price", "rrp"}

// isSuperseded reports whether the node carries a superseded ("was") price
// rather than the current price: struck-through styling on the node or its
// immediate parent, or a marker class on either. It is applied to every
// candidate before any price parsing is attempted.
func isSuperseded(sel *goquery.Selection) bool {
	parent := sel.Parent()
	if struckThrough(sel) || struckThrough(parent) {
		return true
	}
	return hasSupersededClass(sel) || hasSupersededClass(parent)
}

// struckThrough checks for line-through styling. The engine operates on a
// static snapshot, so the inline style attribute and the strike-semantics
// elements (s, strike, del) stand in for the computed text decoration.
func struckThrough(sel *goquery.Selection) bool {
	if sel.Length() == 0 {
		return false
	}
	if strings.Contains(strings.ToLower(sel.AttrOr("style", "")), "line-through") {
		return true
	}
	switch goquery.NodeName(sel) {
	case "s", "strike", "del":
		return true
	}
	return false
}

func hasSupersededClass(sel *goquery.Selection) bool {
	if sel.Length() == 0 {
		return false
	}
	class := strings.ToLower(sel.AttrOr("class", ""))
	for _, marker := range supersededClassMarkers {
		if strings.Contains(class, marker) {
			return true
		}
	}
	return false
}
