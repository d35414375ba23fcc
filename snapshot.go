package pricetag

import "context"

// SnapshotStore persists raw page HTML so an extraction can be replayed
// offline, for example through the parse command.
type SnapshotStore interface {
	// Save writes the HTML of one product page and returns the path it
	// was written to.
	Save(ctx context.Context, pageURL string, html string) (string, error)
}
