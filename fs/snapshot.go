// Package fs stores fetched product page snapshots on disk.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pricetag"
)

// Ensure Store implements pricetag.SnapshotStore at compile time.
var _ pricetag.SnapshotStore = (*Store)(nil)

// Store writes one HTML file per product page under a base directory.
// Files are grouped by host so snapshots from different retailers do
// not collide.
type Store struct {
	baseDir string
}

// NewStore creates a Store that writes under the given base directory.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes html to a path derived from pageURL and returns the path.
func (s *Store) Save(ctx context.Context, pageURL string, html string) (string, error) {
	relPath, err := urlToPath(pageURL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(html), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

// urlToPath converts a product page URL to a relative file path.
// Example: https://www.amazon.com/dp/B0X → www.amazon.com/dp/B0X.html
func urlToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", pricetag.Errorf(pricetag.EINVALID, "url has no host: %s", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	// Root or trailing slash becomes index.html
	if path == "" || strings.HasSuffix(path, "/") {
		path += "index"
	}

	return filepath.Join(u.Host, path+".html"), nil
}
