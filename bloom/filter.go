// Package bloom provides probabilistic deduplication of product page URLs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// dedupFPRate is the accepted false positive rate. A false positive
// skips a duplicate-looking URL, which at this rate is rarer than a
// user actually pasting the same product twice.
const dedupFPRate = 0.0001

// Dedup tracks product page URLs that have already been seen.
type Dedup struct {
	f *bloom.BloomFilter
}

// NewDedup creates a filter sized for n expected URLs.
func NewDedup(n uint) *Dedup {
	if n == 0 {
		n = 1
	}
	return &Dedup{
		f: bloom.NewWithEstimates(n, dedupFPRate),
	}
}

// Seen records the URL and reports whether it was already present.
// False positives are possible; false negatives are not.
func (d *Dedup) Seen(url string) bool {
	return d.f.TestAndAddString(url)
}

// EstimatedCount returns the approximate number of URLs recorded.
func (d *Dedup) EstimatedCount() uint {
	return uint(d.f.ApproximatedSize())
}
