package mock

import (
	"context"

	"github.com/fwojciec/pricetag"
)

var _ pricetag.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pricetag.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ pricetag.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of pricetag.SnapshotStore.
type SnapshotStore struct {
	SaveFn func(ctx context.Context, pageURL string, html string) (string, error)
}

func (s *SnapshotStore) Save(ctx context.Context, pageURL string, html string) (string, error) {
	return s.SaveFn(ctx, pageURL, html)
}

var _ pricetag.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pricetag.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
