package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Fetcher is the catalog source the Service caches. *Client implements it;
// tests substitute a stub.
type Fetcher interface {
	Fetch(ctx context.Context) (Catalog, error)
}

// Service serves the catalog from an in-memory TTL cache. The page never
// waits on the upstream feed more than once per TTL window, and a failed
// background refresh keeps serving the last good catalog.
type Service struct {
	fetcher Fetcher
	ttl     time.Duration

	mu        sync.Mutex
	catalog   Catalog
	loaded    bool
	fetchedAt time.Time

	now func() time.Time
}

// NewService creates a Service around a fetcher with the given cache TTL.
func NewService(fetcher Fetcher, ttl time.Duration) *Service {
	return &Service{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Catalog returns the cached catalog, fetching when the cache is cold or
// expired. When a refresh of an expired cache fails, the stale catalog is
// returned and the failure is logged: a visitor with a working page should
// not lose it because the feed blipped.
func (s *Service) Catalog(ctx context.Context) (Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.catalog, nil
	}

	fetched, err := s.fetcher.Fetch(ctx)
	if err != nil {
		if s.loaded {
			slog.WarnContext(ctx, "catalog refresh failed, serving stale catalog",
				"error", err, "age", s.now().Sub(s.fetchedAt).String())
			return s.catalog, nil
		}
		return nil, err
	}

	s.store(fetched)
	return fetched, nil
}

// Refresh forces a refetch regardless of TTL. It backs the retry button, so
// a failure is reported to the caller; the previous catalog, if any, stays
// cached.
func (s *Service) Refresh(ctx context.Context) (Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fetched, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.store(fetched)
	return fetched, nil
}

func (s *Service) store(c Catalog) {
	s.catalog = c
	s.loaded = true
	s.fetchedAt = s.now()
}
