package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher returns queued results, one per Fetch call, and counts calls.
type stubFetcher struct {
	results []fetchResult
	calls   int
}

type fetchResult struct {
	catalog Catalog
	err     error
}

func (s *stubFetcher) Fetch(ctx context.Context) (Catalog, error) {
	res := s.results[s.calls]
	s.calls++
	return res.catalog, res.err
}

func newTestService(fetcher *stubFetcher, ttl time.Duration) (*Service, *time.Time) {
	svc := NewService(fetcher, ttl)
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestService_CachesWithinTTL(t *testing.T) {
	fetcher := &stubFetcher{results: []fetchResult{
		{catalog: testCatalog()},
	}}
	svc, _ := newTestService(fetcher, 5*time.Minute)

	first, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	second, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.calls)
}

func TestService_RefetchesAfterTTL(t *testing.T) {
	fetcher := &stubFetcher{results: []fetchResult{
		{catalog: testCatalog()},
		{catalog: Catalog{}},
	}}
	svc, now := newTestService(fetcher, 5*time.Minute)

	_, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	*now = now.Add(6 * time.Minute)
	got, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 2, fetcher.calls)
}

func TestService_ColdCacheFailureIsReturned(t *testing.T) {
	boom := errors.New("feed unreachable")
	fetcher := &stubFetcher{results: []fetchResult{{err: boom}}}
	svc, _ := newTestService(fetcher, time.Minute)

	_, err := svc.Catalog(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestService_ServesStaleOnExpiredRefreshFailure(t *testing.T) {
	fetcher := &stubFetcher{results: []fetchResult{
		{catalog: testCatalog()},
		{err: errors.New("feed unreachable")},
	}}
	svc, now := newTestService(fetcher, time.Minute)

	first, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	*now = now.Add(2 * time.Minute)
	got, err := svc.Catalog(context.Background())
	require.NoError(t, err, "stale catalog is served instead of the error")
	assert.Equal(t, first, got)
}

func TestService_RefreshForcesFetchWithinTTL(t *testing.T) {
	fetcher := &stubFetcher{results: []fetchResult{
		{catalog: testCatalog()},
		{catalog: Catalog{}},
	}}
	svc, _ := newTestService(fetcher, time.Hour)

	_, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 2, fetcher.calls)
}

func TestService_RefreshFailureKeepsLastGoodCatalog(t *testing.T) {
	fetcher := &stubFetcher{results: []fetchResult{
		{catalog: testCatalog()},
		{err: errors.New("feed unreachable")},
	}}
	svc, _ := newTestService(fetcher, time.Hour)

	first, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background())
	assert.Error(t, err, "explicit retry reports the failure")

	got, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, got)
}
