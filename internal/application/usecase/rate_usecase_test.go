// internal/application/usecase/rate_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wingx/internal/domain/exchange"
)

type fakeFetcher struct {
	rate  float64
	err   error
	calls int
}

func (f *fakeFetcher) FetchRate(ctx context.Context) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}

type fakeRateCache struct {
	quote  exchange.Quote
	exists bool
	saved  []exchange.Quote
}

func (c *fakeRateCache) Load() (exchange.Quote, bool, error) { return c.quote, c.exists, nil }

func (c *fakeRateCache) Save(q exchange.Quote) error {
	c.saved = append(c.saved, q)
	c.quote, c.exists = q, true
	return nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestRateUsecase_FreshCacheSkipsFetch(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{rate: 120}
	cache := &fakeRateCache{
		quote:  exchange.Quote{Rate: 105, FetchedAt: now.Add(-10 * time.Minute)},
		exists: true,
	}
	uc := NewRateUsecaseWithClock(fetcher, cache, fixedClock{now})

	q := uc.Current(context.Background())
	assert.Equal(t, 105.0, q.Rate)
	assert.Equal(t, exchange.SourceCache, q.Source)
	assert.Zero(t, fetcher.calls)
}

func TestRateUsecase_LiveFetchOnStaleCache(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{rate: 120}
	cache := &fakeRateCache{
		quote:  exchange.Quote{Rate: 105, FetchedAt: now.Add(-2 * time.Hour)},
		exists: true,
	}
	uc := NewRateUsecaseWithClock(fetcher, cache, fixedClock{now})

	q := uc.Current(context.Background())
	assert.Equal(t, 120.0, q.Rate)
	assert.Equal(t, exchange.SourceLive, q.Source)
	assert.Len(t, cache.saved, 1, "live rate is written back to cache")
}

func TestRateUsecase_StaleCacheBeatsDefaultWhenFetchFails(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{err: errors.New("api down")}
	cache := &fakeRateCache{
		quote:  exchange.Quote{Rate: 98, FetchedAt: now.Add(-48 * time.Hour)},
		exists: true,
	}
	uc := NewRateUsecaseWithClock(fetcher, cache, fixedClock{now})

	q := uc.Current(context.Background())
	assert.Equal(t, 98.0, q.Rate)
	assert.Equal(t, exchange.SourceStale, q.Source)
}

func TestRateUsecase_DefaultWhenNothingAvailable(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("api down")}
	uc := NewRateUsecaseWithClock(fetcher, &fakeRateCache{}, fixedClock{time.Now()})

	q := uc.Current(context.Background())
	assert.Equal(t, exchange.DefaultRate, q.Rate)
	assert.Equal(t, exchange.SourceDefault, q.Source)
}

func TestRateUsecase_CurrentMemoizesUntilTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{rate: 120}
	uc := NewRateUsecaseWithClock(fetcher, &fakeRateCache{}, fixedClock{now})

	uc.Current(context.Background())
	uc.Current(context.Background())
	assert.Equal(t, 1, fetcher.calls)
}

func TestRateUsecase_ConvertToBs(t *testing.T) {
	fetcher := &fakeFetcher{rate: 50}
	uc := NewRateUsecaseWithClock(fetcher, &fakeRateCache{}, fixedClock{time.Now()})

	assert.InDelta(t, 1234.5, uc.ConvertToBs(context.Background(), 24.69), 1e-9)
}
