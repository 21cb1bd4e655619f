// internal/application/usecase/rate_usecase.go
package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"wingx/internal/domain/exchange"
)

// RateUsecase resolves the USD to Bs exchange rate. Resolution never fails:
// fresh cache, then live fetch, then stale cache, then the hardcoded default.
type RateUsecase struct {
	fetcher exchange.Fetcher
	cache   exchange.Cache
	clock   Clock

	mu      sync.Mutex
	current exchange.Quote
	loaded  bool
	loading bool
}

func NewRateUsecase(fetcher exchange.Fetcher, cache exchange.Cache) *RateUsecase {
	return &RateUsecase{fetcher: fetcher, cache: cache, clock: systemClock{}}
}

// NewRateUsecaseWithClock is useful for tests.
func NewRateUsecaseWithClock(fetcher exchange.Fetcher, cache exchange.Cache, clock Clock) *RateUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &RateUsecase{fetcher: fetcher, cache: cache, clock: clock}
}

// Current returns the active quote, resolving it on first use or when the
// in-memory quote has aged past the cache TTL. The lock is never held across
// the network round-trip; concurrent callers during a resolution get the
// previous quote (or the default) instead of blocking.
func (uc *RateUsecase) Current(ctx context.Context) exchange.Quote {
	uc.mu.Lock()
	now := uc.clock.Now()
	if uc.loaded && uc.current.Fresh(now) {
		q := uc.current
		uc.mu.Unlock()
		return q
	}
	if uc.loading {
		q := uc.current
		if !uc.loaded {
			q = exchange.Quote{Rate: exchange.DefaultRate, FetchedAt: now, Source: exchange.SourceDefault}
		}
		uc.mu.Unlock()
		return q
	}
	uc.loading = true
	uc.mu.Unlock()

	q := uc.resolve(ctx, now)

	uc.mu.Lock()
	uc.current = q
	uc.loaded = true
	uc.loading = false
	uc.mu.Unlock()
	return q
}

// Refresh forces a resolution pass regardless of freshness.
func (uc *RateUsecase) Refresh(ctx context.Context) exchange.Quote {
	uc.mu.Lock()
	now := uc.clock.Now()
	uc.loading = true
	uc.mu.Unlock()

	q := uc.resolve(ctx, now)

	uc.mu.Lock()
	uc.current = q
	uc.loaded = true
	uc.loading = false
	uc.mu.Unlock()
	return q
}

// ConvertToBs converts a USD amount using the current rate.
func (uc *RateUsecase) ConvertToBs(ctx context.Context, usd float64) float64 {
	return uc.Current(ctx).ConvertToBs(usd)
}

// Run refreshes the rate once per TTL period until ctx is cancelled.
func (uc *RateUsecase) Run(ctx context.Context) {
	ticker := time.NewTicker(exchange.CacheTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q := uc.Refresh(ctx)
			log.Printf("[rate] refreshed: %.4f Bs/USD (source=%s)", q.Rate, q.Source)
		}
	}
}

func (uc *RateUsecase) resolve(ctx context.Context, now time.Time) exchange.Quote {
	// 1. Fresh persisted cache wins; no network round-trip.
	cached, ok, err := uc.cache.Load()
	if err != nil {
		log.Printf("[rate] cache read failed: %v", err)
	}
	if ok && cached.Fresh(now) {
		cached.Source = exchange.SourceCache
		return cached
	}

	// 2. Live fetch.
	rate, err := uc.fetcher.FetchRate(ctx)
	if err == nil {
		q := exchange.Quote{Rate: rate, FetchedAt: now, Source: exchange.SourceLive}
		if saveErr := uc.cache.Save(q); saveErr != nil {
			log.Printf("[rate] cache write failed: %v", saveErr)
		}
		return q
	}
	log.Printf("[rate] fetch failed: %v", err)

	// 3. Stale cache beats the hardcoded default.
	if ok && cached.Rate > 0 {
		cached.Source = exchange.SourceStale
		return cached
	}

	// 4. Last resort.
	return exchange.Quote{Rate: exchange.DefaultRate, FetchedAt: now, Source: exchange.SourceDefault}
}
