// internal/domain/exchange/ports.go
package exchange

import "context"

// Fetcher is the outbound port for the external rate provider.
// Any non-2xx response or malformed body surfaces as an error; the service
// layer absorbs it through the cache/default fallback chain.
type Fetcher interface {
	FetchRate(ctx context.Context) (float64, error)
}

// Cache persists the last known {rate, timestamp} pair across restarts.
type Cache interface {
	// Load returns the cached quote. ok=false means no cache exists.
	Load() (q Quote, ok bool, err error)
	Save(q Quote) error
}
