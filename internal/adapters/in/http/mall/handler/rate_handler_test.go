// internal/adapters/in/http/mall/handler/rate_handler_test.go
package mallHandler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "wingx/internal/application/usecase"
	"wingx/internal/domain/exchange"
)

type stubFetcher struct {
	rate float64
	err  error
}

func (f stubFetcher) FetchRate(ctx context.Context) (float64, error) { return f.rate, f.err }

type stubRateCache struct{}

func (stubRateCache) Load() (exchange.Quote, bool, error) { return exchange.Quote{}, false, nil }
func (stubRateCache) Save(exchange.Quote) error           { return nil }

func TestRateHandler_ReturnsQuoteWithSource(t *testing.T) {
	rateUC := usecase.NewRateUsecase(stubFetcher{rate: 123.45}, stubRateCache{})

	r := chi.NewRouter()
	NewRateHandler(rateUC).Mount(r)

	rec := doJSON(t, r, http.MethodGet, "/rate", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 123.45, body["rate"])
	assert.Equal(t, string(exchange.SourceLive), body["source"])

	fetchedAt, ok := body["fetchedAt"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, fetchedAt)
	assert.NoError(t, err)

	// The quote is resolved before the response is written, so there is no
	// in-flight state to report. Source alone carries the provenance.
	assert.NotContains(t, body, "isLoading")
}

func TestRateHandler_FallsBackToDefaultOnFetchFailure(t *testing.T) {
	rateUC := usecase.NewRateUsecase(stubFetcher{err: context.DeadlineExceeded}, stubRateCache{})

	r := chi.NewRouter()
	NewRateHandler(rateUC).Mount(r)

	rec := doJSON(t, r, http.MethodGet, "/rate", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, exchange.DefaultRate, body["rate"])
	assert.Equal(t, string(exchange.SourceDefault), body["source"])
}
