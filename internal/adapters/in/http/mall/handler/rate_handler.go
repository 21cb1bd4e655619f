// internal/adapters/in/http/mall/handler/rate_handler.go
package mallHandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wingx/internal/adapters/in/http/handlers/common"
	usecase "wingx/internal/application/usecase"
	"wingx/internal/domain/exchange"
)

// RateHandler serves /mall/rate.
type RateHandler struct {
	rates *usecase.RateUsecase
}

func NewRateHandler(rates *usecase.RateUsecase) *RateHandler {
	return &RateHandler{rates: rates}
}

// rateResponse reports the resolved quote; Source already tells the client
// whether it came from a live fetch, the cache, or the fallback default.
type rateResponse struct {
	Rate      float64         `json:"rate"`
	Source    exchange.Source `json:"source"`
	FetchedAt string          `json:"fetchedAt"`
}

func (h *RateHandler) get(w http.ResponseWriter, r *http.Request) {
	q := h.rates.Current(r.Context())
	common.WriteJSON(w, http.StatusOK, rateResponse{
		Rate:      q.Rate,
		Source:    q.Source,
		FetchedAt: q.FetchedAt.UTC().Format(time.RFC3339),
	})
}

func (h *RateHandler) Mount(r chi.Router) {
	r.Get("/rate", h.get)
}
