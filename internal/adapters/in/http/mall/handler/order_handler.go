// internal/adapters/in/http/mall/handler/order_handler.go
package mallHandler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingx/internal/adapters/in/http/handlers/common"
	usecase "wingx/internal/application/usecase"
)

// OrderHandler serves /mall/orders: one-shot reads and the live status
// stream the confirmation page subscribes to.
type OrderHandler struct {
	orders *usecase.OrderUsecase
	sync   *usecase.StatusSyncUsecase
}

func NewOrderHandler(orders *usecase.OrderUsecase, sync *usecase.StatusSyncUsecase) *OrderHandler {
	return &OrderHandler{orders: orders, sync: sync}
}

func (h *OrderHandler) get(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, o)
}

// streamStatus projects the snapshot subscription as server-sent events.
// The subscription detaches when the client goes away.
func (h *OrderHandler) streamStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	flusher, ok := w.(http.Flusher)
	if !ok {
		common.WriteErrorCode(w, http.StatusInternalServerError, "streaming_unsupported")
		return
	}

	updates := make(chan usecase.StatusUpdate, 8)
	unsubscribe, err := h.sync.Watch(r.Context(), id, func(u usecase.StatusUpdate) {
		select {
		case updates <- u:
		default:
			// Full buffer: evict the oldest queued update so a slow
			// consumer drops intermediate snapshots, never the newest.
			select {
			case <-updates:
			default:
			}
			select {
			case updates <- u:
			default:
			}
		}
	})
	if err != nil {
		common.WriteError(w, err)
		return
	}
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case u := <-updates:
			payload, merr := json.Marshal(u)
			if merr != nil {
				log.Printf("[order-stream] marshal failed: order=%s err=%v", id, merr)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

func (h *OrderHandler) Mount(r chi.Router) {
	r.Get("/orders/{id}", h.get)
	r.Get("/orders/{id}/status", h.streamStatus)
}
