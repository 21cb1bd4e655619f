// internal/adapters/in/http/admin/handler/verification_handler.go
package adminHandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingx/internal/adapters/in/http/handlers/common"
	usecase "wingx/internal/application/usecase"
	orderdom "wingx/internal/domain/order"
)

// VerificationHandler is the human-verifier surface: the pending queue plus
// the approve/reject decisions.
type VerificationHandler struct {
	orders *usecase.OrderUsecase
}

func NewVerificationHandler(orders *usecase.OrderUsecase) *VerificationHandler {
	return &VerificationHandler{orders: orders}
}

func (h *VerificationHandler) listPending(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListPendingVerification(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if orders == nil {
		orders = []orderdom.Order{}
	}
	common.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *VerificationHandler) approve(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, o)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *VerificationHandler) reject(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	// Body is optional; an empty reason falls back to the stock message.
	_ = common.DecodeJSON(r, &req)

	o, err := h.orders.Reject(r.Context(), chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, o)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *VerificationHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	o, err := h.orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), orderdom.Status(req.Status))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, o)
}

func (h *VerificationHandler) Mount(r chi.Router) {
	r.Get("/orders/pending", h.listPending)
	r.Post("/orders/{id}/approve", h.approve)
	r.Post("/orders/{id}/reject", h.reject)
	r.Post("/orders/{id}/status", h.updateStatus)
}
