// internal/adapters/in/http/mall/handler/checkout_handler.go
package mallHandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingx/internal/adapters/in/http/handlers/common"
	"wingx/internal/adapters/in/http/middleware"
	usecase "wingx/internal/application/usecase"
	orderdom "wingx/internal/domain/order"
)

// CheckoutHandler drives the wizard over /mall/checkout.
type CheckoutHandler struct {
	checkout *usecase.CheckoutUsecase
}

func NewCheckoutHandler(checkout *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func (h *CheckoutHandler) state(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, h.checkout.State())
}

func (h *CheckoutHandler) open(w http.ResponseWriter, r *http.Request) {
	st, err := h.checkout.Open()
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, st)
}

func (h *CheckoutHandler) close(w http.ResponseWriter, r *http.Request) {
	h.checkout.Close()
	common.WriteJSON(w, http.StatusOK, h.checkout.State())
}

func (h *CheckoutHandler) back(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, h.checkout.Back())
}

type infoRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	DeliveryMethod string `json:"deliveryMethod"`
	Notes          string `json:"notes"`
}

func (h *CheckoutHandler) submitInfo(w http.ResponseWriter, r *http.Request) {
	var req infoRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	info := orderdom.CustomerInfo{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		DeliveryMethod: orderdom.DeliveryMethod(req.DeliveryMethod),
	}
	// A signed-in customer gets their verified identity attached; the form
	// fields stay authoritative for everything else.
	if uid, ok := middleware.UIDFromContext(r.Context()); ok {
		info.UserID = uid
	}
	if info.Email == "" {
		if email, ok := middleware.EmailFromContext(r.Context()); ok {
			info.Email = email
		}
	}

	st, err := h.checkout.SubmitInfo(info, req.Notes)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, st)
}

type deliveryMethodRequest struct {
	DeliveryMethod string `json:"deliveryMethod"`
}

func (h *CheckoutHandler) setDeliveryMethod(w http.ResponseWriter, r *http.Request) {
	var req deliveryMethodRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}
	st, err := h.checkout.SetDeliveryMethod(orderdom.DeliveryMethod(req.DeliveryMethod))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, st)
}

func (h *CheckoutHandler) selectPagoMovil(w http.ResponseWriter, r *http.Request) {
	st, instructions, err := h.checkout.SelectPagoMovil(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]any{
		"state":        st,
		"instructions": instructions,
	})
}

type messagingRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

func (h *CheckoutHandler) submitWhatsApp(w http.ResponseWriter, r *http.Request) {
	method := orderdom.PaymentWhatsApp
	var req messagingRequest
	if err := common.DecodeJSON(r, &req); err == nil && req.PaymentMethod == string(orderdom.PaymentEfectivo) {
		method = orderdom.PaymentEfectivo
	}

	res, err := h.checkout.SubmitMessaging(r.Context(), method)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, res)
}

type pagoMovilRequest struct {
	BancoOrigen      string `json:"bancoOrigen"`
	TelefonoOrigen   string `json:"telefonoOrigen"`
	CedulaTitular    string `json:"cedulaTitular"`
	NumeroReferencia string `json:"numeroReferencia"`
	FechaPago        string `json:"fechaPago"`
}

func (h *CheckoutHandler) submitPagoMovil(w http.ResponseWriter, r *http.Request) {
	var req pagoMovilRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	res, err := h.checkout.SubmitPagoMovil(r.Context(), orderdom.PagoMovilReport{
		BancoOrigen:      req.BancoOrigen,
		TelefonoOrigen:   req.TelefonoOrigen,
		CedulaTitular:    req.CedulaTitular,
		NumeroReferencia: req.NumeroReferencia,
		FechaPago:        req.FechaPago,
	})
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, res)
}

func (h *CheckoutHandler) Mount(r chi.Router) {
	r.Get("/checkout", h.state)
	r.Post("/checkout/open", h.open)
	r.Post("/checkout/close", h.close)
	r.Post("/checkout/back", h.back)
	r.Post("/checkout/info", h.submitInfo)
	r.Post("/checkout/delivery-method", h.setDeliveryMethod)
	r.Post("/checkout/pago-movil/select", h.selectPagoMovil)
	r.Post("/checkout/whatsapp", h.submitWhatsApp)
	r.Post("/checkout/pago-movil", h.submitPagoMovil)
}
