// internal/adapters/in/http/mall/handler/cart_handler.go
package mallHandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingx/internal/adapters/in/http/handlers/common"
	usecase "wingx/internal/application/usecase"
	cartdom "wingx/internal/domain/cart"
	productdom "wingx/internal/domain/product"
)

// CartHandler serves /mall/cart. Products are hydrated from the catalog on
// add so the cart snapshot always comes from a parsed record, never from
// client-supplied product fields.
type CartHandler struct {
	cart     *usecase.CartUsecase
	products productdom.Repository
}

func NewCartHandler(cart *usecase.CartUsecase, products productdom.Repository) *CartHandler {
	return &CartHandler{cart: cart, products: products}
}

type cartResponse struct {
	Items      []cartdom.Item `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice float64        `json:"totalPrice"`
	OpenCart   bool           `json:"openCart,omitempty"`
}

func (h *CartHandler) get(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, cartResponse{
		Items:      h.cart.Items(),
		TotalItems: h.cart.TotalItems(),
		TotalPrice: h.cart.TotalPrice(),
		OpenCart:   h.cart.ConsumeOpenSignal(),
	})
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	p, err := h.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	res, err := h.cart.Add(p, req.Size, req.Color)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	result := "added"
	if res == cartdom.ResultQuantityUpdated {
		result = "quantity_updated"
	}
	common.WriteJSON(w, http.StatusOK, map[string]any{
		"result":     result,
		"totalItems": h.cart.TotalItems(),
	})
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	cartItemID := chi.URLParam(r, "cartItemId")

	var req updateQuantityRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteErrorCode(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.cart.UpdateQuantity(cartItemID, req.Delta); err != nil {
		common.WriteError(w, err)
		return
	}
	h.get(w, r)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Remove(chi.URLParam(r, "cartItemId")); err != nil {
		common.WriteError(w, err)
		return
	}
	h.get(w, r)
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"result": "cleared"})
}

// Mount registers the cart routes.
func (h *CartHandler) Mount(r chi.Router) {
	r.Get("/cart", h.get)
	r.Post("/cart/items", h.addItem)
	r.Patch("/cart/items/{cartItemId}", h.updateQuantity)
	r.Delete("/cart/items/{cartItemId}", h.removeItem)
	r.Delete("/cart", h.clear)
}
