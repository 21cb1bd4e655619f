// internal/adapters/in/http/mall/handler/wishlist_handler.go
package mallHandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingx/internal/adapters/in/http/handlers/common"
	usecase "wingx/internal/application/usecase"
	productdom "wingx/internal/domain/product"
)

// WishlistHandler serves /mall/wishlist.
type WishlistHandler struct {
	wishlist *usecase.WishlistUsecase
	products productdom.Repository
}

func NewWishlistHandler(wishlist *usecase.WishlistUsecase, products productdom.Repository) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, products: products}
}

func (h *WishlistHandler) get(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]any{"items": h.wishlist.Items()})
}

func (h *WishlistHandler) toggle(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.GetByID(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		common.WriteError(w, err)
		return
	}

	in, err := h.wishlist.Toggle(p)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]any{"inWishlist": in})
}

func (h *WishlistHandler) Mount(r chi.Router) {
	r.Get("/wishlist", h.get)
	r.Post("/wishlist/{productId}", h.toggle)
}
