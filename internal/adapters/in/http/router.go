// internal/adapters/in/http/router.go
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	adminHandler "wingx/internal/adapters/in/http/admin/handler"
	"wingx/internal/adapters/in/http/handlers/common"
	mallHandler "wingx/internal/adapters/in/http/mall/handler"
	"wingx/internal/adapters/in/http/middleware"
)

// RouterDeps carries everything the HTTP surface needs.
type RouterDeps struct {
	Cart     *mallHandler.CartHandler
	Wishlist *mallHandler.WishlistHandler
	Rate     *mallHandler.RateHandler
	Checkout *mallHandler.CheckoutHandler
	Order    *mallHandler.OrderHandler

	Verification *adminHandler.VerificationHandler

	FirebaseAuth   *middleware.FirebaseAuthClient
	AllowedOrigins []string
}

// NewRouter assembles the storefront and admin surfaces. Chain order matters:
// CORS outermost, then recover, then identity.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(middleware.Recover)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/mall", func(m chi.Router) {
		m.Use(middleware.OptionalIdentity(deps.FirebaseAuth))

		deps.Cart.Mount(m)
		deps.Wishlist.Mount(m)
		deps.Rate.Mount(m)
		deps.Checkout.Mount(m)
		deps.Order.Mount(m)
	})

	r.Route("/admin", func(a chi.Router) {
		a.Use(middleware.RequireIdentity(deps.FirebaseAuth))

		deps.Verification.Mount(a)
	})

	return r
}
