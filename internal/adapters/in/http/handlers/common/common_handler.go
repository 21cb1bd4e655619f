// internal/adapters/in/http/handlers/common/common_handler.go
package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	usecase "wingx/internal/application/usecase"
	orderdom "wingx/internal/domain/order"
	productdom "wingx/internal/domain/product"
)

// maxBodyBytes caps request bodies; checkout payloads are small.
const maxBodyBytes = 1 << 20

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErrorCode writes a bare {"error": code} body.
func WriteErrorCode(w http.ResponseWriter, status int, code string) {
	WriteJSON(w, status, map[string]string{"error": code})
}

// DecodeJSON reads and unmarshals a bounded request body.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// WriteError maps domain and usecase errors onto HTTP statuses. Anything
// unrecognized becomes a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation_failed",
			"fields": verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, orderdom.ErrNotFound), errors.Is(err, productdom.ErrNotFound):
		WriteErrorCode(w, http.StatusNotFound, "not_found")
	case errors.Is(err, orderdom.ErrConflict):
		WriteErrorCode(w, http.StatusConflict, "conflict")
	case errors.Is(err, usecase.ErrOrderInvalidTransition):
		WriteErrorCode(w, http.StatusConflict, "invalid_transition")
	case errors.Is(err, usecase.ErrCheckoutEmptyCart):
		WriteErrorCode(w, http.StatusConflict, "cart_empty")
	case errors.Is(err, usecase.ErrCheckoutNotOpen), errors.Is(err, usecase.ErrCheckoutWrongStep):
		WriteErrorCode(w, http.StatusConflict, "wrong_step")
	case errors.Is(err, usecase.ErrCartVariantRequired):
		WriteErrorCode(w, http.StatusUnprocessableEntity, "size_required")
	case errors.Is(err, usecase.ErrCartNotHydrated):
		WriteErrorCode(w, http.StatusServiceUnavailable, "cart_unavailable")
	case errors.Is(err, usecase.ErrOrderInvalidArgument),
		errors.Is(err, orderdom.ErrInvalidItems),
		errors.Is(err, orderdom.ErrInvalidTotal),
		errors.Is(err, orderdom.ErrInvalidCustomer),
		errors.Is(err, orderdom.ErrInvalidReport),
		errors.Is(err, productdom.ErrInvalidID):
		WriteErrorCode(w, http.StatusBadRequest, "invalid_argument")
	default:
		WriteErrorCode(w, http.StatusInternalServerError, "could_not_process")
	}
}
