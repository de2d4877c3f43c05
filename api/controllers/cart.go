package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront-backend/api/controllers/dto"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

type addCartItemPayload struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=-999,max=999"`
}

func CartFetch(svc cart.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, pr.Cart(svc.Get(r.Context(), sessionID)))
	}
}

func CartCount(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, dto.CartCount{Count: svc.Count(r.Context(), sessionID)})
	}
}

// CartAddItem applies a quantity delta. An omitted quantity adds one unit;
// a negative quantity decrements and drops the line at zero.
func CartAddItem(svc cart.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		delta := 1
		if payload.Quantity != nil {
			delta = *payload.Quantity
		}

		snapshot, err := svc.AddItem(ctx, sessionID, payload.ProductID, delta)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, pr.Cart(snapshot))
	}
}

func CartRemoveItem(svc cart.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		snapshot := svc.RemoveItem(r.Context(), sessionID, chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, pr.Cart(snapshot))
	}
}

func CartClear(svc cart.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, pr.Cart(svc.Clear(r.Context(), sessionID)))
	}
}
