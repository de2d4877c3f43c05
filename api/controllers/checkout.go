package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront-backend/api/controllers/dto"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/checkout"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// Checkout places an order from the session cart. Field validation happens in
// the checkout service so the API and service report identical details.
func Checkout(svc checkout.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}

		var req checkout.Request
		if err := validators.DecodeJSON(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		confirmation, err := svc.PlaceOrder(ctx, sessionID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, pr.Confirmation(confirmation))
	}
}
