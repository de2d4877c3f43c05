package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/newsletter"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

type subscribePayload struct {
	Email string `json:"email"`
}

type subscriptionResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	CouponCode   string    `json:"coupon_code"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// NewsletterSubscribe stores a signup and returns the welcome coupon.
func NewsletterSubscribe(svc newsletter.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload subscribePayload
		if err := validators.DecodeJSON(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		sub, err := svc.Subscribe(ctx, payload.Email, middleware.ClientIP(r))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, subscriptionResponse{
			ID:           sub.ID,
			Email:        sub.Email,
			CouponCode:   sub.CouponCode,
			SubscribedAt: sub.SubscribedAt,
		})
	}
}
