package controllers

import (
	"net/http"

	"github.com/angelmondragon/storefront-backend/api/controllers/dto"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

type homeResponse struct {
	BestSellers []dto.Product `json:"best_sellers"`
	NewArrivals []dto.Product `json:"new_arrivals"`
	CartCount   int           `json:"cart_count"`
}

// Home bundles the landing page sections with the header cart badge.
func Home(products catalog.Service, carts cart.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID, ok := requireSession(w, r, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, homeResponse{
			BestSellers: pr.Products(products.BestSellers(ctx, 0)),
			NewArrivals: pr.Products(products.Showcase(ctx, enums.ShowcaseFilterNew, 0)),
			CartCount:   carts.Count(ctx, sessionID),
		})
	}
}
