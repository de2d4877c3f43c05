package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront-backend/api/controllers/dto"
	"github.com/angelmondragon/storefront-backend/api/middleware"
	"github.com/angelmondragon/storefront-backend/api/responses"
	"github.com/angelmondragon/storefront-backend/api/validators"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

const (
	maxSearchLength   = 120
	maxCategoryLength = 64
	maxListSize       = 50
)

// ProductList serves the filtered, sorted and paginated collection page.
// Without a q parameter the shopper's saved search query applies; an
// explicit empty q lists everything.
func ProductList(svc catalog.Service, states searchResolver, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		query, err := parseListQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if !r.URL.Query().Has("q") && states != nil {
			if sessionID, ok := middleware.SessionIDFromContext(ctx); ok {
				query.Search = states.SearchFor(sessionID).Query()
			}
		}

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1_000_000)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.List(ctx, query, pagination.Params{Page: page, Limit: limit})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WritePage(w, pr.Products(result.Items), types.PageMeta{
			Page:    result.Page,
			Limit:   result.Limit,
			Total:   result.Total,
			HasNext: result.HasNext,
		})
	}
}

func parseListQuery(r *http.Request) (catalog.ListQuery, error) {
	q := catalog.ListQuery{
		Category: validators.QueryString(r, "category", maxCategoryLength),
		Search:   validators.QueryString(r, "q", maxSearchLength),
	}

	if raw := validators.QueryString(r, "sort", 32); raw != "" {
		sort, err := enums.ParseSortOrder(strings.ToLower(raw))
		if err != nil {
			return q, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort").WithDetails(map[string]any{"field": "sort"})
		}
		q.Sort = sort
	}

	if minPrice, ok, err := validators.ParseQueryDecimal(r, "min_price"); err != nil {
		return q, err
	} else if ok {
		q.MinPrice = &minPrice
	}
	if maxPrice, ok, err := validators.ParseQueryDecimal(r, "max_price"); err != nil {
		return q, err
	} else if ok {
		q.MaxPrice = &maxPrice
	}
	return q, nil
}

// ProductCategories lists the distinct catalog categories.
func ProductCategories(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Categories(r.Context()))
	}
}

// ProductBestSellers serves the best seller strip. limit=0 uses the configured count.
func ProductBestSellers(svc catalog.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, maxListSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, pr.Products(svc.BestSellers(r.Context(), limit)))
	}
}

// ProductShowcase serves the filtered best-products page.
func ProductShowcase(svc catalog.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter := enums.ShowcaseFilterAll
		if raw := validators.QueryString(r, "filter", 32); raw != "" {
			parsed, err := enums.ParseShowcaseFilter(strings.ToLower(raw))
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid filter").WithDetails(map[string]any{"field": "filter"}))
				return
			}
			filter = parsed
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, maxListSize)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, pr.Products(svc.Showcase(ctx, filter, limit)))
	}
}

// ProductDetail serves a single product or NOT_FOUND.
func ProductDetail(svc catalog.Service, pr dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		product, err := svc.Get(ctx, chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, pr.Product(product))
	}
}
