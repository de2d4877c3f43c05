package catalog

import (
	"context"
	"fmt"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/pagination"
)

// ProductPage is one page of a filtered listing.
type ProductPage = pagination.Page[Product]

// Service exposes read-only catalog queries.
type Service interface {
	List(ctx context.Context, query ListQuery, page pagination.Params) (ProductPage, error)
	Get(ctx context.Context, id string) (Product, error)
	Categories(ctx context.Context) []string
	BestSellers(ctx context.Context, n int) []Product
	Showcase(ctx context.Context, filter enums.ShowcaseFilter, limit int) []Product
}

type service struct {
	store           *Store
	bestSellerCount int
	showcaseLimit   int
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Store           *Store
	BestSellerCount int
	ShowcaseLimit   int
}

// NewService builds a catalog service over a loaded store.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("catalog store required")
	}
	return &service{
		store:           params.Store,
		bestSellerCount: params.BestSellerCount,
		showcaseLimit:   params.ShowcaseLimit,
	}, nil
}

func (s *service) List(ctx context.Context, query ListQuery, page pagination.Params) (ProductPage, error) {
	if query.Sort != "" && !query.Sort.IsValid() {
		return ProductPage{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid sort %q", query.Sort))
	}
	if query.MinPrice != nil && query.MaxPrice != nil && query.MinPrice.GreaterThan(*query.MaxPrice) {
		return ProductPage{}, pkgerrors.New(pkgerrors.CodeValidation, "min_price must not exceed max_price")
	}
	return pagination.Apply(Filter(s.store.All(), query), page), nil
}

func (s *service) Get(ctx context.Context, id string) (Product, error) {
	product, ok := s.store.FindByID(id)
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return product, nil
}

func (s *service) Categories(ctx context.Context) []string {
	return s.store.Categories()
}

func (s *service) BestSellers(ctx context.Context, n int) []Product {
	if n <= 0 {
		n = s.bestSellerCount
	}
	return BestSellers(s.store.All(), n)
}

func (s *service) Showcase(ctx context.Context, filter enums.ShowcaseFilter, limit int) []Product {
	if limit <= 0 {
		limit = s.showcaseLimit
	}
	return Showcase(s.store.All(), filter, limit)
}
