package wishlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/google/uuid"
)

// Resolver finds the wishlist that belongs to a session.
type Resolver interface {
	WishlistFor(sessionID uuid.UUID) *List
}

type productLoader interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

// Item pairs a saved product with the time it was saved.
type Item struct {
	Product catalog.Product
	AddedAt time.Time
}

// Service exposes wishlist management for guest sessions.
type Service interface {
	List(ctx context.Context, sessionID uuid.UUID) []Item
	AddItem(ctx context.Context, sessionID uuid.UUID, productID string) error
	RemoveItem(ctx context.Context, sessionID uuid.UUID, productID string)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Lists    Resolver
	Products productLoader
}

type service struct {
	lists    Resolver
	products productLoader
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Lists == nil {
		return nil, fmt.Errorf("wishlist resolver required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{lists: params.Lists, products: params.Products}, nil
}

// List resolves saved ids through the catalog. Ids whose product no longer
// exists are skipped.
func (s *service) List(ctx context.Context, sessionID uuid.UUID) []Item {
	entries := s.lists.WishlistFor(sessionID).Entries()
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		p, err := s.products.Get(ctx, e.ProductID)
		if err != nil {
			continue
		}
		items = append(items, Item{Product: p, AddedAt: e.AddedAt})
	}
	return items
}

// AddItem ensures the product exists and saves it.
func (s *service) AddItem(ctx context.Context, sessionID uuid.UUID, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}
	if _, err := s.products.Get(ctx, productID); err != nil {
		return err
	}
	s.lists.WishlistFor(sessionID).Add(productID)
	return nil
}

// RemoveItem drops the entry regardless of prior state.
func (s *service) RemoveItem(ctx context.Context, sessionID uuid.UUID, productID string) {
	s.lists.WishlistFor(sessionID).Remove(productID)
}
