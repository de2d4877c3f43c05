package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
	"github.com/google/uuid"
)

// Resolver finds the cart that belongs to a session.
type Resolver interface {
	CartFor(sessionID uuid.UUID) *Cart
}

type productLoader interface {
	Get(ctx context.Context, id string) (catalog.Product, error)
}

type mutationRecorder interface {
	IncCartMutation(op string)
}

// Service exposes cart operations scoped to a guest session.
type Service interface {
	Get(ctx context.Context, sessionID uuid.UUID) Snapshot
	AddItem(ctx context.Context, sessionID uuid.UUID, productID string, delta int) (Snapshot, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, productID string) Snapshot
	Clear(ctx context.Context, sessionID uuid.UUID) Snapshot
	Count(ctx context.Context, sessionID uuid.UUID) int
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Carts    Resolver
	Products productLoader
	Metrics  mutationRecorder
	Logger   *logger.Logger
}

type service struct {
	carts    Resolver
	products productLoader
	metrics  mutationRecorder
	logg     *logger.Logger
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Carts == nil {
		return nil, fmt.Errorf("cart resolver required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	rec := params.Metrics
	if rec == nil {
		rec = (*metrics.StoreMetrics)(nil)
	}
	return &service{
		carts:    params.Carts,
		products: params.Products,
		metrics:  rec,
		logg:     params.Logger,
	}, nil
}

func (s *service) Get(ctx context.Context, sessionID uuid.UUID) Snapshot {
	return s.carts.CartFor(sessionID).Snapshot()
}

// AddItem resolves productID through the catalog and merges delta into the cart.
func (s *service) AddItem(ctx context.Context, sessionID uuid.UUID, productID string, delta int) (Snapshot, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "product_id is required")
	}
	if delta == 0 {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must not be zero")
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return Snapshot{}, err
	}

	c := s.carts.CartFor(sessionID)
	if err := c.Add(product, delta); err != nil {
		if errors.Is(err, ErrMissingProductID) {
			return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "product_id is required")
		}
		if errors.Is(err, ErrQuantityLimit) {
			return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("quantity per item cannot exceed %d", MaxQuantity))
		}
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add to cart")
	}
	s.metrics.IncCartMutation(metrics.CartOpAdd)

	snap := c.Snapshot()
	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"product_id":  productID,
			"delta":       delta,
			"total_items": snap.TotalItems,
		})
		s.logg.Debug(logCtx, "cart.item_added")
	}
	return snap, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID uuid.UUID, productID string) Snapshot {
	c := s.carts.CartFor(sessionID)
	c.Remove(productID)
	s.metrics.IncCartMutation(metrics.CartOpRemove)

	snap := c.Snapshot()
	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"product_id":  strings.TrimSpace(productID),
			"total_items": snap.TotalItems,
		})
		s.logg.Debug(logCtx, "cart.item_removed")
	}
	return snap
}

func (s *service) Clear(ctx context.Context, sessionID uuid.UUID) Snapshot {
	c := s.carts.CartFor(sessionID)
	c.Clear()
	s.metrics.IncCartMutation(metrics.CartOpClear)
	if s.logg != nil {
		s.logg.Debug(ctx, "cart.cleared")
	}
	return c.Snapshot()
}

func (s *service) Count(ctx context.Context, sessionID uuid.UUID) int {
	return s.carts.CartFor(sessionID).TotalItems()
}
