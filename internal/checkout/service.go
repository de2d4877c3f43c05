package checkout

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Confirmation summarizes an accepted order. Nothing is persisted.
type Confirmation struct {
	OrderID        uuid.UUID
	Items          []cart.LineItem
	TotalItems     int
	TotalPrice     decimal.Decimal
	Currency       string
	PaymentMethod  enums.PaymentMethod
	ShippingOption enums.ShippingOption
	Customer       Customer
	PlacedAt       time.Time
}

// Customer is the contact data copied from the form.
type Customer struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

type orderRecorder interface {
	IncCheckout(outcome string)
	ObserveOrderValue(total float64)
}

// Service places orders from a session's cart.
type Service interface {
	PlaceOrder(ctx context.Context, sessionID uuid.UUID, req Request) (Confirmation, error)
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Carts            cart.Resolver
	Logger           *logger.Logger
	Metrics          orderRecorder
	Currency         string
	ClearCartOnOrder bool
	Now              func() time.Time
}

type service struct {
	carts     cart.Resolver
	logg      *logger.Logger
	metrics   orderRecorder
	currency  string
	clearCart bool
	now       func() time.Time
	validate  *validator.Validate
}

// NewService builds a checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Carts == nil {
		return nil, fmt.Errorf("cart resolver required")
	}
	rec := params.Metrics
	if rec == nil {
		rec = (*metrics.StoreMetrics)(nil)
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	currency := params.Currency
	if currency == "" {
		currency = "$"
	}
	return &service{
		carts:     params.Carts,
		logg:      params.Logger,
		metrics:   rec,
		currency:  currency,
		clearCart: params.ClearCartOnOrder,
		now:       now,
		validate:  newValidator(),
	}, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// PlaceOrder validates the form and confirms the order from a consistent cart
// snapshot. When clearing is enabled the snapshot and the clear happen under
// the same lock.
func (s *service) PlaceOrder(ctx context.Context, sessionID uuid.UUID, req Request) (Confirmation, error) {
	req = req.Normalize()
	if err := s.validateRequest(req); err != nil {
		s.metrics.IncCheckout(metrics.OutcomeRejected)
		return Confirmation{}, err
	}

	c := s.carts.CartFor(sessionID)
	var snap cart.Snapshot
	if s.clearCart {
		snap = c.Drain()
	} else {
		snap = c.Snapshot()
	}
	if len(snap.Items) == 0 {
		s.metrics.IncCheckout(metrics.OutcomeRejected)
		return Confirmation{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	conf := Confirmation{
		OrderID:        uuid.New(),
		Items:          snap.Items,
		TotalItems:     snap.TotalItems,
		TotalPrice:     snap.TotalPrice,
		Currency:       s.currency,
		PaymentMethod:  req.PaymentMethod,
		ShippingOption: req.ShippingOption,
		Customer: Customer{
			Name:    req.Name,
			Email:   req.Email,
			Address: req.Address,
			Phone:   req.Phone,
		},
		PlacedAt: s.now().UTC(),
	}

	s.metrics.IncCheckout(metrics.OutcomeSuccess)
	s.metrics.ObserveOrderValue(snap.TotalPrice.InexactFloat64())
	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"order_id":       conf.OrderID.String(),
			"total_items":    conf.TotalItems,
			"total_price":    conf.TotalPrice.StringFixed(2),
			"payment_method": conf.PaymentMethod.String(),
		}), "checkout.order_placed")
	}
	return conf, nil
}

func (s *service) validateRequest(req Request) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid checkout request")
	}
	fields := make(map[string]string, len(verrs))
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		fields[name] = fe.Tag()
		names = append(names, name)
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "please fill in all fields: "+strings.Join(names, ", ")).
		WithDetails(map[string]any{"fields": fields})
}
