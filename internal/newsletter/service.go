package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Subscription is the result of a successful signup.
type Subscription struct {
	ID           uuid.UUID
	Email        string
	CouponCode   string
	SubscribedAt time.Time
}

type subscriptionStore interface {
	Create(ctx context.Context, sub *models.NewsletterSubscription) error
}

type signupRecorder interface {
	IncNewsletter(outcome string)
}

// Service handles newsletter signups.
type Service interface {
	Subscribe(ctx context.Context, email, sourceIP string) (Subscription, error)
}

// ServiceParams groups dependencies for the newsletter service.
type ServiceParams struct {
	Repo       subscriptionStore
	Logger     *logger.Logger
	Metrics    signupRecorder
	CouponCode string
	Now        func() time.Time
}

type service struct {
	repo     subscriptionStore
	logg     *logger.Logger
	metrics  signupRecorder
	coupon   string
	now      func() time.Time
	validate *validator.Validate
}

// NewService builds a newsletter service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("newsletter repository required")
	}
	if strings.TrimSpace(params.CouponCode) == "" {
		return nil, fmt.Errorf("coupon code required")
	}
	rec := params.Metrics
	if rec == nil {
		rec = (*metrics.StoreMetrics)(nil)
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:     params.Repo,
		logg:     params.Logger,
		metrics:  rec,
		coupon:   params.CouponCode,
		now:      now,
		validate: validator.New(),
	}, nil
}

// Subscribe normalizes and validates email, then stores the signup.
func (s *service) Subscribe(ctx context.Context, email, sourceIP string) (Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := s.validate.Var(email, "required,email,max=320"); err != nil {
		s.metrics.IncNewsletter(metrics.OutcomeRejected)
		return Subscription{}, pkgerrors.New(pkgerrors.CodeValidation, "a valid email is required").
			WithDetails(map[string]any{"fields": map[string]string{"email": "email"}})
	}

	row := &models.NewsletterSubscription{
		ID:         uuid.New(),
		Email:      email,
		CouponCode: s.coupon,
		CreatedAt:  s.now().UTC(),
	}
	if ip := strings.TrimSpace(sourceIP); ip != "" {
		row.SourceIP = &ip
	}

	if err := s.repo.Create(ctx, row); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			s.metrics.IncNewsletter(metrics.OutcomeRejected)
			return Subscription{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email already subscribed")
		}
		s.metrics.IncNewsletter(metrics.OutcomeError)
		return Subscription{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store subscription")
	}

	s.metrics.IncNewsletter(metrics.OutcomeSuccess)
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "subscription_id", row.ID.String()), "newsletter.subscribed")
	}
	return Subscription{
		ID:           row.ID,
		Email:        row.Email,
		CouponCode:   row.CouponCode,
		SubscribedAt: row.CreatedAt,
	}, nil
}
