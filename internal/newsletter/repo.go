package newsletter

import (
	"context"
	"errors"

	"github.com/angelmondragon/storefront-backend/internal/repo"
	"github.com/angelmondragon/storefront-backend/pkg/db"
	"github.com/angelmondragon/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ErrAlreadySubscribed is returned when the email is already on the list.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// Repository encapsulates newsletter persistence.
type Repository struct {
	repo.Base[models.NewsletterSubscription]
}

// NewRepository constructs a newsletter repository bound to the provided gorm DB.
func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase[models.NewsletterSubscription](conn)}
}

// Create inserts a subscription, mapping unique violations to ErrAlreadySubscribed.
func (r *Repository) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	err := r.Insert(ctx, sub)
	if db.IsUniqueViolation(err) {
		return ErrAlreadySubscribed
	}
	return err
}

// FindByEmail loads a subscription by normalized email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	return r.FindOne(ctx, "email = ?", email)
}
