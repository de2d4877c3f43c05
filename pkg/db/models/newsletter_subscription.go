package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscription is one email address signed up for the newsletter.
type NewsletterSubscription struct {
	ID         uuid.UUID `gorm:"column:id;type:varchar(36);primaryKey"`
	Email      string    `gorm:"column:email;type:varchar(320);not null;uniqueIndex:idx_newsletter_subscriptions_email"`
	CouponCode string    `gorm:"column:coupon_code;type:varchar(64);not null"`
	SourceIP   *string   `gorm:"column:source_ip;type:varchar(64)"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

// TableName pins the table managed by the goose migrations.
func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}
