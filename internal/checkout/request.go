package checkout

import (
	"strings"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

// Request is the shopper's checkout form.
type Request struct {
	Name           string               `json:"name" validate:"required,max=200"`
	Email          string               `json:"email" validate:"required,email,max=320"`
	Address        string               `json:"address" validate:"required,max=500"`
	Phone          string               `json:"phone" validate:"required,max=40"`
	PaymentMethod  enums.PaymentMethod  `json:"payment_method" validate:"omitempty,oneof=creditCard paypal cashOnDelivery"`
	ShippingOption enums.ShippingOption `json:"shipping_option" validate:"omitempty,oneof=standard express"`
}

// Normalize trims free-text fields and fills the form defaults.
func (r Request) Normalize() Request {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.PaymentMethod == "" {
		r.PaymentMethod = enums.PaymentMethodCreditCard
	}
	if r.ShippingOption == "" {
		r.ShippingOption = enums.ShippingOptionStandard
	}
	return r
}
