package dto

import (
	"time"

	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/checkout"
	"github.com/angelmondragon/storefront-backend/internal/wishlist"
	"github.com/angelmondragon/storefront-backend/pkg/types"
	"github.com/google/uuid"
)

type LineItem struct {
	Product   Product     `json:"product"`
	Quantity  int         `json:"quantity"`
	LineTotal types.Money `json:"line_total"`
}

type Cart struct {
	Items      []LineItem  `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice types.Money `json:"total_price"`
}

type CartCount struct {
	Count int `json:"count"`
}

// Cart renders a cart snapshot.
func (pr Presenter) Cart(s cart.Snapshot) Cart {
	return Cart{
		Items:      pr.lineItems(s.Items),
		TotalItems: s.TotalItems,
		TotalPrice: types.NewMoney(s.TotalPrice, pr.CurrencySymbol),
	}
}

func (pr Presenter) lineItems(items []cart.LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, LineItem{
			Product:   pr.Product(item.Product),
			Quantity:  item.Quantity,
			LineTotal: types.NewMoney(item.LineTotal(), pr.CurrencySymbol),
		})
	}
	return out
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type OrderConfirmation struct {
	OrderID        uuid.UUID   `json:"order_id"`
	Items          []LineItem  `json:"items"`
	TotalItems     int         `json:"total_items"`
	TotalPrice     types.Money `json:"total_price"`
	PaymentMethod  string      `json:"payment_method"`
	ShippingOption string      `json:"shipping_option"`
	Customer       Customer    `json:"customer"`
	PlacedAt       time.Time   `json:"placed_at"`
}

// Confirmation renders a placed order.
func (pr Presenter) Confirmation(c checkout.Confirmation) OrderConfirmation {
	symbol := c.Currency
	if symbol == "" {
		symbol = pr.CurrencySymbol
	}
	withSymbol := Presenter{CurrencySymbol: symbol, PlaceholderImage: pr.PlaceholderImage}
	return OrderConfirmation{
		OrderID:        c.OrderID,
		Items:          withSymbol.lineItems(c.Items),
		TotalItems:     c.TotalItems,
		TotalPrice:     types.NewMoney(c.TotalPrice, symbol),
		PaymentMethod:  c.PaymentMethod.String(),
		ShippingOption: c.ShippingOption.String(),
		Customer: Customer{
			Name:    c.Customer.Name,
			Email:   c.Customer.Email,
			Address: c.Customer.Address,
			Phone:   c.Customer.Phone,
		},
		PlacedAt: c.PlacedAt,
	}
}

type WishlistItem struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"added_at"`
}

// Wishlist renders saved products in the order they were added.
func (pr Presenter) Wishlist(items []wishlist.Item) []WishlistItem {
	out := make([]WishlistItem, 0, len(items))
	for _, item := range items {
		out = append(out, WishlistItem{Product: pr.Product(item.Product), AddedAt: item.AddedAt})
	}
	return out
}
