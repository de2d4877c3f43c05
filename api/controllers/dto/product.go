package dto

import (
	"time"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/types"
)

// Presenter carries the display settings shared by every product rendering.
type Presenter struct {
	CurrencySymbol   string
	PlaceholderImage string
}

// Product is the wire shape of a catalog product.
type Product struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Price           types.Money  `json:"price"`
	DiscountedPrice *types.Money `json:"discounted_price,omitempty"`
	DiscountPercent *string      `json:"discount_percent,omitempty"`
	Image           string       `json:"image"`
	Images          []string     `json:"images"`
	Category        string       `json:"category"`
	Subcategory     string       `json:"subcategory"`
	Description     *string      `json:"description,omitempty"`
	Sizes           []string     `json:"sizes"`
	SizesLabel      string       `json:"sizes_label"`
	Rating          *float64     `json:"rating,omitempty"`
	IsNew           bool         `json:"is_new"`
	IsBestseller    bool         `json:"is_bestseller"`
	IsTrending      bool         `json:"is_trending"`
	CreatedAt       *time.Time   `json:"created_at,omitempty"`
}

// Product renders p for clients.
func (pr Presenter) Product(p catalog.Product) Product {
	out := Product{
		ID:           p.ID,
		Name:         p.Name,
		Price:        types.NewMoney(p.Price, pr.CurrencySymbol),
		Image:        p.PrimaryImage(pr.PlaceholderImage),
		Images:       append([]string{}, p.Images...),
		Category:     p.Category,
		Subcategory:  p.Subcategory,
		Description:  p.Description,
		Sizes:        append([]string{}, p.Sizes...),
		SizesLabel:   p.SizesLabel(),
		IsNew:        p.IsNew,
		IsBestseller: p.IsBestseller,
		IsTrending:   p.IsTrending,
		CreatedAt:    p.CreatedAt,
	}
	if p.HasDiscount() {
		discounted := types.NewMoney(p.DiscountedPrice(), pr.CurrencySymbol)
		percent := p.Discount.Value().String()
		out.DiscountedPrice = &discounted
		out.DiscountPercent = &percent
	}
	if p.HasRating() {
		rating := p.Rating.Value()
		out.Rating = &rating
	}
	return out
}

// Products renders a list, never returning nil.
func (pr Presenter) Products(products []catalog.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, pr.Product(p))
	}
	return out
}
