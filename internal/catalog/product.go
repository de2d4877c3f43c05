package catalog

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent is a discount percentage known to lie in [0, 100].
type Percent struct {
	value decimal.Decimal
}

// NewPercent validates v. Values outside [0, 100] are rejected.
func NewPercent(v decimal.Decimal) (Percent, bool) {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return Percent{}, false
	}
	return Percent{value: v}, true
}

// Value returns the percentage.
func (p Percent) Value() decimal.Decimal {
	return p.value
}

// Rating is a review score known to lie in [0, 5].
type Rating struct {
	value float64
}

// NewRating validates v. Values outside [0, 5] are rejected.
func NewRating(v float64) (Rating, bool) {
	if math.IsNaN(v) || v < 0 || v > 5 {
		return Rating{}, false
	}
	return Rating{value: v}, true
}

// Value returns the score.
func (r Rating) Value() float64 {
	return r.value
}

// Product is one immutable catalog entry.
type Product struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	Images       []string
	Category     string
	Subcategory  string
	Description  *string
	Sizes        []string
	Discount     *Percent
	Rating       *Rating
	IsNew        bool
	IsBestseller bool
	IsTrending   bool
	CreatedAt    *time.Time
}

// PrimaryImage returns the first image, or placeholder when the product has none.
func (p Product) PrimaryImage(placeholder string) string {
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			return img
		}
	}
	return placeholder
}

// HasDiscount reports whether a non-zero discount applies.
func (p Product) HasDiscount() bool {
	return p.Discount != nil && p.Discount.Value().IsPositive()
}

// DiscountedPrice applies the discount, if any, rounded to cents.
func (p Product) DiscountedPrice() decimal.Decimal {
	if !p.HasDiscount() {
		return p.Price
	}
	factor := hundred.Sub(p.Discount.Value()).Div(hundred)
	return p.Price.Mul(factor).Round(2)
}

// HasRating reports whether a rating should be displayed.
func (p Product) HasRating() bool {
	return p.Rating != nil
}

// SizesLabel joins the available sizes for display.
func (p Product) SizesLabel() string {
	if len(p.Sizes) == 0 {
		return "N/A"
	}
	return strings.Join(p.Sizes, ", ")
}

// Clone returns a deep copy so callers cannot mutate catalog data.
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.Sizes != nil {
		out.Sizes = append([]string(nil), p.Sizes...)
	}
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	if p.Discount != nil {
		d := *p.Discount
		out.Discount = &d
	}
	if p.Rating != nil {
		r := *p.Rating
		out.Rating = &r
	}
	if p.CreatedAt != nil {
		c := *p.CreatedAt
		out.CreatedAt = &c
	}
	return out
}
