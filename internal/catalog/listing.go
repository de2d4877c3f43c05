package catalog

import (
	"sort"
	"strings"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// AllCategories matches every category.
const AllCategories = "all"

// ListQuery narrows and orders a product listing.
type ListQuery struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	Sort     enums.SortOrder
}

// Filter applies the query to products and returns a new, sorted slice.
// Sorting is stable so equal keys keep source order.
func Filter(products []Product, q ListQuery) []Product {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	category := strings.TrimSpace(q.Category)
	anyCategory := category == "" || strings.EqualFold(category, AllCategories)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !anyCategory && p.Category != category {
			continue
		}
		if q.MinPrice != nil && p.Price.LessThan(*q.MinPrice) {
			continue
		}
		if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case enums.SortOrderPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case enums.SortOrderPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case enums.SortOrderName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case enums.SortOrderNewest:
		sort.SliceStable(out, func(i, j int) bool { return newer(out[i], out[j]) })
	}
	return out
}

// newer orders by creation date descending with undated products last.
func newer(a, b Product) bool {
	switch {
	case a.CreatedAt == nil:
		return false
	case b.CreatedAt == nil:
		return true
	default:
		return a.CreatedAt.After(*b.CreatedAt)
	}
}
