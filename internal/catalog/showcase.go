package catalog

import "github.com/angelmondragon/storefront-backend/pkg/enums"

const (
	DefaultBestSellerCount = 5
	DefaultShowcaseLimit   = 10
)

// BestSellers returns the first n products in catalog order.
func BestSellers(products []Product, n int) []Product {
	if n <= 0 {
		n = DefaultBestSellerCount
	}
	return head(products, n)
}

// Showcase keeps the products matching filter and returns at most limit of them.
func Showcase(products []Product, filter enums.ShowcaseFilter, limit int) []Product {
	if limit <= 0 {
		limit = DefaultShowcaseLimit
	}
	var keep func(Product) bool
	switch filter {
	case enums.ShowcaseFilterNew:
		keep = func(p Product) bool { return p.IsNew }
	case enums.ShowcaseFilterTrending:
		keep = func(p Product) bool { return p.IsTrending }
	case enums.ShowcaseFilterBestsellers:
		keep = func(p Product) bool { return p.IsBestseller }
	default:
		return head(products, limit)
	}

	out := make([]Product, 0, limit)
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func head(products []Product, n int) []Product {
	if n > len(products) {
		n = len(products)
	}
	out := make([]Product, n)
	copy(out, products[:n])
	return out
}
