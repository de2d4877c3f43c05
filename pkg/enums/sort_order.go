package enums

import "fmt"

// SortOrder controls the ordering of a product listing.
type SortOrder string

const (
	SortOrderDefault   SortOrder = "default"
	SortOrderPriceLow  SortOrder = "price-low"
	SortOrderPriceHigh SortOrder = "price-high"
	SortOrderName      SortOrder = "name"
	SortOrderNewest    SortOrder = "newest"
)

var validSortOrders = []SortOrder{
	SortOrderDefault,
	SortOrderPriceLow,
	SortOrderPriceHigh,
	SortOrderName,
	SortOrderNewest,
}

// String implements fmt.Stringer.
func (s SortOrder) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOrder.
func (s SortOrder) IsValid() bool {
	for _, candidate := range validSortOrders {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOrder converts raw input into a SortOrder.
func ParseSortOrder(value string) (SortOrder, error) {
	for _, candidate := range validSortOrders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort order %q", value)
}
