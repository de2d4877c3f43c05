package catalog

import (
	"testing"
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func fixture() []Product {
	day := func(d int) *time.Time {
		t := time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	return []Product{
		{ID: "a", Name: "beta shirt", Price: decimal.NewFromInt(20), Category: "Men", CreatedAt: day(2)},
		{ID: "b", Name: "Alpha Jacket", Price: decimal.NewFromInt(120), Category: "Women"},
		{ID: "c", Name: "Gamma Shirt", Price: decimal.NewFromInt(20), Category: "Men", CreatedAt: day(9)},
		{ID: "d", Name: "Delta Skirt", Price: decimal.NewFromInt(5), Category: "Women", CreatedAt: day(5)},
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(100)

	cases := []struct {
		name  string
		query ListQuery
		want  []string
	}{
		{"default keeps source order", ListQuery{}, []string{"a", "b", "c", "d"}},
		{"all category", ListQuery{Category: "all"}, []string{"a", "b", "c", "d"}},
		{"category", ListQuery{Category: "Women"}, []string{"b", "d"}},
		{"price range inclusive", ListQuery{MinPrice: &min, MaxPrice: &max}, []string{"a", "c"}},
		{"search is case-insensitive", ListQuery{Search: "SHIRT"}, []string{"a", "c"}},
		{"price low is stable", ListQuery{Sort: enums.SortOrderPriceLow}, []string{"d", "a", "c", "b"}},
		{"price high is stable", ListQuery{Sort: enums.SortOrderPriceHigh}, []string{"b", "a", "c", "d"}},
		{"name ignores case", ListQuery{Sort: enums.SortOrderName}, []string{"b", "a", "d", "c"}},
		{"newest puts undated last", ListQuery{Sort: enums.SortOrderNewest}, []string{"c", "d", "a", "b"}},
		{"no match", ListQuery{Search: "hat"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(fixture(), tc.query))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterDoesNotReorderInput(t *testing.T) {
	in := fixture()
	_ = Filter(in, ListQuery{Sort: enums.SortOrderPriceHigh})
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, ids(in)); diff != "" {
		t.Fatalf("input reordered (-want +got):\n%s", diff)
	}
}
