package enums

import "fmt"

// ShowcaseFilter selects which flagged products appear in the showcase.
type ShowcaseFilter string

const (
	ShowcaseFilterAll         ShowcaseFilter = "all"
	ShowcaseFilterNew         ShowcaseFilter = "new"
	ShowcaseFilterTrending    ShowcaseFilter = "trending"
	ShowcaseFilterBestsellers ShowcaseFilter = "bestsellers"
)

var validShowcaseFilters = []ShowcaseFilter{
	ShowcaseFilterAll,
	ShowcaseFilterNew,
	ShowcaseFilterTrending,
	ShowcaseFilterBestsellers,
}

// String implements fmt.Stringer.
func (f ShowcaseFilter) String() string {
	return string(f)
}

// IsValid reports whether the value is a known ShowcaseFilter.
func (f ShowcaseFilter) IsValid() bool {
	for _, candidate := range validShowcaseFilters {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseShowcaseFilter converts raw input into a ShowcaseFilter.
func ParseShowcaseFilter(value string) (ShowcaseFilter, error) {
	for _, candidate := range validShowcaseFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid showcase filter %q", value)
}
