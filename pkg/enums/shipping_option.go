package enums

import "fmt"

// ShippingOption describes the delivery speed chosen at checkout.
type ShippingOption string

const (
	ShippingOptionStandard ShippingOption = "standard"
	ShippingOptionExpress  ShippingOption = "express"
)

var validShippingOptions = []ShippingOption{
	ShippingOptionStandard,
	ShippingOptionExpress,
}

// String implements fmt.Stringer.
func (s ShippingOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShippingOption.
func (s ShippingOption) IsValid() bool {
	for _, candidate := range validShippingOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingOption converts raw input into a ShippingOption.
func ParseShippingOption(value string) (ShippingOption, error) {
	for _, candidate := range validShippingOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping option %q", value)
}
