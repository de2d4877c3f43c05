package types

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrencySymbol is applied uniformly to every rendered amount.
const DefaultCurrencySymbol = "$"

// Money is the wire form of a price: a fixed two-place amount plus its display string.
type Money struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// NewMoney renders amount with the given symbol, falling back to DefaultCurrencySymbol.
func NewMoney(amount decimal.Decimal, symbol string) Money {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	fixed := amount.StringFixed(2)
	return Money{
		Amount:    fixed,
		Currency:  symbol,
		Formatted: symbol + fixed,
	}
}
