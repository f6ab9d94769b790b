package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the caller does not override the currency.
const DefaultCurrency = "EUR"

// Money is a monetary amount with its ISO 4217 currency code. Gateways
// transmit amounts as an integer count of minor units, never as floats.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney builds a Money from a decimal major-unit amount.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// MoneyFromMinorUnits builds a Money from an integer count of minor units
// (cents).
func MoneyFromMinorUnits(cents int64, currency string) Money {
	return Money{Amount: decimal.New(cents, -2), Currency: currency}
}

// MinorUnits returns the amount as an integer count of minor units.
// Sub-cent precision is truncated; validated amounts never carry it.
func (m Money) MinorUnits() int64 {
	return m.Amount.Shift(2).IntPart()
}

// CurrencyOrDefault returns the currency code, falling back to
// DefaultCurrency when unset.
func (m Money) CurrencyOrDefault() string {
	if m.Currency == "" {
		return DefaultCurrency
	}
	return m.Currency
}

// Negate returns the same amount with its sign flipped. Some providers
// expect refund amounts as negative minor units.
func (m Money) Negate() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}
