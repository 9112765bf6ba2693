package valueobject

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code
type Currency string

const (
	INR Currency = "INR"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CNY Currency = "CNY"
)

// DefaultCurrency is used when no currency is configured
const DefaultCurrency = INR

var currencySymbols = map[Currency]string{
	INR: "₹",
	USD: "$",
	EUR: "€",
	GBP: "£",
	CNY: "¥",
}

// ParseCurrency validates a currency code
func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if _, ok := currencySymbols[c]; !ok {
		return "", fmt.Errorf("unsupported currency: %q", code)
	}
	return c, nil
}

// Symbol returns the display symbol, or the code itself when unknown
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c)
}

// Money is an immutable amount in one currency
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates Money. The currency must be a supported code.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if _, err := ParseCurrency(string(currency)); err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: currency}, nil
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }

// Equals reports same currency and numerically equal amount
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String formats the amount with two places behind the currency symbol
func (m Money) String() string {
	return m.currency.Symbol() + m.amount.StringFixed(2)
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount, Currency: m.currency})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m.amount, m.currency = v.Amount, v.Currency
	return nil
}

// Range is an inclusive min/max pair of Money in one currency
type Range struct {
	Min Money `json:"min"`
	Max Money `json:"max"`
}

// RangeOf returns the span of amounts. ok is false for an empty input.
func RangeOf(currency Currency, amounts ...decimal.Decimal) (r Range, ok bool) {
	if len(amounts) == 0 {
		return Range{}, false
	}
	lo, hi := amounts[0], amounts[0]
	for _, a := range amounts[1:] {
		lo = decimal.Min(lo, a)
		hi = decimal.Max(hi, a)
	}
	return Range{
		Min: Money{amount: lo, currency: currency},
		Max: Money{amount: hi, currency: currency},
	}, true
}

// IsSingle reports whether the range collapses to one amount
func (r Range) IsSingle() bool {
	return r.Min.Equals(r.Max)
}

// String renders "₹100.00" or "₹100.00 - ₹500.00"
func (r Range) String() string {
	if r.IsSingle() {
		return r.Min.String()
	}
	return r.Min.String() + " - " + r.Max.String()
}
