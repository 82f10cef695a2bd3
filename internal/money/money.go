package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MismatchError reports an arithmetic operation across two currencies.
type MismatchError struct {
	A, B string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s vs %s", e.A, e.B)
}

// Money is a fixed-point amount in a single currency. The zero value is
// zero in the empty currency and is usable as an additive identity.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// New creates a Money from a decimal amount and a currency code.
func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// FromString parses a decimal string into a Money.
func FromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	return Money{Amount: d, Currency: currency}, nil
}

// Add returns m + o, or a MismatchError if the currencies differ.
// A zero value in the empty currency adopts the other operand's currency.
func (m Money) Add(o Money) (Money, error) {
	cur, err := joinCurrency(m, o)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Add(o.Amount), Currency: cur}, nil
}

// Sub returns m - o, or a MismatchError if the currencies differ.
func (m Money) Sub(o Money) (Money, error) {
	cur, err := joinCurrency(m, o)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Sub(o.Amount), Currency: cur}, nil
}

// Neg returns the negated amount.
func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}

// Abs returns the absolute amount.
func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs(), Currency: m.Currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Equal reports whether both amount and currency are equal. Zero amounts
// compare equal regardless of currency.
func (m Money) Equal(o Money) bool {
	if m.Amount.IsZero() && o.Amount.IsZero() {
		return true
	}
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}

// String renders the amount with two decimal places and the currency code.
func (m Money) String() string {
	if m.Currency == "" {
		return m.Amount.StringFixed(2)
	}
	return m.Amount.StringFixed(2) + " " + m.Currency
}

// Sum adds all amounts, starting from zero in the given currency.
func Sum(currency string, amounts ...Money) (Money, error) {
	total := Zero(currency)
	for _, a := range amounts {
		var err error
		total, err = total.Add(a)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

func joinCurrency(a, b Money) (string, error) {
	switch {
	case a.Currency == b.Currency:
		return a.Currency, nil
	case a.Currency == "" && a.Amount.IsZero():
		return b.Currency, nil
	case b.Currency == "" && b.Amount.IsZero():
		return a.Currency, nil
	default:
		return "", MismatchError{A: a.Currency, B: b.Currency}
	}
}
