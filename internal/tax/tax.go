// Package tax applies progressive bracket tables and flat rates to taxable
// amounts. Bracket tables are validated up front; calculation never fails
// on a valid table.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// ConfigurationError reports a bracket table that fails the ordering or
// contiguity checks.
type ConfigurationError struct {
	Bracket int // index into the table, -1 for table-level problems
	Reason  string
}

func (e ConfigurationError) Error() string {
	if e.Bracket < 0 {
		return fmt.Sprintf("invalid bracket configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid bracket configuration: bracket %d: %s", e.Bracket, e.Reason)
}

// Result is the outcome of a tax calculation.
type Result struct {
	Tax           money.Money
	EffectiveRate decimal.Decimal // tax / amount, zero for a zero amount
}

var one = decimal.NewFromInt(1)

// ValidateBrackets checks that a bracket table is sorted ascending,
// contiguous, covers [0, inf) and has non-negative rates. Contiguity
// accepts either next.Min == prev.Max (half-open ranges) or
// next.Min == prev.Max + 1 (inclusive integer ranges).
func ValidateBrackets(brackets []model.TaxBracket) error {
	if len(brackets) == 0 {
		return ConfigurationError{Bracket: -1, Reason: "empty bracket table"}
	}
	if !brackets[0].MinIncome.IsZero() {
		return ConfigurationError{Bracket: 0, Reason: "first bracket must start at 0"}
	}

	for i, b := range brackets {
		if b.Rate.IsNegative() {
			return ConfigurationError{Bracket: i, Reason: fmt.Sprintf("negative rate %s", b.Rate)}
		}
		last := i == len(brackets)-1
		if last {
			if !b.Unbounded {
				return ConfigurationError{Bracket: i, Reason: "last bracket must be unbounded"}
			}
			continue
		}
		if b.Unbounded {
			return ConfigurationError{Bracket: i, Reason: "only the last bracket may be unbounded"}
		}
		if !b.MaxIncome.GreaterThan(b.MinIncome) {
			return ConfigurationError{Bracket: i, Reason: fmt.Sprintf("max income %s not above min income %s", b.MaxIncome, b.MinIncome)}
		}
		next := brackets[i+1]
		gap := next.MinIncome.Sub(b.MaxIncome)
		if !gap.IsZero() && !gap.Equal(one) {
			return ConfigurationError{Bracket: i + 1, Reason: fmt.Sprintf("min income %s not contiguous with previous max %s", next.MinIncome, b.MaxIncome)}
		}
	}
	return nil
}

// Progressive computes tax over a validated bracket table by summing each
// bracket's marginal slice. Tax is a non-decreasing, piecewise-linear
// function of the amount.
func Progressive(amount money.Money, brackets []model.TaxBracket) (Result, error) {
	if err := ValidateBrackets(brackets); err != nil {
		return Result{}, err
	}

	taxable := amount.Amount
	tax := decimal.Zero
	lower := decimal.Zero // exclusive lower bound of the current bracket
	for _, b := range brackets {
		if taxable.LessThanOrEqual(lower) {
			break
		}
		upper := taxable
		if !b.Unbounded && b.MaxIncome.LessThan(upper) {
			upper = b.MaxIncome
		}
		tax = tax.Add(upper.Sub(lower).Mul(b.Rate))
		if b.Unbounded {
			break
		}
		lower = b.MaxIncome
	}

	return result(tax, amount), nil
}

// Flat computes rate * amount directly, with no bracket walk. Used for
// flat and compound schedule types (sales tax, VAT).
func Flat(amount money.Money, rate decimal.Decimal) Result {
	return result(amount.Amount.Mul(rate), amount)
}

func result(tax decimal.Decimal, amount money.Money) Result {
	r := Result{Tax: money.New(tax.Round(2), amount.Currency)}
	if !amount.IsZero() {
		r.EffectiveRate = tax.Div(amount.Amount)
	}
	return r
}
