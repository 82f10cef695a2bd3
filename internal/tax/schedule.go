package tax

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// Schedule is the tax configuration for one year: either a bracket table
// (progressive) or a single rate (flat/compound), selected by Type.
type Schedule struct {
	Year     int
	Type     model.TaxCalculationType
	Rate     decimal.Decimal // flat and compound only
	Brackets []model.TaxBracket
}

// Calculate applies the schedule to an amount.
func (s Schedule) Calculate(amount money.Money) (Result, error) {
	switch s.Type {
	case model.TaxProgressive:
		return Progressive(amount, s.Brackets)
	case model.TaxFlat, model.TaxCompound:
		if s.Rate.IsNegative() {
			return Result{}, ConfigurationError{Bracket: -1, Reason: "negative flat rate " + s.Rate.String()}
		}
		return Flat(amount, s.Rate), nil
	default:
		return Result{}, ConfigurationError{Bracket: -1, Reason: "unknown calculation type " + string(s.Type)}
	}
}

// DefaultSchedule returns the fallback schedule used when no bracket table
// is configured for a tax year: single-member LLC ordinary brackets.
func DefaultSchedule(year int) Schedule {
	return Schedule{
		Year: year,
		Type: model.TaxProgressive,
		Brackets: []model.TaxBracket{
			{MinIncome: dec("0"), MaxIncome: dec("11000"), Rate: dec("0.10")},
			{MinIncome: dec("11001"), MaxIncome: dec("44725"), Rate: dec("0.12")},
			{MinIncome: dec("44726"), MaxIncome: dec("95375"), Rate: dec("0.22")},
			{MinIncome: dec("95376"), MaxIncome: dec("182100"), Rate: dec("0.24")},
			{MinIncome: dec("182101"), MaxIncome: dec("231250"), Rate: dec("0.32")},
			{MinIncome: dec("231251"), MaxIncome: dec("578125"), Rate: dec("0.35")},
			{MinIncome: dec("578126"), Unbounded: true, Rate: dec("0.37")},
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
