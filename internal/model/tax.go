package model

import "github.com/shopspring/decimal"

// TaxCalculationType selects how a tax schedule is applied.
type TaxCalculationType string

const (
	TaxProgressive TaxCalculationType = "progressive"
	TaxFlat        TaxCalculationType = "flat"
	TaxCompound    TaxCalculationType = "compound"
)

// Valid reports whether t is a known calculation type.
func (t TaxCalculationType) Valid() bool {
	switch t {
	case TaxProgressive, TaxFlat, TaxCompound:
		return true
	}
	return false
}

// TaxBracket is one income sub-range with its marginal rate. Brackets are
// ordered, non-overlapping, and cover [0, inf); the last bracket has
// Unbounded set and its MaxIncome is ignored.
type TaxBracket struct {
	MinIncome decimal.Decimal
	MaxIncome decimal.Decimal
	Unbounded bool
	Rate      decimal.Decimal // fraction, e.g. 0.10 for 10%
}
