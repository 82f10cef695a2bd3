// Package ratio derives financial ratios from generated statements. A zero
// denominator is a legitimate business state (zero liabilities, zero
// interest expense), so those ratios come back explicitly undefined rather
// than as an error or a NaN.
package ratio

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/statement"
)

// Ratio is a dimensionless quotient. Defined is false when the denominator
// was zero and Value is meaningless.
type Ratio struct {
	Value   decimal.Decimal
	Defined bool
}

func (r Ratio) String() string {
	if !r.Defined {
		return "n/a"
	}
	return r.Value.StringFixed(2)
}

// Set holds every ratio the engine derives.
type Set struct {
	// Liquidity
	CurrentRatio Ratio
	QuickRatio   Ratio
	CashRatio    Ratio

	// Profitability
	GrossMargin     Ratio
	OperatingMargin Ratio
	NetMargin       Ratio
	ReturnOnAssets  Ratio
	ReturnOnEquity  Ratio

	// Efficiency
	AssetTurnover     Ratio
	InventoryTurnover Ratio

	// Leverage
	DebtToEquity     Ratio
	DebtToAssets     Ratio
	InterestCoverage Ratio
}

// Options tunes ratio derivation.
type Options struct {
	// Opening, when set, is the balance sheet at the start of the income
	// period; turnover and return denominators then use the average of the
	// opening and closing balances instead of the closing balance alone.
	Opening *statement.BalanceSheet
}

// Compute derives the full ratio set from a balance sheet and an income
// statement. Both inputs are read-only.
func Compute(bs statement.BalanceSheet, is statement.IncomeStatement, opts Options) Set {
	currentAssets := bs.CurrentAssets.Total.Amount
	currentLiabilities := bs.CurrentLiabilities.Total.Amount
	totalAssets := bs.TotalAssets().Amount
	totalLiabilities := bs.TotalLiabilities().Amount
	totalEquity := bs.TotalEquity().Amount
	inventory := bs.Inventory().Amount
	cash := bs.Cash().Amount

	avgAssets := totalAssets
	avgEquity := totalEquity
	avgInventory := inventory
	if opts.Opening != nil {
		avgAssets = average(opts.Opening.TotalAssets().Amount, totalAssets)
		avgEquity = average(opts.Opening.TotalEquity().Amount, totalEquity)
		avgInventory = average(opts.Opening.Inventory().Amount, inventory)
	}

	revenue := is.Revenue.Amount
	netIncome := is.NetIncome().Amount
	operatingIncome := is.OperatingIncome().Amount

	return Set{
		CurrentRatio: divide(currentAssets, currentLiabilities),
		QuickRatio:   divide(currentAssets.Sub(inventory), currentLiabilities),
		CashRatio:    divide(cash, currentLiabilities),

		GrossMargin:     divide(is.GrossProfit().Amount, revenue),
		OperatingMargin: divide(operatingIncome, revenue),
		NetMargin:       divide(netIncome, revenue),
		ReturnOnAssets:  divide(netIncome, avgAssets),
		ReturnOnEquity:  divide(netIncome, avgEquity),

		AssetTurnover:     divide(revenue, avgAssets),
		InventoryTurnover: divide(is.CostOfGoodsSold.Amount, avgInventory),

		DebtToEquity:     divide(totalLiabilities, totalEquity),
		DebtToAssets:     divide(totalLiabilities, totalAssets),
		InterestCoverage: divide(operatingIncome, is.InterestExpense.Amount),
	}
}

// divide returns num/den, or an undefined Ratio when den is zero.
func divide(num, den decimal.Decimal) Ratio {
	if den.IsZero() {
		return Ratio{}
	}
	return Ratio{Value: num.Div(den), Defined: true}
}

func average(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Div(decimal.NewFromInt(2))
}
