package statement

import (
	"fmt"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// BalanceSheet reports assets, liabilities and equity as of a date. Equity
// includes a computed retained-earnings line folding in the cumulative
// revenue and expense balances, so that assets = liabilities + equity holds
// for any consistent entry set.
type BalanceSheet struct {
	AsOf     time.Time
	Currency string

	CurrentAssets       Section
	FixedAssets         Section
	CurrentLiabilities  Section
	LongTermLiabilities Section
	Equity              Section

	// Unbalanced is set when the identity check fails beyond the rounding
	// tolerance. The report is still returned so the discrepancy stays
	// visible to the accountant.
	Unbalanced bool
	Warnings   []string
}

// RetainedEarningsName labels the computed equity line for current-period
// earnings.
const RetainedEarningsName = "Retained Earnings"

// TotalAssets returns current plus fixed assets.
func (b BalanceSheet) TotalAssets() money.Money {
	return add(b.CurrentAssets.Total, b.FixedAssets.Total)
}

// TotalLiabilities returns current plus long-term liabilities.
func (b BalanceSheet) TotalLiabilities() money.Money {
	return add(b.CurrentLiabilities.Total, b.LongTermLiabilities.Total)
}

// TotalEquity returns the equity section total.
func (b BalanceSheet) TotalEquity() money.Money {
	return b.Equity.Total
}

// Cash sums the cash-category lines of current assets.
func (b BalanceSheet) Cash() money.Money {
	return b.categorySum(model.CategoryCash)
}

// Inventory sums the inventory-category lines of current assets.
func (b BalanceSheet) Inventory() money.Money {
	return b.categorySum(model.CategoryInventory)
}

func (b BalanceSheet) categorySum(category model.AccountCategory) money.Money {
	total := money.Zero(b.Currency)
	for _, line := range b.CurrentAssets.Lines {
		if line.Category == category {
			total = add(total, line.Balance)
		}
	}
	return total
}

// BalanceSheet generates a balance sheet from all entries dated on or
// before asOf.
func (g *Generator) BalanceSheet(accounts []model.Account, entries []model.JournalEntry, asOf time.Time) (BalanceSheet, error) {
	balances, err := g.accountBalances(accounts, entries, keepUpTo(asOf))
	if err != nil {
		return BalanceSheet{}, err
	}

	sheet := BalanceSheet{
		AsOf:                asOf,
		Currency:            g.currency,
		CurrentAssets:       g.section(accounts, balances, model.CategoryCash, model.CategoryInventory, model.CategoryCurrentAsset),
		FixedAssets:         g.section(accounts, balances, model.CategoryFixedAsset),
		CurrentLiabilities:  g.section(accounts, balances, model.CategoryCurrentLiability),
		LongTermLiabilities: g.section(accounts, balances, model.CategoryLongTermLiability),
		Equity:              g.section(accounts, balances, model.CategoryOwnerEquity),
	}

	// Fold current-period earnings into equity so the identity holds.
	retained := money.Zero(g.currency)
	for _, a := range accounts {
		switch a.Type {
		case model.AccountTypeRevenue:
			retained = add(retained, balances[a.ID])
		case model.AccountTypeExpense:
			retained = sub(retained, balances[a.ID])
		}
	}
	sheet.Equity.Lines = append(sheet.Equity.Lines, Line{
		Name:     RetainedEarningsName,
		Category: model.CategoryOwnerEquity,
		Balance:  retained,
	})
	sheet.Equity.Total = add(sheet.Equity.Total, retained)

	// Identity check: assets = liabilities + equity, within tolerance.
	diff := sheet.TotalAssets().Amount.Sub(sheet.TotalLiabilities().Amount).Sub(sheet.TotalEquity().Amount)
	if diff.Abs().GreaterThan(g.tolerance) {
		sheet.Unbalanced = true
		sheet.Warnings = append(sheet.Warnings, fmt.Sprintf(
			"balance sheet out of balance by %s: assets %s, liabilities %s, equity %s",
			diff.StringFixed(2), sheet.TotalAssets(), sheet.TotalLiabilities(), sheet.TotalEquity()))
	}

	return sheet, nil
}
