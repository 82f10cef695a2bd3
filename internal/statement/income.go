package statement

import (
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// IncomeStatement reports revenue and expenses over a period. Only the
// component totals are stored; gross profit, operating income and net
// income are derived on access so they cannot drift from their parts.
type IncomeStatement struct {
	From     time.Time
	To       time.Time
	Currency string

	Revenue           money.Money // operating revenue
	CostOfGoodsSold   money.Money
	OperatingExpenses money.Money
	OtherIncome       money.Money
	OtherExpenses     money.Money
	InterestExpense   money.Money
}

// GrossProfit returns revenue minus cost of goods sold.
func (s IncomeStatement) GrossProfit() money.Money {
	return sub(s.Revenue, s.CostOfGoodsSold)
}

// OperatingIncome returns gross profit minus operating expenses.
func (s IncomeStatement) OperatingIncome() money.Money {
	return sub(s.GrossProfit(), s.OperatingExpenses)
}

// NetIncome returns operating income plus other income, minus other and
// interest expenses.
func (s IncomeStatement) NetIncome() money.Money {
	net := add(s.OperatingIncome(), s.OtherIncome)
	net = sub(net, s.OtherExpenses)
	return sub(net, s.InterestExpense)
}

// IncomeStatement generates an income statement over [from, to] inclusive.
func (g *Generator) IncomeStatement(accounts []model.Account, entries []model.JournalEntry, from, to time.Time) (IncomeStatement, error) {
	balances, err := g.accountBalances(accounts, entries, keepBetween(from, to))
	if err != nil {
		return IncomeStatement{}, err
	}

	return IncomeStatement{
		From:              from,
		To:                to,
		Currency:          g.currency,
		Revenue:           g.categoryTotal(accounts, balances, model.CategoryOperatingRevenue),
		CostOfGoodsSold:   g.categoryTotal(accounts, balances, model.CategoryCostOfGoodsSold),
		OperatingExpenses: g.categoryTotal(accounts, balances, model.CategoryOperatingExpense),
		OtherIncome:       g.categoryTotal(accounts, balances, model.CategoryOtherRevenue),
		OtherExpenses:     g.categoryTotal(accounts, balances, model.CategoryOtherExpense),
		InterestExpense:   g.categoryTotal(accounts, balances, model.CategoryInterestExpense),
	}, nil
}
