package statement

import (
	"fmt"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// Adjustment is one named non-cash adjustment to the operating section,
// e.g. depreciation. Adjustments are supplied by the caller.
type Adjustment struct {
	Name   string
	Amount money.Money
}

// CashFlowStatement reports cash movement over a period. The derivation
// chain is authoritative: every aggregate is a method over the stored
// components, never an independently stored field.
//
//	netCashFromOperations = netIncome + sum(adjustments)
//	netChangeInCash       = netCashFromOperations + investing + financing
//	endingCash            = beginningCash + netChangeInCash
type CashFlowStatement struct {
	From     time.Time
	To       time.Time
	Currency string

	NetIncome     money.Money
	Adjustments   []Adjustment
	Investing     Section // cash flow from fixed-asset movements
	Financing     Section // cash flow from long-term debt and equity movements
	BeginningCash money.Money
}

// TotalAdjustments sums the named non-cash adjustments.
func (s CashFlowStatement) TotalAdjustments() money.Money {
	total := money.Zero(s.Currency)
	for _, a := range s.Adjustments {
		total = add(total, a.Amount)
	}
	return total
}

// NetCashFromOperations returns net income plus total adjustments.
func (s CashFlowStatement) NetCashFromOperations() money.Money {
	return add(s.NetIncome, s.TotalAdjustments())
}

// NetChangeInCash returns operations plus investing plus financing flows.
func (s CashFlowStatement) NetChangeInCash() money.Money {
	return add(add(s.NetCashFromOperations(), s.Investing.Total), s.Financing.Total)
}

// EndingCash returns beginning cash plus the net change.
func (s CashFlowStatement) EndingCash() money.Money {
	return add(s.BeginningCash, s.NetChangeInCash())
}

// CashFlow generates a cash-flow statement over [from, to] inclusive.
// openingCash is the cash balance at the start of the period; adjustments
// are the caller-supplied non-cash items layered onto net income. Both must
// be in the ledger currency; a mismatch fails here rather than surfacing
// later from a derived total.
func (g *Generator) CashFlow(accounts []model.Account, entries []model.JournalEntry, from, to time.Time, openingCash money.Money, adjustments []Adjustment) (CashFlowStatement, error) {
	opening, err := money.Zero(g.currency).Add(openingCash)
	if err != nil {
		return CashFlowStatement{}, fmt.Errorf("opening cash: %w", err)
	}

	var checked []Adjustment
	for _, a := range adjustments {
		amount, err := money.Zero(g.currency).Add(a.Amount)
		if err != nil {
			return CashFlowStatement{}, fmt.Errorf("adjustment %q: %w", a.Name, err)
		}
		checked = append(checked, Adjustment{Name: a.Name, Amount: amount})
	}

	income, err := g.IncomeStatement(accounts, entries, from, to)
	if err != nil {
		return CashFlowStatement{}, err
	}

	balances, err := g.accountBalances(accounts, entries, keepBetween(from, to))
	if err != nil {
		return CashFlowStatement{}, err
	}

	// A fixed-asset increase consumes cash, so investing flow is the
	// negated period delta. Long-term-liability and equity increases are
	// credit-positive and already carry the inflow sign.
	investing := g.section(accounts, balances, model.CategoryFixedAsset)
	for i := range investing.Lines {
		investing.Lines[i].Balance = investing.Lines[i].Balance.Neg()
	}
	investing.Total = investing.Total.Neg()

	financing := g.section(accounts, balances, model.CategoryLongTermLiability, model.CategoryOwnerEquity)

	return CashFlowStatement{
		From:          from,
		To:            to,
		Currency:      g.currency,
		NetIncome:     income.NetIncome(),
		Adjustments:   checked,
		Investing:     investing,
		Financing:     financing,
		BeginningCash: opening,
	}, nil
}
