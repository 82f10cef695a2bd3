package statement

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/balance"
	"github.com/ledgerline-dev/ledgerline/internal/ledger"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// DefaultTolerance is one smallest currency unit, the default rounding
// tolerance for the balance-sheet identity check.
var DefaultTolerance = decimal.NewFromFloat(0.01)

// Generator assembles financial statements. It holds only configuration and
// is safe for concurrent use; every call is a pure function of its inputs.
type Generator struct {
	currency  string
	tolerance decimal.Decimal
}

// NewGenerator creates a Generator for a ledger currency using the given
// rounding tolerance for the balance-sheet identity check.
func NewGenerator(currency string, tolerance decimal.Decimal) *Generator {
	if tolerance.IsZero() {
		tolerance = DefaultTolerance
	}
	return &Generator{currency: currency, tolerance: tolerance}
}

// accountBalances computes the signed balance of every account over the
// entries for which keep returns true. Lines referencing accounts missing
// from the chart fail with a ledger.NotFoundError.
func (g *Generator) accountBalances(accounts []model.Account, entries []model.JournalEntry, keep func(model.JournalEntry) bool) (map[uuid.UUID]money.Money, error) {
	byID := make(map[uuid.UUID]model.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	lines := make(map[uuid.UUID][]model.EntryLine)
	for _, entry := range entries {
		if !keep(entry) {
			continue
		}
		for _, line := range entry.Lines {
			if _, ok := byID[line.AccountID]; !ok {
				return nil, ledger.NotFoundError{Kind: "account", Key: line.AccountID.String()}
			}
			lines[line.AccountID] = append(lines[line.AccountID], line)
		}
	}

	balances := make(map[uuid.UUID]money.Money, len(accounts))
	for _, a := range accounts {
		b, err := balance.Balance(a.Type, g.currency, lines[a.ID])
		if err != nil {
			return nil, err
		}
		balances[a.ID] = b
	}
	return balances, nil
}

// section builds a statement section from the accounts whose category is in
// categories, ordered by account code.
func (g *Generator) section(accounts []model.Account, balances map[uuid.UUID]money.Money, categories ...model.AccountCategory) Section {
	wanted := make(map[model.AccountCategory]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	sec := Section{Total: money.Zero(g.currency)}
	for _, a := range accounts {
		if !wanted[a.Category] {
			continue
		}
		b := balances[a.ID]
		sec.Lines = append(sec.Lines, Line{
			AccountID: a.ID,
			Code:      a.Code,
			Name:      a.Name,
			Category:  a.Category,
			Balance:   b,
		})
		sec.Total = add(sec.Total, b)
	}
	sort.Slice(sec.Lines, func(i, j int) bool { return sec.Lines[i].Code < sec.Lines[j].Code })
	return sec
}

// categoryTotal sums the balances of all accounts in a category.
func (g *Generator) categoryTotal(accounts []model.Account, balances map[uuid.UUID]money.Money, category model.AccountCategory) money.Money {
	total := money.Zero(g.currency)
	for _, a := range accounts {
		if a.Category == category {
			total = add(total, balances[a.ID])
		}
	}
	return total
}

func keepUpTo(asOf time.Time) func(model.JournalEntry) bool {
	return func(e model.JournalEntry) bool {
		return !day(e.Date).After(day(asOf))
	}
}

func keepBetween(from, to time.Time) func(model.JournalEntry) bool {
	return func(e model.JournalEntry) bool {
		return inRange(e.Date, from, to)
	}
}
