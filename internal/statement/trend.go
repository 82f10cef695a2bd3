package statement

import (
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
	"github.com/ledgerline-dev/ledgerline/internal/period"
)

// TrendPoint is one time bucket's revenue, expenses and net result.
type TrendPoint struct {
	Key      string
	Start    time.Time
	Revenue  money.Money
	Expenses money.Money
	Net      money.Money
}

// Trend buckets entries by granularity and reports per-bucket revenue,
// expenses and net, in ascending bucket order.
func (g *Generator) Trend(accounts []model.Account, entries []model.JournalEntry, granularity period.Granularity) ([]TrendPoint, error) {
	buckets, err := period.Partition(entries, granularity)
	if err != nil {
		return nil, err
	}

	var points []TrendPoint
	for _, bucket := range buckets {
		balances, err := g.accountBalances(accounts, bucket.Entries, func(model.JournalEntry) bool { return true })
		if err != nil {
			return nil, err
		}

		revenue := money.Zero(g.currency)
		expenses := money.Zero(g.currency)
		for _, a := range accounts {
			switch a.Type {
			case model.AccountTypeRevenue:
				revenue = add(revenue, balances[a.ID])
			case model.AccountTypeExpense:
				expenses = add(expenses, balances[a.ID])
			}
		}

		points = append(points, TrendPoint{
			Key:      bucket.Key,
			Start:    bucket.Start,
			Revenue:  revenue,
			Expenses: expenses,
			Net:      sub(revenue, expenses),
		})
	}
	return points, nil
}
