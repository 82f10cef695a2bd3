// Package statement assembles balance sheets, income statements, cash-flow
// statements and trend reports from journal entries and account metadata.
// Derived totals (gross profit, net income, ending cash, ...) are methods,
// not stored fields, so they always recompute from their components.
package statement

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// Line is one account's contribution to a statement section.
type Line struct {
	AccountID uuid.UUID
	Code      string
	Name      string
	Category  model.AccountCategory
	Balance   money.Money
}

// Section groups lines under one statement heading.
type Section struct {
	Lines []Line
	Total money.Money
}

// add sums two amounts that are same-currency by construction: the
// generator validates all entries against a single ledger currency before
// any section is built.
func add(a, b money.Money) money.Money {
	sum, err := a.Add(b)
	if err != nil {
		// Unreachable for generator-built statements.
		panic(err)
	}
	return sum
}

func sub(a, b money.Money) money.Money {
	return add(a, b.Neg())
}

// inRange reports whether a date falls in [from, to] inclusive, comparing
// at day precision.
func inRange(date, from, to time.Time) bool {
	d := day(date)
	return !d.Before(day(from)) && !d.After(day(to))
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
