package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// EntryLine is one side of a double-entry posting. Exactly one of
// Debit/Credit is non-zero on a well-formed line.
type EntryLine struct {
	AccountID uuid.UUID
	Debit     money.Money // zero if credit side
	Credit    money.Money // zero if debit side
}

// JournalEntry is a dated, balanced group of entry lines. Entry IDs follow
// the "YYYY-MM-NNN" scheme (see internal/id).
type JournalEntry struct {
	ID          string
	Date        time.Time
	Reference   string
	Description string
	Lines       []EntryLine
}

// TotalDebit sums the debit side of all lines.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit.Amount)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit.Amount)
	}
	return total
}

// Balanced reports whether total debits equal total credits.
func (e JournalEntry) Balanced() bool {
	return e.TotalDebit().Equal(e.TotalCredit())
}

// Currency returns the currency of the first non-zero line, or "" for an
// empty entry. Mixed-currency entries are rejected by ledger validation.
func (e JournalEntry) Currency() string {
	for _, l := range e.Lines {
		if !l.Debit.IsZero() {
			return l.Debit.Currency
		}
		if !l.Credit.IsZero() {
			return l.Credit.Currency
		}
	}
	return ""
}
