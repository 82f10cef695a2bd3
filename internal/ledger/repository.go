package ledger

import (
	"fmt"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// DateRange is an inclusive [From, To] date window.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls within the range (inclusive).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Repository is the read-only data-access contract the engine depends on.
// Implementations (CSV files, a database, fixtures in tests) are supplied
// by the caller; the engine never persists anything itself.
type Repository interface {
	// Accounts returns the chart of accounts.
	Accounts() ([]model.Account, error)
	// Entries returns journal entries dated within the range, ascending by date.
	Entries(r DateRange) ([]model.JournalEntry, error)
	// TaxBrackets returns the bracket table for a tax year, or nil if none
	// is configured for that year.
	TaxBrackets(year int) ([]model.TaxBracket, error)
	// BankLines returns bank statement lines for an account code within the
	// range, as supplied by a bank-feed integration.
	BankLines(accountCode string, r DateRange) ([]model.BankLine, error)
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Kind string // "account", "tax year", ...
	Key  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}
