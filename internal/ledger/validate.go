package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/id"
	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id uuid.UUID) bool
}

// ValidateEntries enforces 6 invariants on a set of journal entries:
//
//  1. Each entry balances (sum of debits == sum of credits).
//  2. Each line has exactly one of debit/credit.
//  3. Every line references a known account.
//  4. All amounts are in the ledger currency.
//  5. Amounts have no more than 2 decimal places.
//  6. Entry IDs have the form YYYY-MM-NNN.
func ValidateEntries(entries []model.JournalEntry, accounts AccountChecker, currency string) []ValidationError {
	var errs []ValidationError

	for _, entry := range entries {
		// Invariant 1: entry balances.
		if !entry.Balanced() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     entry.ID,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", entry.TotalDebit().StringFixed(2), entry.TotalCredit().StringFixed(2)),
			})
		}

		for _, line := range entry.Lines {
			// Invariant 2: exactly one of debit/credit per line.
			hasDebit := !line.Debit.IsZero()
			hasCredit := !line.Credit.IsZero()
			if hasDebit == hasCredit {
				errs = append(errs, ValidationError{
					Invariant:   2,
					EntryID:     entry.ID,
					Description: "line must have exactly one of debit or credit",
				})
			}

			// Invariant 3: valid account references.
			if !accounts.Exists(line.AccountID) {
				errs = append(errs, ValidationError{
					Invariant:   3,
					EntryID:     entry.ID,
					Description: fmt.Sprintf("unknown account %s", line.AccountID),
				})
			}

			// Invariant 4: single ledger currency.
			if hasDebit && line.Debit.Currency != currency {
				errs = append(errs, ValidationError{
					Invariant:   4,
					EntryID:     entry.ID,
					Description: fmt.Sprintf("debit in %s, ledger currency is %s", line.Debit.Currency, currency),
				})
			}
			if hasCredit && line.Credit.Currency != currency {
				errs = append(errs, ValidationError{
					Invariant:   4,
					EntryID:     entry.ID,
					Description: fmt.Sprintf("credit in %s, ledger currency is %s", line.Credit.Currency, currency),
				})
			}

			// Invariant 5: exact decimals, no more than 2 places.
			hundred := decimal.NewFromInt(100)
			for _, amt := range []decimal.Decimal{line.Debit.Amount, line.Credit.Amount} {
				if !amt.IsZero() && !amt.Mul(hundred).Equal(amt.Mul(hundred).Floor()) {
					errs = append(errs, ValidationError{
						Invariant:   5,
						EntryID:     entry.ID,
						Description: fmt.Sprintf("amount %s has more than 2 decimal places", amt),
					})
				}
			}
		}

		// Invariant 6: entry ID format. Journal files group rows into
		// entries by this key, so a malformed ID corrupts grouping.
		year, month, seq, err := id.ParseEntryID(entry.ID)
		if err != nil || id.FormatEntryID(year, month, seq) != entry.ID {
			errs = append(errs, ValidationError{
				Invariant:   6,
				EntryID:     entry.ID,
				Description: "entry ID must have the form YYYY-MM-NNN",
			})
		}
	}

	return errs
}
