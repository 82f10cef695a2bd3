// Package reconcile diffs bank statement lines against book entries for
// one account and reports matched items, unmatched items and the balance
// difference. It never mutates its inputs; persisting reconciled flags is
// the caller's concern.
package reconcile

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// Options tunes matching behavior.
type Options struct {
	// ToleranceDays widens the date window a bank line may match a book
	// line within. Zero (the default) requires the same day.
	ToleranceDays int
}

// BookLine is one account-side movement extracted from a journal entry,
// signed with the account's convention (debit-positive for assets).
type BookLine struct {
	EntryID     string
	Date        time.Time
	Description string
	Reference   string
	Amount      money.Money
}

// Match pairs a book line with the bank line it reconciles against.
type Match struct {
	Book BookLine
	Bank model.BankLine
}

// Result is the reconciliation report for one account and period.
type Result struct {
	Currency      string
	BookBalance   money.Money
	BankBalance   money.Money
	Difference    money.Money // bank - book
	Matched       []Match
	UnmatchedBook []BookLine
	UnmatchedBank []model.BankLine
}

// FullyReconciled reports a zero difference with no unmatched lines.
func (r Result) FullyReconciled() bool {
	return r.Difference.IsZero() && len(r.UnmatchedBook) == 0 && len(r.UnmatchedBank) == 0
}

// BookLines extracts the signed movements of one account from journal
// entries, ordered by date. The sign follows the account type's balance
// convention so amounts are directly comparable with bank line amounts.
func BookLines(entries []model.JournalEntry, accountID uuid.UUID, accountType model.AccountType) []BookLine {
	var lines []BookLine
	for _, entry := range entries {
		for _, l := range entry.Lines {
			if l.AccountID != accountID {
				continue
			}
			amount, err := l.Debit.Sub(l.Credit)
			if err != nil {
				continue // mixed-currency lines are rejected by validation upstream
			}
			if accountType != model.AccountTypeAsset && accountType != model.AccountTypeExpense {
				amount = amount.Neg()
			}
			lines = append(lines, BookLine{
				EntryID:     entry.ID,
				Date:        entry.Date,
				Description: entry.Description,
				Reference:   entry.Reference,
				Amount:      amount,
			})
		}
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Date.Before(lines[j].Date) })
	return lines
}

// Reconcile matches bank lines against book lines. A pair matches when the
// amounts are exactly equal (same currency) and the dates fall within the
// tolerance window. Balances both start from openingBalance:
//
//	bookBalance = opening + sum(book amounts)
//	bankBalance = opening + sum(bank amounts)
//	difference  = bankBalance - bookBalance
func Reconcile(book []BookLine, bank []model.BankLine, openingBalance money.Money, opts Options) (Result, error) {
	currency := openingBalance.Currency

	bookBalance := openingBalance
	for _, l := range book {
		var err error
		bookBalance, err = bookBalance.Add(l.Amount)
		if err != nil {
			return Result{}, err
		}
	}

	bankBalance := openingBalance
	for _, l := range bank {
		var err error
		bankBalance, err = bankBalance.Add(l.Amount)
		if err != nil {
			return Result{}, err
		}
	}

	difference, err := bankBalance.Sub(bookBalance)
	if err != nil {
		return Result{}, err
	}

	usedBook := make([]bool, len(book))
	result := Result{
		Currency:    currency,
		BookBalance: bookBalance,
		BankBalance: bankBalance,
		Difference:  difference,
	}

	for _, bankLine := range bank {
		matched := false
		for i, bookLine := range book {
			if usedBook[i] {
				continue
			}
			if !bookLine.Amount.Equal(bankLine.Amount) {
				continue
			}
			if !withinDays(bookLine.Date, bankLine.Date, opts.ToleranceDays) {
				continue
			}
			usedBook[i] = true
			result.Matched = append(result.Matched, Match{Book: bookLine, Bank: bankLine})
			matched = true
			break
		}
		if !matched {
			result.UnmatchedBank = append(result.UnmatchedBank, bankLine)
		}
	}

	for i, bookLine := range book {
		if !usedBook[i] {
			result.UnmatchedBook = append(result.UnmatchedBook, bookLine)
		}
	}

	return result, nil
}

func withinDays(a, b time.Time, days int) bool {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	diff := da.Sub(db)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(days)*24*time.Hour
}
