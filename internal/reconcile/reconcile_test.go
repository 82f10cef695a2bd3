package reconcile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

func usd(s string) money.Money {
	return money.New(decimal.RequireFromString(s), "USD")
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func bookLine(id string, day time.Time, amount string) BookLine {
	return BookLine{EntryID: id, Date: day, Amount: usd(amount)}
}

func bankLine(day time.Time, amount, desc string) model.BankLine {
	return model.BankLine{Date: day, Amount: usd(amount), Description: desc}
}

func TestReconcile_IdenticalSetsFullyReconciled(t *testing.T) {
	book := []BookLine{
		bookLine("2025-01-001", date(2025, 1, 5), "1000.00"),
		bookLine("2025-01-002", date(2025, 1, 10), "-400.00"),
	}
	bank := []model.BankLine{
		bankLine(date(2025, 1, 5), "1000.00", "DEPOSIT"),
		bankLine(date(2025, 1, 10), "-400.00", "ACH DEBIT"),
	}

	result, err := Reconcile(book, bank, usd("100.00"), Options{})
	require.NoError(t, err)

	assert.True(t, result.Difference.IsZero())
	assert.Empty(t, result.UnmatchedBook)
	assert.Empty(t, result.UnmatchedBank)
	assert.Len(t, result.Matched, 2)
	assert.True(t, result.FullyReconciled())
	assert.True(t, result.BookBalance.Equal(usd("700.00")))
	assert.True(t, result.BankBalance.Equal(usd("700.00")))
}

func TestReconcile_MissingBankLine(t *testing.T) {
	book := []BookLine{
		bookLine("2025-01-001", date(2025, 1, 5), "1000.00"),
		bookLine("2025-01-002", date(2025, 1, 10), "-400.00"),
	}
	bank := []model.BankLine{
		bankLine(date(2025, 1, 5), "1000.00", "DEPOSIT"),
	}

	result, err := Reconcile(book, bank, usd("0"), Options{})
	require.NoError(t, err)

	require.Len(t, result.UnmatchedBook, 1)
	assert.Equal(t, "2025-01-002", result.UnmatchedBook[0].EntryID)
	assert.Empty(t, result.UnmatchedBank)
	// difference = bank - book = 1000 - 600 = 400, the missing line's amount negated
	assert.True(t, result.Difference.Equal(usd("400.00")))
	assert.False(t, result.FullyReconciled())
}

func TestReconcile_ExtraBankLine(t *testing.T) {
	book := []BookLine{
		bookLine("2025-01-001", date(2025, 1, 5), "1000.00"),
	}
	bank := []model.BankLine{
		bankLine(date(2025, 1, 5), "1000.00", "DEPOSIT"),
		bankLine(date(2025, 1, 8), "-12.50", "BANK FEE"),
	}

	result, err := Reconcile(book, bank, usd("0"), Options{})
	require.NoError(t, err)
	require.Len(t, result.UnmatchedBank, 1)
	assert.True(t, result.Difference.Equal(usd("-12.50")))
}

func TestReconcile_DateToleranceWindow(t *testing.T) {
	book := []BookLine{bookLine("2025-01-001", date(2025, 1, 5), "75.00")}
	bank := []model.BankLine{bankLine(date(2025, 1, 7), "75.00", "DEPOSIT")}

	// Default tolerance 0: dates differ, no match.
	strict, err := Reconcile(book, bank, usd("0"), Options{})
	require.NoError(t, err)
	assert.Empty(t, strict.Matched)
	assert.Len(t, strict.UnmatchedBook, 1)
	assert.Len(t, strict.UnmatchedBank, 1)
	assert.True(t, strict.Difference.IsZero(), "amounts agree even when unmatched")

	// Widened window matches.
	loose, err := Reconcile(book, bank, usd("0"), Options{ToleranceDays: 2})
	require.NoError(t, err)
	assert.Len(t, loose.Matched, 1)
	assert.True(t, loose.FullyReconciled())
}

func TestReconcile_AmountMustBeExact(t *testing.T) {
	book := []BookLine{bookLine("2025-01-001", date(2025, 1, 5), "75.00")}
	bank := []model.BankLine{bankLine(date(2025, 1, 5), "75.01", "DEPOSIT")}

	result, err := Reconcile(book, bank, usd("0"), Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Matched)
}

func TestReconcile_EachBankLineMatchesOnce(t *testing.T) {
	// Two identical bank lines against one book line: only one matches.
	book := []BookLine{bookLine("2025-01-001", date(2025, 1, 5), "50.00")}
	bank := []model.BankLine{
		bankLine(date(2025, 1, 5), "50.00", "DEPOSIT A"),
		bankLine(date(2025, 1, 5), "50.00", "DEPOSIT B"),
	}

	result, err := Reconcile(book, bank, usd("0"), Options{})
	require.NoError(t, err)
	assert.Len(t, result.Matched, 1)
	assert.Len(t, result.UnmatchedBank, 1)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	book := []BookLine{bookLine("2025-01-001", date(2025, 1, 5), "50.00")}
	bank := []model.BankLine{bankLine(date(2025, 1, 5), "50.00", "DEPOSIT")}
	bookCopy := make([]BookLine, len(book))
	copy(bookCopy, book)

	_, err := Reconcile(book, bank, usd("0"), Options{})
	require.NoError(t, err)
	assert.Equal(t, bookCopy, book)
}

func TestBookLines_SignConvention(t *testing.T) {
	cashID := uuid.New()
	revenueID := uuid.New()
	entries := []model.JournalEntry{
		{
			ID:   "2025-01-002",
			Date: date(2025, 1, 10),
			Lines: []model.EntryLine{
				{AccountID: revenueID, Debit: usd("400.00")},
				{AccountID: cashID, Credit: usd("400.00")},
			},
		},
		{
			ID:   "2025-01-001",
			Date: date(2025, 1, 5),
			Lines: []model.EntryLine{
				{AccountID: cashID, Debit: usd("1000.00")},
				{AccountID: revenueID, Credit: usd("1000.00")},
			},
		},
	}

	lines := BookLines(entries, cashID, model.AccountTypeAsset)
	require.Len(t, lines, 2)
	// Ordered by date, debit-positive for the asset account.
	assert.Equal(t, "2025-01-001", lines[0].EntryID)
	assert.True(t, lines[0].Amount.Equal(usd("1000.00")))
	assert.True(t, lines[1].Amount.Equal(usd("-400.00")))
}

func TestBookLines_LiabilitySignFlipped(t *testing.T) {
	cardID := uuid.New()
	expenseID := uuid.New()
	entries := []model.JournalEntry{
		{
			ID:   "2025-01-001",
			Date: date(2025, 1, 5),
			Lines: []model.EntryLine{
				{AccountID: expenseID, Debit: usd("80.00")},
				{AccountID: cardID, Credit: usd("80.00")},
			},
		},
	}

	lines := BookLines(entries, cardID, model.AccountTypeLiability)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Amount.Equal(usd("80.00")), "credit increases a liability")
}
