package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/accounts"
	"github.com/ledgerline-dev/ledgerline/internal/ledger"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

func testRoot(t *testing.T) (string, *accounts.Service) {
	t.Helper()
	root := t.TempDir()
	chart := accounts.NewService(accounts.DefaultChart("llc_single_member"))
	require.NoError(t, chart.Save(root))
	return root, chart
}

func mustUSD(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.FromString(s, "USD")
	require.NoError(t, err)
	return m
}

func entry(t *testing.T, chart *accounts.Service, id string, date time.Time, debitCode, creditCode, amount string) model.JournalEntry {
	t.Helper()
	debit, ok := chart.GetByCode(debitCode)
	require.True(t, ok, "account %s", debitCode)
	credit, ok := chart.GetByCode(creditCode)
	require.True(t, ok, "account %s", creditCode)
	return model.JournalEntry{
		ID:          id,
		Date:        date,
		Reference:   "INV-" + id,
		Description: "entry " + id,
		Lines: []model.EntryLine{
			{AccountID: debit.ID, Debit: mustUSD(t, amount)},
			{AccountID: credit.ID, Credit: mustUSD(t, amount)},
		},
	}
}

func TestStore_WriteAndReadEntries(t *testing.T) {
	root, chart := testRoot(t)
	s := New(root, "USD")

	jan := []model.JournalEntry{
		entry(t, chart, "2025-01-001", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "1010", "4010", "1000.00"),
		entry(t, chart, "2025-01-002", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), "5030", "1010", "45.50"),
	}
	mar := []model.JournalEntry{
		entry(t, chart, "2025-03-001", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), "1010", "4010", "500.00"),
	}
	require.NoError(t, s.WriteMonth(2025, 1, jan))
	require.NoError(t, s.WriteMonth(2025, 3, mar))

	got, err := s.Entries(YearRange(2025))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, jan[0], got[0])
	assert.Equal(t, jan[1], got[1])
	assert.Equal(t, mar[0], got[2])
}

func TestStore_EntriesFiltersByRange(t *testing.T) {
	root, chart := testRoot(t)
	s := New(root, "USD")

	jan := []model.JournalEntry{
		entry(t, chart, "2025-01-001", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "1010", "4010", "1000.00"),
		entry(t, chart, "2025-01-002", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), "5030", "1010", "45.50"),
	}
	require.NoError(t, s.WriteMonth(2025, 1, jan))

	got, err := s.Entries(ledger.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-01-001", got[0].ID)
}

func TestStore_EntriesMissingMonths(t *testing.T) {
	root, _ := testRoot(t)
	s := New(root, "USD")

	got, err := s.Entries(YearRange(2025))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Accounts(t *testing.T) {
	root, chart := testRoot(t)
	s := New(root, "USD")

	got, err := s.Accounts()
	require.NoError(t, err)
	assert.Equal(t, chart.All(), got)
}

func TestStore_BankLines(t *testing.T) {
	root, _ := testRoot(t)
	s := New(root, "USD")

	require.NoError(t, os.MkdirAll(filepath.Join(root, "bank"), 0o755))
	statement := "date,description,reference,amount\n" +
		"2025-01-05,DEPOSIT,REF1,1000.00\n" +
		"2025-02-10,ACH DEBIT,REF2,-45.50\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "bank", "1010.csv"), []byte(statement), 0o644))

	lines, err := s.BankLines("1010", ledger.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "DEPOSIT", lines[0].Description)
	assert.True(t, lines[0].Amount.Equal(mustUSD(t, "1000.00")))

	// No statement file for the account means no lines, not an error.
	none, err := s.BankLines("2010", YearRange(2025))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestStore_TaxSchedule(t *testing.T) {
	root, _ := testRoot(t)
	s := New(root, "USD")

	yamlDoc := `schedules:
  - year: 2025
    type: progressive
    brackets:
      - min: "0"
        max: "50000"
        rate: "0.10"
      - min: "50001"
        unbounded: true
        rate: "0.20"
  - year: 2024
    type: flat
    rate: "0.21"
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "tax-schedules.yaml"), []byte(yamlDoc), 0o644))

	sched, ok, err := s.TaxSchedule(2025)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.TaxProgressive, sched.Type)
	require.Len(t, sched.Brackets, 2)
	assert.Equal(t, "50000", sched.Brackets[0].MaxIncome.String())
	assert.True(t, sched.Brackets[1].Unbounded)

	result, err := sched.Calculate(mustUSD(t, "100000"))
	require.NoError(t, err)
	assert.Equal(t, "15000.00", result.Tax.Amount.StringFixed(2))

	flat, ok, err := s.TaxSchedule(2024)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.TaxFlat, flat.Type)
	assert.Equal(t, "0.21", flat.Rate.String())

	_, ok, err = s.TaxSchedule(2020)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_TaxScheduleMissingFile(t *testing.T) {
	root, _ := testRoot(t)
	s := New(root, "USD")

	_, ok, err := s.TaxSchedule(2025)
	require.NoError(t, err)
	assert.False(t, ok)

	brackets, err := s.TaxBrackets(2025)
	require.NoError(t, err)
	assert.Nil(t, brackets)
}

func TestStore_TaxScheduleBadType(t *testing.T) {
	root, _ := testRoot(t)
	s := New(root, "USD")

	yamlDoc := "schedules:\n  - year: 2025\n    type: lump-sum\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "tax-schedules.yaml"), []byte(yamlDoc), 0o644))

	_, _, err := s.TaxSchedule(2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lump-sum")
}
