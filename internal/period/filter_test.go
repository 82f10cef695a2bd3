package period

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleEntries() []model.JournalEntry {
	e1 := entry("2025-01-001", date(2025, 1, 5), "100.00")
	e1.Reference = "INV-001"
	e1.Description = "Consulting for Acme"

	e2 := entry("2025-01-002", date(2025, 1, 12), "250.00")
	e2.Reference = "INV-002"
	e2.Description = "Product sale"

	e3 := entry("2025-01-003", date(2025, 1, 20), "40.00")
	e3.Reference = "CC-88"
	e3.Description = "Software subscription"

	return []model.JournalEntry{e1, e2, e3}
}

func TestFilter_ZeroValueMatchesAll(t *testing.T) {
	entries := sampleEntries()
	got := Filter{}.Apply(entries)
	assert.Len(t, got, len(entries))
}

func TestFilter_AmountRangeInclusive(t *testing.T) {
	f := Filter{MinAmount: decp("40.00"), MaxAmount: decp("100.00")}
	got := f.Apply(sampleEntries())
	require.Len(t, got, 2)
	assert.Equal(t, "2025-01-001", got[0].ID)
	assert.Equal(t, "2025-01-003", got[1].ID)
}

func TestFilter_ReferenceCaseInsensitive(t *testing.T) {
	f := Filter{Reference: "inv-"}
	got := f.Apply(sampleEntries())
	assert.Len(t, got, 2)
}

func TestFilter_DescriptionSubstring(t *testing.T) {
	f := Filter{Description: "ACME"}
	got := f.Apply(sampleEntries())
	require.Len(t, got, 1)
	assert.Equal(t, "2025-01-001", got[0].ID)
}

func TestFilter_SideScopedToAccount(t *testing.T) {
	entries := sampleEntries()

	debitCash := Filter{Side: SideDebit, AccountID: cashID}
	assert.Len(t, debitCash.Apply(entries), 3)

	creditCash := Filter{Side: SideCredit, AccountID: cashID}
	assert.Empty(t, creditCash.Apply(entries))

	creditRevenue := Filter{Side: SideCredit, AccountID: revenueID}
	assert.Len(t, creditRevenue.Apply(entries), 3)
}

func TestFilter_CommutesWithBucketing(t *testing.T) {
	entries := sampleEntries()
	f := Filter{MinAmount: decp("50.00")}

	// filter-then-bucket
	filteredFirst, err := Partition(f.Apply(entries), Monthly)
	require.NoError(t, err)

	// bucket-then-filter-per-bucket
	buckets, err := Partition(entries, Monthly)
	require.NoError(t, err)
	var bucketedFirst []Bucket
	for _, b := range buckets {
		kept := f.Apply(b.Entries)
		if len(kept) == 0 {
			continue
		}
		b.Entries = kept
		bucketedFirst = append(bucketedFirst, b)
	}

	assert.Equal(t, filteredFirst, bucketedFirst)
}
