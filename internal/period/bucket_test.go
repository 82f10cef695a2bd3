package period

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

var (
	cashID    = uuid.New()
	revenueID = uuid.New()
)

func usd(s string) money.Money {
	return money.New(decimal.RequireFromString(s), "USD")
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func entry(id string, day time.Time, amount string) model.JournalEntry {
	return model.JournalEntry{
		ID:   id,
		Date: day,
		Lines: []model.EntryLine{
			{AccountID: cashID, Debit: usd(amount)},
			{AccountID: revenueID, Credit: usd(amount)},
		},
	}
}

func TestPartition_Daily(t *testing.T) {
	entries := []model.JournalEntry{
		entry("2025-01-001", date(2025, 1, 15), "100.00"),
		entry("2025-01-002", date(2025, 1, 15), "50.00"),
		entry("2025-01-003", date(2025, 1, 16), "25.00"),
	}

	buckets, err := Partition(entries, Daily)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2025-01-15", buckets[0].Key)
	assert.Len(t, buckets[0].Entries, 2)
	assert.Equal(t, "2025-01-16", buckets[1].Key)
	assert.Len(t, buckets[1].Entries, 1)
}

func TestPartition_WeeklySundayAligned(t *testing.T) {
	// 2025-01-15 is a Wednesday; its week starts Sunday 2025-01-12.
	entries := []model.JournalEntry{
		entry("2025-01-001", date(2025, 1, 15), "100.00"),
		entry("2025-01-002", date(2025, 1, 12), "50.00"), // Sunday, same week
		entry("2025-01-003", date(2025, 1, 11), "25.00"), // Saturday, prior week
	}

	buckets, err := Partition(entries, Weekly)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2025-01-05", buckets[0].Key)
	assert.Len(t, buckets[0].Entries, 1)
	assert.Equal(t, "2025-01-12", buckets[1].Key)
	assert.Len(t, buckets[1].Entries, 2)
}

func TestPartition_Monthly(t *testing.T) {
	entries := []model.JournalEntry{
		entry("2025-01-001", date(2025, 1, 31), "100.00"),
		entry("2025-02-001", date(2025, 2, 1), "50.00"),
		entry("2025-02-002", date(2025, 2, 28), "25.00"),
	}

	buckets, err := Partition(entries, Monthly)
	require.NoError(t, err)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2025-01", buckets[0].Key)
	assert.Equal(t, "2025-02", buckets[1].Key)
	assert.Len(t, buckets[1].Entries, 2)
}

func TestPartition_IsAPartition(t *testing.T) {
	entries := []model.JournalEntry{
		entry("2025-01-001", date(2025, 1, 1), "1.00"),
		entry("2025-01-002", date(2025, 1, 8), "2.00"),
		entry("2025-01-003", date(2025, 1, 15), "3.00"),
		entry("2025-01-004", date(2025, 1, 15), "4.00"),
		entry("2025-02-001", date(2025, 2, 3), "5.00"),
	}

	for _, g := range []Granularity{Daily, Weekly, Monthly} {
		buckets, err := Partition(entries, g)
		require.NoError(t, err, "granularity %s", g)

		seen := make(map[string]int)
		total := 0
		for _, b := range buckets {
			total += len(b.Entries)
			for _, e := range b.Entries {
				seen[e.ID]++
			}
		}
		assert.Equal(t, len(entries), total, "granularity %s", g)
		for id, count := range seen {
			assert.Equal(t, 1, count, "entry %s appears once (granularity %s)", id, g)
		}
	}
}

func TestPartition_AscendingOrder(t *testing.T) {
	entries := []model.JournalEntry{
		entry("2025-03-001", date(2025, 3, 1), "1.00"),
		entry("2025-01-001", date(2025, 1, 1), "1.00"),
		entry("2025-02-001", date(2025, 2, 1), "1.00"),
	}

	buckets, err := Partition(entries, Monthly)
	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.True(t, buckets[0].Start.Before(buckets[1].Start))
	assert.True(t, buckets[1].Start.Before(buckets[2].Start))
}

func TestPartition_Empty(t *testing.T) {
	buckets, err := Partition(nil, Daily)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestPartition_UnknownGranularity(t *testing.T) {
	_, err := Partition([]model.JournalEntry{entry("x", date(2025, 1, 1), "1.00")}, "hourly")
	require.Error(t, err)
	var unknown UnknownGranularityError
	assert.ErrorAs(t, err, &unknown)
}
