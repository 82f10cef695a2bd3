// Package period partitions journal entries into non-overlapping time
// buckets and filters them with composable per-entry predicates.
package period

import (
	"fmt"
	"sort"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// Granularity selects the bucket width.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// UnknownGranularityError reports a granularity outside daily/weekly/monthly.
type UnknownGranularityError struct {
	Granularity Granularity
}

func (e UnknownGranularityError) Error() string {
	return fmt.Sprintf("unknown granularity %q", e.Granularity)
}

// Bucket is one time window with the entries dated inside it, ordered by date.
type Bucket struct {
	Key     string
	Start   time.Time
	Entries []model.JournalEntry
}

// Partition splits entries into buckets of the given granularity. Every
// input entry lands in exactly one bucket, and buckets are returned in
// ascending key order.
func Partition(entries []model.JournalEntry, g Granularity) ([]Bucket, error) {
	byKey := make(map[string]*Bucket)
	for _, entry := range entries {
		key, start, err := bucketKey(entry.Date, g)
		if err != nil {
			return nil, err
		}
		b, ok := byKey[key]
		if !ok {
			b = &Bucket{Key: key, Start: start}
			byKey[key] = b
		}
		b.Entries = append(b.Entries, entry)
	}

	buckets := make([]Bucket, 0, len(byKey))
	for _, b := range byKey {
		sort.SliceStable(b.Entries, func(i, j int) bool {
			return b.Entries[i].Date.Before(b.Entries[j].Date)
		})
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Start.Before(buckets[j].Start)
	})
	return buckets, nil
}

// bucketKey derives the bucket key and window start for a date. Weekly
// buckets are Sunday-aligned: the key is the date minus its weekday offset.
func bucketKey(date time.Time, g Granularity) (string, time.Time, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	switch g {
	case Daily:
		return day.Format("2006-01-02"), day, nil
	case Weekly:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start.Format("2006-01-02"), start, nil
	case Monthly:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start.Format("2006-01"), start, nil
	default:
		return "", time.Time{}, UnknownGranularityError{Granularity: g}
	}
}
