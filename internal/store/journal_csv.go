package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/accounts"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// Header is the CSV header for journal.csv.
const Header = "entry_id,date,account_code,reference,description,debit,credit"

const (
	numFields  = 7
	dateFormat = "2006-01-02"
	colEntryID = 0
	colDate    = 1
	colCode    = 2
	colRef     = 3
	colDesc    = 4
	colDebit   = 5
	colCredit  = 6
)

// ReadEntries reads a journal.csv and groups its rows into journal entries
// by entry ID, preserving row order. Account codes resolve against the
// chart; debit and credit amounts carry the given currency.
func ReadEntries(r io.Reader, chart *accounts.Service, currency string) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.JournalEntry
	index := make(map[string]int)
	for i, rec := range records[1:] {
		entryID, line, date, ref, desc, err := unmarshalRow(rec, chart, currency)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		idx, ok := index[entryID]
		if !ok {
			idx = len(entries)
			index[entryID] = idx
			entries = append(entries, model.JournalEntry{
				ID:          entryID,
				Date:        date,
				Reference:   ref,
				Description: desc,
			})
		}
		entries[idx].Lines = append(entries[idx].Lines, line)
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry, chart *accounts.Service) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, entry := range entries {
		for _, line := range entry.Lines {
			acct, ok := chart.Get(line.AccountID)
			if !ok {
				return fmt.Errorf("entry %s: unknown account %s", entry.ID, line.AccountID)
			}
			row := make([]string, numFields)
			row[colEntryID] = entry.ID
			row[colDate] = entry.Date.Format(dateFormat)
			row[colCode] = acct.Code
			row[colRef] = entry.Reference
			row[colDesc] = entry.Description
			if !line.Debit.IsZero() {
				row[colDebit] = line.Debit.Amount.StringFixed(2)
			}
			if !line.Credit.IsZero() {
				row[colCredit] = line.Credit.Amount.StringFixed(2)
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing entry %s: %w", entry.ID, err)
			}
		}
	}
	return cw.Error()
}

func unmarshalRow(record []string, chart *accounts.Service, currency string) (entryID string, line model.EntryLine, date time.Time, ref, desc string, err error) {
	date, err = time.Parse(dateFormat, record[colDate])
	if err != nil {
		return "", model.EntryLine{}, time.Time{}, "", "", fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	acct, ok := chart.GetByCode(record[colCode])
	if !ok {
		return "", model.EntryLine{}, time.Time{}, "", "", fmt.Errorf("unknown account code %q", record[colCode])
	}

	line = model.EntryLine{AccountID: acct.ID}
	if record[colDebit] != "" {
		line.Debit, err = money.FromString(record[colDebit], currency)
		if err != nil {
			return "", model.EntryLine{}, time.Time{}, "", "", err
		}
	}
	if record[colCredit] != "" {
		line.Credit, err = money.FromString(record[colCredit], currency)
		if err != nil {
			return "", model.EntryLine{}, time.Time{}, "", "", err
		}
	}

	return record[colEntryID], line, date, record[colRef], record[colDesc], nil
}
