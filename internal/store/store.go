// Package store implements the ledger.Repository contract over a plain
// file layout: accounts/chart-of-accounts.csv, YYYY/MM/journal.csv,
// bank/<code>.csv and tax-schedules.yaml under one data root.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/accounts"
	"github.com/ledgerline-dev/ledgerline/internal/bankfeed"
	"github.com/ledgerline-dev/ledgerline/internal/ledger"
	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// Store reads ledger data from a directory tree. It implements
// ledger.Repository.
type Store struct {
	root     string
	currency string
}

// New creates a Store over a data root. Amounts parse in the given currency.
func New(root, currency string) *Store {
	return &Store{root: root, currency: currency}
}

// Accounts returns the chart of accounts.
func (s *Store) Accounts() ([]model.Account, error) {
	chart, err := accounts.Load(s.root)
	if err != nil {
		return nil, err
	}
	return chart.All(), nil
}

// Entries reads journal entries dated within the range, ascending by date.
// Months with no journal file contribute nothing.
func (s *Store) Entries(r ledger.DateRange) ([]model.JournalEntry, error) {
	chart, err := accounts.Load(s.root)
	if err != nil {
		return nil, err
	}

	var entries []model.JournalEntry
	for y, m := r.From.Year(), int(r.From.Month()); y < r.To.Year() || (y == r.To.Year() && m <= int(r.To.Month())); {
		monthEntries, err := s.readMonth(chart, y, m)
		if err != nil {
			return nil, err
		}
		for _, e := range monthEntries {
			if r.Contains(e.Date) {
				entries = append(entries, e)
			}
		}

		m++
		if m > 12 {
			m = 1
			y++
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries, nil
}

// BankLines reads bank/<code>.csv and returns the lines within the range.
func (s *Store) BankLines(accountCode string, r ledger.DateRange) ([]model.BankLine, error) {
	path := filepath.Join(s.root, "bank", accountCode+".csv")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening bank statement %s: %w", path, err)
	}
	defer f.Close()

	parser := &bankfeed.GenericParser{Currency: s.currency}
	all, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading bank statement %s: %w", path, err)
	}

	var lines []model.BankLine
	for _, l := range all {
		if r.Contains(l.Date) {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

func (s *Store) readMonth(chart *accounts.Service, year, month int) ([]model.JournalEntry, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f, chart, s.currency)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return entries, nil
}

// WriteMonth writes a month's entries to YYYY/MM/journal.csv, creating
// directories as needed.
func (s *Store) WriteMonth(year, month int, entries []model.JournalEntry) error {
	chart, err := accounts.Load(s.root)
	if err != nil {
		return err
	}

	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal %s: %w", path, err)
	}
	defer f.Close()

	return WriteEntries(f, entries, chart)
}

func (s *Store) monthPath(year, month int) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}

// YearRange returns the inclusive date range covering a calendar year.
func YearRange(year int) ledger.DateRange {
	return ledger.DateRange{
		From: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}
