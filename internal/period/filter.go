package period

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// Side restricts entries by which side of a posting they touch.
type Side string

const (
	SideAll    Side = "all"
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Filter is a composed per-entry predicate. The zero value matches every
// entry. Because each condition inspects one entry in isolation, filtering
// commutes with bucketing: filter-then-bucket equals bucket-then-filter.
type Filter struct {
	// Side keeps entries with at least one line on the given side,
	// optionally scoped to AccountID.
	Side Side
	// AccountID scopes the Side condition to one account. uuid.Nil = any.
	AccountID uuid.UUID
	// MinAmount/MaxAmount bound the entry total (sum of debits), inclusive.
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	// Reference and Description match case-insensitive substrings.
	Reference   string
	Description string
}

// Matches reports whether a single entry satisfies every condition.
func (f Filter) Matches(e model.JournalEntry) bool {
	if f.Side == SideDebit || f.Side == SideCredit {
		if !f.matchesSide(e) {
			return false
		}
	}

	total := e.TotalDebit()
	if f.MinAmount != nil && total.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && total.GreaterThan(*f.MaxAmount) {
		return false
	}

	if f.Reference != "" && !containsFold(e.Reference, f.Reference) {
		return false
	}
	if f.Description != "" && !containsFold(e.Description, f.Description) {
		return false
	}
	return true
}

// Apply returns the entries matching the filter, preserving input order.
// The input slice is never mutated.
func (f Filter) Apply(entries []model.JournalEntry) []model.JournalEntry {
	var out []model.JournalEntry
	for _, e := range entries {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matchesSide(e model.JournalEntry) bool {
	for _, line := range e.Lines {
		if f.AccountID != uuid.Nil && line.AccountID != f.AccountID {
			continue
		}
		if f.Side == SideDebit && !line.Debit.IsZero() {
			return true
		}
		if f.Side == SideCredit && !line.Credit.IsZero() {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
