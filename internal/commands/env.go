package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/accounts"
	"github.com/ledgerline-dev/ledgerline/internal/config"
	"github.com/ledgerline-dev/ledgerline/internal/ledger"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/statement"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

// ConfigFileName is the project configuration file at the data root.
const ConfigFileName = "ledgerline.yaml"

const dateFormat = "2006-01-02"

// env bundles everything a report command needs from a data root.
type env struct {
	cfg   *config.Config
	store *store.Store
	chart *accounts.Service
	gen   *statement.Generator
}

func loadEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, ConfigFileName))
	if err != nil {
		return nil, err
	}

	chart, err := accounts.Load(absDir)
	if err != nil {
		return nil, err
	}

	tolerance, err := cfg.Tolerance()
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:   cfg,
		store: store.New(absDir, cfg.Ledger.Currency),
		chart: chart,
		gen:   statement.NewGenerator(cfg.Ledger.Currency, tolerance),
	}, nil
}

// entriesIn loads validated entries for a date range. Validation failures
// abort: statements over a malformed journal would be meaningless.
func (e *env) entriesIn(r ledger.DateRange) ([]model.JournalEntry, error) {
	entries, err := e.store.Entries(r)
	if err != nil {
		return nil, err
	}
	if verrs := ledger.ValidateEntries(entries, e.chart, e.cfg.Ledger.Currency); len(verrs) > 0 {
		return nil, fmt.Errorf("journal validation failed: %s", verrs[0].Error())
	}
	return entries, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// parseRange resolves --from/--to flags, defaulting to the current
// calendar year when both are empty.
func parseRange(from, to string) (ledger.DateRange, error) {
	if from == "" && to == "" {
		return store.YearRange(time.Now().Year()), nil
	}
	f, err := parseDate(from)
	if err != nil {
		return ledger.DateRange{}, err
	}
	t, err := parseDate(to)
	if err != nil {
		return ledger.DateRange{}, err
	}
	return ledger.DateRange{From: f, To: t}, nil
}
