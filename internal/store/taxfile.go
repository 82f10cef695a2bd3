package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/tax"
)

// taxFile is the YAML shape of tax-schedules.yaml. Amounts and rates are
// strings so decimal parsing stays exact.
type taxFile struct {
	Schedules []taxScheduleYAML `yaml:"schedules"`
}

type taxScheduleYAML struct {
	Year     int              `yaml:"year"`
	Type     string           `yaml:"type"`
	Rate     string           `yaml:"rate,omitempty"`
	Brackets []taxBracketYAML `yaml:"brackets,omitempty"`
}

type taxBracketYAML struct {
	Min       string `yaml:"min"`
	Max       string `yaml:"max,omitempty"`
	Unbounded bool   `yaml:"unbounded,omitempty"`
	Rate      string `yaml:"rate"`
}

// TaxBrackets returns the bracket table configured for a year, or nil when
// no schedule exists for it (callers fall back to tax.DefaultSchedule).
func (s *Store) TaxBrackets(year int) ([]model.TaxBracket, error) {
	sched, ok, err := s.TaxSchedule(year)
	if err != nil || !ok {
		return nil, err
	}
	return sched.Brackets, nil
}

// TaxSchedule returns the full schedule for a year and whether one exists.
func (s *Store) TaxSchedule(year int) (tax.Schedule, bool, error) {
	path := filepath.Join(s.root, "tax-schedules.yaml")
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return tax.Schedule{}, false, nil
	}
	if err != nil {
		return tax.Schedule{}, false, fmt.Errorf("reading tax schedules: %w", err)
	}

	var file taxFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return tax.Schedule{}, false, fmt.Errorf("parsing tax schedules: %w", err)
	}

	for _, y := range file.Schedules {
		if y.Year != year {
			continue
		}
		sched, err := y.toSchedule()
		if err != nil {
			return tax.Schedule{}, false, fmt.Errorf("tax schedule for %d: %w", year, err)
		}
		return sched, true, nil
	}
	return tax.Schedule{}, false, nil
}

func (y taxScheduleYAML) toSchedule() (tax.Schedule, error) {
	sched := tax.Schedule{Year: y.Year, Type: model.TaxCalculationType(y.Type)}
	if !sched.Type.Valid() {
		return tax.Schedule{}, fmt.Errorf("unknown calculation type %q", y.Type)
	}

	if y.Rate != "" {
		rate, err := decimal.NewFromString(y.Rate)
		if err != nil {
			return tax.Schedule{}, fmt.Errorf("parsing rate %q: %w", y.Rate, err)
		}
		sched.Rate = rate
	}

	for i, b := range y.Brackets {
		bracket := model.TaxBracket{Unbounded: b.Unbounded}

		min, err := decimal.NewFromString(b.Min)
		if err != nil {
			return tax.Schedule{}, fmt.Errorf("bracket %d: parsing min %q: %w", i, b.Min, err)
		}
		bracket.MinIncome = min

		if !b.Unbounded {
			max, err := decimal.NewFromString(b.Max)
			if err != nil {
				return tax.Schedule{}, fmt.Errorf("bracket %d: parsing max %q: %w", i, b.Max, err)
			}
			bracket.MaxIncome = max
		}

		rate, err := decimal.NewFromString(b.Rate)
		if err != nil {
			return tax.Schedule{}, fmt.Errorf("bracket %d: parsing rate %q: %w", i, b.Rate, err)
		}
		bracket.Rate = rate

		sched.Brackets = append(sched.Brackets, bracket)
	}
	return sched, nil
}
