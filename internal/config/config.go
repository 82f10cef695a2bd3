package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgerline.yaml configuration.
type Config struct {
	Business       BusinessConfig       `yaml:"business"`
	Fiscal         FiscalConfig         `yaml:"fiscal"`
	Ledger         LedgerConfig         `yaml:"ledger"`
	Reconciliation ReconciliationConfig `yaml:"reconciliation"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// LedgerConfig controls engine-wide ledger settings.
type LedgerConfig struct {
	Currency string `yaml:"currency"`
	// RoundingTolerance is the balance-sheet identity tolerance as a
	// decimal string, e.g. "0.01" for one cent.
	RoundingTolerance string `yaml:"rounding_tolerance"`
}

// ReconciliationConfig controls bank reconciliation matching.
type ReconciliationConfig struct {
	// ToleranceDays widens the date window for amount matches. 0 requires
	// the same day.
	ToleranceDays int `yaml:"tolerance_days"`
}

// Load reads a ledgerline.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Ledger: LedgerConfig{
			Currency:          "USD",
			RoundingTolerance: "0.01",
		},
		Reconciliation: ReconciliationConfig{
			ToleranceDays: 0,
		},
	}
}

// Tolerance parses the configured rounding tolerance.
func (c *Config) Tolerance() (decimal.Decimal, error) {
	if c.Ledger.RoundingTolerance == "" {
		return decimal.NewFromFloat(0.01), nil
	}
	tol, err := decimal.NewFromString(c.Ledger.RoundingTolerance)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing rounding_tolerance %q: %w", c.Ledger.RoundingTolerance, err)
	}
	return tol, nil
}
