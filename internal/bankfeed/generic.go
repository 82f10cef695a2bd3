package bankfeed

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// GenericParser parses the plain "date,description,reference,amount" CSV
// format used for bank statement files stored under bank/ in a data root.
type GenericParser struct {
	Currency string
}

const (
	genericDateFormat = "2006-01-02"
	genericNumFields  = 4
	genericColDate    = 0
	genericColDesc    = 1
	genericColRef     = 2
	genericColAmount  = 3
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic statement CSV and returns BankLines.
func (p *GenericParser) Parse(r io.Reader) ([]model.BankLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var lines []model.BankLine
	for i, rec := range records[1:] {
		date, err := time.Parse(genericDateFormat, rec[genericColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[genericColDate], err)
		}

		amount, err := money.FromString(rec[genericColAmount], p.Currency)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		lines = append(lines, model.BankLine{
			Date:        date,
			Description: rec[genericColDesc],
			Amount:      amount,
			Reference:   rec[genericColRef],
		})
	}
	return lines, nil
}
