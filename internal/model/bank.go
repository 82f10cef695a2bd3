package model

import (
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// BankLine represents a parsed bank statement row. Amount is signed:
// positive = deposit, negative = withdrawal.
type BankLine struct {
	Date        time.Time
	Description string
	Amount      money.Money
	Reference   string
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}
