// Package balance computes signed account balances from entry lines,
// honoring the double-entry sign convention: asset and expense accounts
// carry debit-positive balances, liability, equity and revenue accounts
// carry credit-positive balances.
package balance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

// InvalidAccountTypeError reports an account type outside the five known types.
type InvalidAccountTypeError struct {
	Type model.AccountType
}

func (e InvalidAccountTypeError) Error() string {
	return fmt.Sprintf("invalid account type %q", e.Type)
}

// Balance computes the signed balance of an account over lines already
// filtered to that account. The input is never mutated. Lines in a currency
// other than the one given are rejected with a money.MismatchError.
func Balance(accountType model.AccountType, currency string, lines []model.EntryLine) (money.Money, error) {
	if !accountType.Valid() {
		return money.Money{}, InvalidAccountTypeError{Type: accountType}
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if !line.Debit.IsZero() {
			if line.Debit.Currency != currency {
				return money.Money{}, money.MismatchError{A: currency, B: line.Debit.Currency}
			}
			debits = debits.Add(line.Debit.Amount)
		}
		if !line.Credit.IsZero() {
			if line.Credit.Currency != currency {
				return money.Money{}, money.MismatchError{A: currency, B: line.Credit.Currency}
			}
			credits = credits.Add(line.Credit.Amount)
		}
	}

	switch accountType {
	case model.AccountTypeAsset, model.AccountTypeExpense:
		return money.New(debits.Sub(credits), currency), nil
	default: // liability, equity, revenue
		return money.New(credits.Sub(debits), currency), nil
	}
}
