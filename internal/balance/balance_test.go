package balance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

func usd(s string) money.Money {
	return money.New(decimal.RequireFromString(s), "USD")
}

var acctID = uuid.New()

func TestBalance_AssetIsDebitPositive(t *testing.T) {
	lines := []model.EntryLine{
		{AccountID: acctID, Debit: usd("1000.00")},
		{AccountID: acctID, Credit: usd("400.00")},
	}
	b, err := Balance(model.AccountTypeAsset, "USD", lines)
	require.NoError(t, err)
	assert.True(t, b.Equal(usd("600.00")))
}

func TestBalance_ExpenseIsDebitPositive(t *testing.T) {
	lines := []model.EntryLine{
		{AccountID: acctID, Debit: usd("400.00")},
	}
	b, err := Balance(model.AccountTypeExpense, "USD", lines)
	require.NoError(t, err)
	assert.True(t, b.Equal(usd("400.00")))
}

func TestBalance_CreditPositiveTypes(t *testing.T) {
	lines := []model.EntryLine{
		{AccountID: acctID, Credit: usd("1000.00")},
		{AccountID: acctID, Debit: usd("250.00")},
	}
	for _, accountType := range []model.AccountType{
		model.AccountTypeLiability,
		model.AccountTypeEquity,
		model.AccountTypeRevenue,
	} {
		b, err := Balance(accountType, "USD", lines)
		require.NoError(t, err, "type %s", accountType)
		assert.True(t, b.Equal(usd("750.00")), "type %s", accountType)
	}
}

func TestBalance_NegativeResult(t *testing.T) {
	lines := []model.EntryLine{
		{AccountID: acctID, Credit: usd("100.00")},
	}
	b, err := Balance(model.AccountTypeAsset, "USD", lines)
	require.NoError(t, err)
	assert.True(t, b.IsNegative())
}

func TestBalance_EmptyLines(t *testing.T) {
	b, err := Balance(model.AccountTypeAsset, "USD", nil)
	require.NoError(t, err)
	assert.True(t, b.IsZero())
	assert.Equal(t, "USD", b.Currency)
}

func TestBalance_InvalidAccountType(t *testing.T) {
	_, err := Balance("trust_fund", "USD", nil)
	require.Error(t, err)
	var invalid InvalidAccountTypeError
	assert.ErrorAs(t, err, &invalid)
}

func TestBalance_CurrencyMismatch(t *testing.T) {
	lines := []model.EntryLine{
		{AccountID: acctID, Debit: money.New(decimal.NewFromInt(10), "EUR")},
	}
	_, err := Balance(model.AccountTypeAsset, "USD", lines)
	require.Error(t, err)
	var mismatch money.MismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestBalance_DoesNotMutateInput(t *testing.T) {
	lines := []model.EntryLine{
		{AccountID: acctID, Debit: usd("10.00")},
		{AccountID: acctID, Credit: usd("4.00")},
	}
	before := make([]model.EntryLine, len(lines))
	copy(before, lines)

	_, err := Balance(model.AccountTypeAsset, "USD", lines)
	require.NoError(t, err)
	assert.Equal(t, before, lines)
}
