package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(s string) Money {
	return New(decimal.RequireFromString(s), "USD")
}

func TestAdd(t *testing.T) {
	sum, err := usd("100.50").Add(usd("24.50"))
	require.NoError(t, err)
	assert.True(t, sum.Equal(usd("125.00")))
}

func TestAdd_CurrencyMismatch(t *testing.T) {
	eur := New(decimal.RequireFromString("10"), "EUR")
	_, err := usd("10").Add(eur)
	require.Error(t, err)
	var mismatch MismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestAdd_ZeroValueAdoptsCurrency(t *testing.T) {
	var zero Money
	sum, err := zero.Add(usd("5.00"))
	require.NoError(t, err)
	assert.Equal(t, "USD", sum.Currency)
	assert.True(t, sum.Equal(usd("5.00")))
}

func TestSub(t *testing.T) {
	diff, err := usd("100.00").Sub(usd("30.25"))
	require.NoError(t, err)
	assert.True(t, diff.Equal(usd("69.75")))
}

func TestEqual_ZeroAcrossCurrencies(t *testing.T) {
	assert.True(t, Zero("USD").Equal(Zero("EUR")))
	assert.False(t, usd("1.00").Equal(New(decimal.NewFromInt(1), "EUR")))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1234.50 USD", usd("1234.5").String())
	assert.Equal(t, "0.00", Money{}.String())
}

func TestSum(t *testing.T) {
	total, err := Sum("USD", usd("1.00"), usd("2.00"), usd("3.00"))
	require.NoError(t, err)
	assert.True(t, total.Equal(usd("6.00")))

	empty, err := Sum("USD")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
	assert.Equal(t, "USD", empty.Currency)
}

func TestFromString_Invalid(t *testing.T) {
	_, err := FromString("not-a-number", "USD")
	assert.Error(t, err)
}
