package model

import "github.com/google/uuid"

// AccountType classifies accounts in the chart of accounts and determines
// the balance sign convention.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the five known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// AccountCategory refines an account type for statement grouping.
type AccountCategory string

const (
	CategoryCash              AccountCategory = "cash"
	CategoryInventory         AccountCategory = "inventory"
	CategoryCurrentAsset      AccountCategory = "current_asset"
	CategoryFixedAsset        AccountCategory = "fixed_asset"
	CategoryCurrentLiability  AccountCategory = "current_liability"
	CategoryLongTermLiability AccountCategory = "long_term_liability"
	CategoryOwnerEquity       AccountCategory = "owner_equity"
	CategoryOperatingRevenue  AccountCategory = "operating_revenue"
	CategoryOtherRevenue      AccountCategory = "other_revenue"
	CategoryCostOfGoodsSold   AccountCategory = "cost_of_goods_sold"
	CategoryOperatingExpense  AccountCategory = "operating_expense"
	CategoryInterestExpense   AccountCategory = "interest_expense"
	CategoryOtherExpense      AccountCategory = "other_expense"
)

// Type returns the account type a category belongs to.
func (c AccountCategory) Type() AccountType {
	switch c {
	case CategoryCash, CategoryInventory, CategoryCurrentAsset, CategoryFixedAsset:
		return AccountTypeAsset
	case CategoryCurrentLiability, CategoryLongTermLiability:
		return AccountTypeLiability
	case CategoryOwnerEquity:
		return AccountTypeEquity
	case CategoryOperatingRevenue, CategoryOtherRevenue:
		return AccountTypeRevenue
	case CategoryCostOfGoodsSold, CategoryOperatingExpense, CategoryInterestExpense, CategoryOtherExpense:
		return AccountTypeExpense
	}
	return ""
}

// Valid reports whether c is a known category.
func (c AccountCategory) Valid() bool {
	return c.Type() != ""
}

// Account represents a row in chart-of-accounts.csv. Identity (ID, Code)
// is immutable; name and category are managed externally.
type Account struct {
	ID          uuid.UUID
	Code        string
	Name        string
	Type        AccountType
	Category    AccountCategory
	Description string
}
