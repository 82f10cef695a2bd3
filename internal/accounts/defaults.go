package accounts

import (
	"github.com/google/uuid"

	"github.com/ledgerline-dev/ledgerline/internal/model"
)

// DefaultChart returns the default chart of accounts for an entity type.
// Account IDs are generated fresh each call.
func DefaultChart(entityType string) []model.Account {
	switch entityType {
	case "llc_single_member":
		return llcSingleMemberChart()
	default:
		return llcSingleMemberChart()
	}
}

func llcSingleMemberChart() []model.Account {
	acct := func(code, name string, category model.AccountCategory, desc string) model.Account {
		return model.Account{
			ID:          uuid.New(),
			Code:        code,
			Name:        name,
			Type:        category.Type(),
			Category:    category,
			Description: desc,
		}
	}
	return []model.Account{
		acct("1010", "Business Checking", model.CategoryCash, "Primary checking account"),
		acct("1020", "Business Savings", model.CategoryCash, "Savings account"),
		acct("1100", "Accounts Receivable", model.CategoryCurrentAsset, "Amounts owed by customers"),
		acct("1200", "Inventory", model.CategoryInventory, "Goods held for sale"),
		acct("1500", "Equipment", model.CategoryFixedAsset, "Computers and office equipment"),
		acct("2010", "Credit Card", model.CategoryCurrentLiability, "Business credit card"),
		acct("2510", "Equipment Loan", model.CategoryLongTermLiability, "Long-term equipment financing"),
		acct("3010", "Owner's Equity", model.CategoryOwnerEquity, "Owner's equity"),
		acct("4010", "Service Revenue", model.CategoryOperatingRevenue, ""),
		acct("4020", "Product Revenue", model.CategoryOperatingRevenue, ""),
		acct("4910", "Interest Income", model.CategoryOtherRevenue, "Bank interest earned"),
		acct("5000", "Cost of Goods Sold", model.CategoryCostOfGoodsSold, "Direct cost of products sold"),
		acct("5010", "Advertising & Marketing", model.CategoryOperatingExpense, "Advertising costs"),
		acct("5020", "Software & SaaS", model.CategoryOperatingExpense, "Software subscriptions"),
		acct("5030", "Office Supplies", model.CategoryOperatingExpense, "Office supplies and expenses"),
		acct("5040", "Professional Services", model.CategoryOperatingExpense, "Legal, accounting, consulting"),
		acct("5910", "Interest Expense", model.CategoryInterestExpense, "Loan and card interest"),
		acct("5990", "Miscellaneous Expense", model.CategoryOtherExpense, "Non-operating expenses"),
	}
}
