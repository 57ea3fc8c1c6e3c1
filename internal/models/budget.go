package models

import "github.com/shopspring/decimal"

// Budgets maps a category code to its monthly budget. Missing entries mean zero.
type Budgets map[CategoryCode]decimal.Decimal

// For returns the budget for code, or zero when none is set
func (b Budgets) For(code CategoryCode) decimal.Decimal {
	if v, ok := b[code]; ok {
		return v
	}
	return decimal.Zero
}
