package services

import (
	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summarize aggregates expenses against budgets and income.
//
// Known categories always appear, in table order. Expenses with a code outside
// the table still count toward the total and get trailing rows with a zero
// budget.
func Summarize(expenses []models.Expense, budgets models.Budgets, income decimal.Decimal) *models.Summary {
	total := decimal.Zero
	spent := make(map[models.CategoryCode]decimal.Decimal)
	var unknown []models.CategoryCode

	for _, e := range expenses {
		total = total.Add(e.Amount)

		if _, seen := spent[e.Category]; !seen && !models.IsValidCategory(e.Category) {
			unknown = append(unknown, e.Category)
		}
		spent[e.Category] = spent[e.Category].Add(e.Amount)
	}

	remaining := income.Sub(total)
	balance := models.BalanceSurplus
	if remaining.IsNegative() {
		balance = models.BalanceDeficit
	}

	rows := make([]models.CategoryBreakdown, 0, len(models.AllCategoryCodes())+len(unknown))
	for _, info := range models.Categories() {
		budget := budgets.For(info.Code)
		percent := PercentOfBudget(spent[info.Code], budget)
		rows = append(rows, models.CategoryBreakdown{
			Code:    info.Code,
			Label:   info.Label,
			Color:   info.Color,
			Known:   true,
			Spent:   spent[info.Code],
			Budget:  budget,
			Percent: percent,
			Tier:    models.TierFor(percent),
		})
	}

	for _, code := range unknown {
		rows = append(rows, models.CategoryBreakdown{
			Code:    code,
			Label:   string(code),
			Color:   models.UnknownCategoryColor,
			Spent:   spent[code],
			Budget:  decimal.Zero,
			Percent: decimal.Zero,
			Tier:    models.TierNormal,
		})
	}

	return &models.Summary{
		Total:      total,
		Income:     income,
		Remaining:  remaining,
		Balance:    balance,
		Count:      len(expenses),
		Categories: rows,
	}
}

// PercentOfBudget returns spent as a percentage of budget, capped at 100.
// A budget of zero or less yields zero.
func PercentOfBudget(spent, budget decimal.Decimal) decimal.Decimal {
	if !budget.IsPositive() {
		return decimal.Zero
	}

	percent := spent.Div(budget).Mul(hundred)
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}
