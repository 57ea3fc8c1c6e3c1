package dto

import (
	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// UpdateBudgetsRequest replaces the whole budget map. Blank values save as zero.
type UpdateBudgetsRequest struct {
	Budgets map[string]Amount `json:"budgets" validate:"required,dive,keys,category_code,endkeys,non_negative_decimal"`
}

// ToModel converts the request. Values must already be validated.
func (r UpdateBudgetsRequest) ToModel() models.Budgets {
	budgets := make(models.Budgets, len(r.Budgets))
	for code, amount := range r.Budgets {
		budgets[models.CategoryCode(code)] = amount.DecimalOrZero()
	}
	return budgets
}

// BudgetsResponse lists budgets in category table order
type BudgetsResponse struct {
	Budgets []BudgetEntry `json:"budgets"`
}

type BudgetEntry struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

func ToBudgetsResponse(budgets models.Budgets) BudgetsResponse {
	entries := make([]BudgetEntry, 0, len(budgets))
	for _, c := range models.Categories() {
		entries = append(entries, BudgetEntry{
			Code:   string(c.Code),
			Label:  c.Label,
			Amount: budgets.For(c.Code).StringFixed(2),
		})
	}
	return BudgetsResponse{Budgets: entries}
}

// UpdateIncomeRequest sets the monthly income. A value that is not a number saves as zero.
type UpdateIncomeRequest struct {
	Income Amount `json:"income"`
}

type IncomeResponse struct {
	Income string `json:"income"`
}

func ToIncomeResponse(income decimal.Decimal) IncomeResponse {
	return IncomeResponse{Income: income.StringFixed(2)}
}

// ThemeRequest sets the theme flag explicitly
type ThemeRequest struct {
	DarkMode *bool `json:"dark_mode" validate:"required"`
}

type ThemeResponse struct {
	DarkMode bool   `json:"dark_mode"`
	Theme    string `json:"theme"`
}

func ToThemeResponse(darkMode bool) ThemeResponse {
	theme := "light"
	if darkMode {
		theme = "dark"
	}
	return ThemeResponse{DarkMode: darkMode, Theme: theme}
}
