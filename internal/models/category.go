package models

import "github.com/shopspring/decimal"

// CategoryCode identifies an expense category
type CategoryCode string

// Expense categories, in display order
const (
	CategoryFood          CategoryCode = "food"
	CategoryTransport     CategoryCode = "transport"
	CategoryEntertainment CategoryCode = "entertainment"
	CategoryHealth        CategoryCode = "health"
	CategoryHousing       CategoryCode = "housing"
	CategoryMobile        CategoryCode = "mobile"
	CategoryClothing      CategoryCode = "clothing"
	CategoryOther         CategoryCode = "other"
)

// UnknownCategoryColor is used for expenses whose category is not in the table
const UnknownCategoryColor = "#9E9E9E"

// CategoryInfo is one row of the category table
type CategoryInfo struct {
	Code          CategoryCode    `json:"code"`
	Label         string          `json:"label"`
	Color         string          `json:"color"`
	DefaultBudget decimal.Decimal `json:"default_budget"`
}

// categoryTable is the single source for labels, colors and default budgets.
// Order is significant: progress bars, chart slices and reports follow it.
var categoryTable = []CategoryInfo{
	{Code: CategoryFood, Label: "Food", Color: "#FF6384", DefaultBudget: decimal.NewFromInt(20000)},
	{Code: CategoryTransport, Label: "Transport", Color: "#36A2EB", DefaultBudget: decimal.NewFromInt(10000)},
	{Code: CategoryEntertainment, Label: "Entertainment", Color: "#FFCE56", DefaultBudget: decimal.NewFromInt(5000)},
	{Code: CategoryHealth, Label: "Health", Color: "#4BC0C0", DefaultBudget: decimal.NewFromInt(8000)},
	{Code: CategoryHousing, Label: "Housing", Color: "#9966FF", DefaultBudget: decimal.NewFromInt(15000)},
	{Code: CategoryMobile, Label: "Mobile", Color: "#FF9F40", DefaultBudget: decimal.NewFromInt(10000)},
	{Code: CategoryClothing, Label: "Clothing", Color: "#4CC9F0", DefaultBudget: decimal.NewFromInt(8000)},
	{Code: CategoryOther, Label: "Other", Color: "#C9CBCF", DefaultBudget: decimal.NewFromInt(5000)},
}

// Categories returns a copy of the ordered category table
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// AllCategoryCodes returns every known category code in table order
func AllCategoryCodes() []CategoryCode {
	codes := make([]CategoryCode, 0, len(categoryTable))
	for _, c := range categoryTable {
		codes = append(codes, c.Code)
	}
	return codes
}

// LookupCategory returns the table row for code
func LookupCategory(code CategoryCode) (CategoryInfo, bool) {
	for _, c := range categoryTable {
		if c.Code == code {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// IsValidCategory checks if a category code is in the table
func IsValidCategory(code CategoryCode) bool {
	_, ok := LookupCategory(code)
	return ok
}

// CategoryLabel returns the display label, or the raw code for unknown categories
func CategoryLabel(code CategoryCode) string {
	if info, ok := LookupCategory(code); ok {
		return info.Label
	}
	return string(code)
}

// DefaultBudgets returns the budget map used when none has been saved
func DefaultBudgets() Budgets {
	budgets := make(Budgets, len(categoryTable))
	for _, c := range categoryTable {
		budgets[c.Code] = c.DefaultBudget
	}
	return budgets
}
