package dto

import (
	"expense-tracker/internal/models"
)

// ExpenseFilterQuery contains the list filter query parameters
type ExpenseFilterQuery struct {
	Date     string `query:"date" validate:"omitempty,iso_date"`
	Month    string `query:"month" validate:"omitempty,year_month"`
	Category string `query:"category" validate:"omitempty,category_code"`
}

// IsSet reports whether any filter parameter was given
func (q ExpenseFilterQuery) IsSet() bool {
	return q.Date != "" || q.Month != "" || q.Category != ""
}

// ToModel converts the query into a domain filter
func (q ExpenseFilterQuery) ToModel() models.ExpenseFilter {
	return models.ExpenseFilter{
		Date:     q.Date,
		Month:    q.Month,
		Category: models.CategoryCode(q.Category),
	}
}

// CreateExpenseRequest is the body of an add-expense request. Amount,
// category and date are checked by the expense service so that every
// rejection is counted the same way.
type CreateExpenseRequest struct {
	Amount      Amount `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description" validate:"max=500"`
	Date        string `json:"date"`
}

// ToModel converts the request into service input. An unparsable amount
// becomes zero, which the service rejects.
func (r CreateExpenseRequest) ToModel() models.NewExpense {
	return models.NewExpense{
		Amount:      r.Amount.DecimalOrZero(),
		Category:    models.CategoryCode(r.Category),
		Description: r.Description,
		Date:        r.Date,
	}
}

// ExpenseResponse is one expense as returned by the API
type ExpenseResponse struct {
	ID            int64  `json:"id"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Description   string `json:"description"`
	Date          string `json:"date"`
}

// ToExpenseResponse converts a domain expense
func ToExpenseResponse(e models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Amount:        e.Amount.StringFixed(2),
		Category:      string(e.Category),
		CategoryLabel: e.CategoryLabel(),
		Description:   e.Description,
		Date:          e.Date,
	}
}

// ListExpensesResponse is the filtered expense list
type ListExpensesResponse struct {
	Expenses []ExpenseResponse    `json:"expenses"`
	Filter   models.ExpenseFilter `json:"filter"`
	Count    int                  `json:"count"`
}

// ToListExpensesResponse converts a filtered list
func ToListExpensesResponse(expenses []models.Expense, filter models.ExpenseFilter) ListExpensesResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ToExpenseResponse(e))
	}
	return ListExpensesResponse{Expenses: out, Filter: filter, Count: len(out)}
}
