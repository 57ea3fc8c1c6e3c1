package services

import "expense-tracker/internal/models"

// FilterExpenses returns the expenses matching every set criterion, in their
// original order. An empty filter returns the list unchanged.
func FilterExpenses(expenses []models.Expense, filter models.ExpenseFilter) []models.Expense {
	if filter.IsEmpty() {
		return expenses
	}

	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
