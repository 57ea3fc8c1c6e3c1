package models

// ExpenseFilter holds the transient list criteria. Empty fields never exclude.
type ExpenseFilter struct {
	Date     string       `json:"date,omitempty"`
	Month    string       `json:"month,omitempty"`
	Category CategoryCode `json:"category,omitempty"`
}

// IsEmpty reports whether no criterion is set
func (f ExpenseFilter) IsEmpty() bool {
	return f.Date == "" && f.Month == "" && f.Category == ""
}

// Matches reports whether the expense satisfies every set criterion
func (f ExpenseFilter) Matches(e Expense) bool {
	if f.Date != "" && e.Date != f.Date {
		return false
	}
	if f.Month != "" && e.Month() != f.Month {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	return true
}
