package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date format used for expense dates
const DateLayout = "2006-01-02"

// MonthLayout is the year-month format used by the month filter
const MonthLayout = "2006-01"

// DefaultDescription replaces a blank description on new expenses
const DefaultDescription = "No description"

var (
	ErrInvalidAmount   = errors.New("expense amount must be positive")
	ErrInvalidCategory = errors.New("unknown expense category")
	ErrInvalidDate     = errors.New("expense date must be YYYY-MM-DD")
)

// Expense is a single recorded spending event. Expenses are immutable once
// created; the list is stored newest first.
type Expense struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    CategoryCode    `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// Month returns the YYYY-MM prefix of the expense date
func (e Expense) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

// CategoryLabel returns the display label of the expense category
func (e Expense) CategoryLabel() string {
	return CategoryLabel(e.Category)
}

// NewExpense holds user input for an expense that has not been stored yet
type NewExpense struct {
	Amount      decimal.Decimal
	Category    CategoryCode
	Description string
	Date        string
}

// Validate checks the input and applies the description placeholder
func (n *NewExpense) Validate() error {
	if err := CheckAmountRange(n.Amount); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if !n.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if !IsValidCategory(n.Category) {
		return ErrInvalidCategory
	}

	if !IsValidDate(n.Date) {
		return ErrInvalidDate
	}

	n.Description = strings.TrimSpace(n.Description)
	if n.Description == "" {
		n.Description = DefaultDescription
	}

	return nil
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsValidMonth reports whether s is a YYYY-MM value
func IsValidMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}
