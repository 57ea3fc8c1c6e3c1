package models

import "github.com/shopspring/decimal"

// Tier is the status band of a category's budget usage
type Tier string

const (
	TierNormal  Tier = "normal"
	TierWarning Tier = "warning"
	TierDanger  Tier = "danger"
)

// BalanceState tells whether income covers the total spent
type BalanceState string

const (
	BalanceSurplus BalanceState = "surplus"
	BalanceDeficit BalanceState = "deficit"
)

// Percentage thresholds for the usage tiers
var (
	WarningThreshold = decimal.NewFromInt(70)
	DangerThreshold  = decimal.NewFromInt(100)
)

// TierFor classifies a usage percentage
func TierFor(percent decimal.Decimal) Tier {
	switch {
	case percent.GreaterThanOrEqual(DangerThreshold):
		return TierDanger
	case percent.GreaterThanOrEqual(WarningThreshold):
		return TierWarning
	default:
		return TierNormal
	}
}

// CategoryBreakdown is the per-category aggregate
type CategoryBreakdown struct {
	Code    CategoryCode    `json:"code"`
	Label   string          `json:"label"`
	Color   string          `json:"color"`
	Known   bool            `json:"known"`
	Spent   decimal.Decimal `json:"spent"`
	Budget  decimal.Decimal `json:"budget"`
	Percent decimal.Decimal `json:"percent"`
	Tier    Tier            `json:"tier"`
}

// Summary is the aggregation result for one list of expenses
type Summary struct {
	Total      decimal.Decimal     `json:"total"`
	Income     decimal.Decimal     `json:"income"`
	Remaining  decimal.Decimal     `json:"remaining"`
	Balance    BalanceState        `json:"balance"`
	Count      int                 `json:"count"`
	Categories []CategoryBreakdown `json:"categories"`
}

// Breakdown returns the row for code
func (s *Summary) Breakdown(code CategoryCode) (CategoryBreakdown, bool) {
	for _, c := range s.Categories {
		if c.Code == code {
			return c, true
		}
	}
	return CategoryBreakdown{}, false
}

// Snapshot is a consistent read of the tracker state under one filter
type Snapshot struct {
	Filter   ExpenseFilter `json:"filter"`
	Expenses []Expense     `json:"expenses"`
	Summary  *Summary      `json:"summary"`
	DarkMode bool          `json:"dark_mode"`
}
