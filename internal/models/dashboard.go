package models

// Progress bar CSS classes and text colors
const (
	ProgressClassNormal  = "progress-fill"
	ProgressClassWarning = "progress-fill warning"
	ProgressClassDanger  = "progress-fill danger"

	ProgressTextColor     = "#555"
	ProgressTextColorFull = "#f44336"

	RemainingColorSurplus = "#2e7d32"
	RemainingColorDeficit = "#c62828"
)

// Messages for an empty expense list
const (
	EmptyListMessage  = "No matching expenses."
	NoExpensesMessage = "No expenses recorded yet."
)

// ProgressRow is the rendered state of one category progress bar
type ProgressRow struct {
	Code      CategoryCode `json:"code"`
	Label     string       `json:"label"`
	Width     string       `json:"width"`
	Class     string       `json:"class"`
	Text      string       `json:"text"`
	TextColor string       `json:"text_color"`
}

// ExpenseRow is one rendered line of the expense list
type ExpenseRow struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Meta        string `json:"meta"`
	Amount      string `json:"amount"`
}

// ChartData is the doughnut input, one entry per category in table order
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
}

// DashboardView is everything the dashboard shows after one sync
type DashboardView struct {
	TotalText      string        `json:"total_text"`
	RemainingText  string        `json:"remaining_text"`
	RemainingColor string        `json:"remaining_color"`
	Balance        BalanceState  `json:"balance"`
	Progress       []ProgressRow `json:"progress"`
	Expenses       []ExpenseRow  `json:"expenses"`
	EmptyMessage   string        `json:"empty_message,omitempty"`
	Filter         ExpenseFilter `json:"filter"`
	Chart          ChartData     `json:"chart"`
	ChartVersion   int64         `json:"chart_version"`
	DarkMode       bool          `json:"dark_mode"`
}
