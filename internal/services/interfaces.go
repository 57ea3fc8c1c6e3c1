package services

import (
	"context"
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// ExpenseServiceInterface is the application context: every read and
// mutation of the tracker state goes through it
type ExpenseServiceInterface interface {
	AddExpense(ctx context.Context, input models.NewExpense) (*models.Expense, error)
	// DeleteExpense removes the expense with id. Nothing changes unless confirmed is true.
	DeleteExpense(ctx context.Context, id int64, confirmed bool) error
	ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, error)
	Summary(ctx context.Context, filter models.ExpenseFilter) (*models.Summary, error)
	// Snapshot returns the filtered list, its summary and the theme from one read
	Snapshot(ctx context.Context, filter models.ExpenseFilter) (*models.Snapshot, error)
	GetBudgets(ctx context.Context) (models.Budgets, error)
	SaveBudgets(ctx context.Context, budgets models.Budgets) (models.Budgets, error)
	GetIncome(ctx context.Context) (decimal.Decimal, error)
	SaveIncome(ctx context.Context, income decimal.Decimal) error
	DarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
	ToggleTheme(ctx context.Context) (bool, error)
}

// PresentationServiceInterface turns a snapshot into dashboard state and owns the chart
type PresentationServiceInterface interface {
	Sync(ctx context.Context, snapshot *models.Snapshot) (*models.DashboardView, error)
	ChartImage(ctx context.Context) (content []byte, contentType string, err error)
	Filter() models.ExpenseFilter
	SetFilter(filter models.ExpenseFilter)
	ClearFilter()
}

// ReportServiceInterface renders downloadable expense reports
type ReportServiceInterface interface {
	Export(ctx context.Context, input models.ReportInput) (*models.Report, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// ActivityLoggerInterface writes structured domain event logs
type ActivityLoggerInterface interface {
	LogExpenseCreated(ctx context.Context, expense *models.Expense)
	LogExpenseDeleted(ctx context.Context, id int64)
	LogExpenseRejected(ctx context.Context, reason string)
	LogBudgetsSaved(ctx context.Context, budgets models.Budgets)
	LogIncomeSaved(ctx context.Context, income decimal.Decimal)
	LogThemeChanged(ctx context.Context, darkMode bool)
	LogReportExported(ctx context.Context, filename string, expenseCount int, durationMs int64)
	LogCacheEvent(ctx context.Context, event, cacheName string, err error)
}
