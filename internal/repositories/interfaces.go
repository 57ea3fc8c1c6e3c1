package repositories

import (
	"context"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// KeyValueStoreInterface is the durable string store the tracker state lives in
type KeyValueStoreInterface interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// TrackerRepositoryInterface reads and replaces whole tracker values by logical key
type TrackerRepositoryInterface interface {
	LoadExpenses(ctx context.Context) ([]models.Expense, error)
	SaveExpenses(ctx context.Context, expenses []models.Expense) error
	LoadBudgets(ctx context.Context) (models.Budgets, error)
	SaveBudgets(ctx context.Context, budgets models.Budgets) error
	LoadIncome(ctx context.Context) (decimal.Decimal, error)
	SaveIncome(ctx context.Context, income decimal.Decimal) error
	LoadDarkMode(ctx context.Context) (bool, error)
	SaveDarkMode(ctx context.Context, enabled bool) error
}
