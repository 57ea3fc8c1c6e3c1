package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrCorruptValue is returned when a stored value cannot be decoded
	ErrCorruptValue = errors.New("stored value is corrupt")
	// ErrStorage wraps failures of the underlying key-value store
	ErrStorage = errors.New("storage failure")
)

// TrackerRepository maps the tracker state onto logical keys of a key-value store.
// Every save replaces the whole value for its key.
type TrackerRepository struct {
	store KeyValueStoreInterface
}

// NewTrackerRepository creates a tracker repository over store
func NewTrackerRepository(store KeyValueStoreInterface) TrackerRepositoryInterface {
	return &TrackerRepository{
		store: store,
	}
}

// LoadExpenses returns the stored list, newest first, or an empty list
func (r *TrackerRepository) LoadExpenses(ctx context.Context) ([]models.Expense, error) {
	raw, found, err := r.store.Get(ctx, models.KeyExpenses)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load expenses: %w", ErrStorage, err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []models.Expense{}, nil
	}

	var expenses []models.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptValue, models.KeyExpenses, err)
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	for _, e := range expenses {
		if err := models.CheckAmountRange(e.Amount); err != nil {
			return nil, fmt.Errorf("%w: %s: expense %d: %v", ErrCorruptValue, models.KeyExpenses, e.ID, err)
		}
	}

	return expenses, nil
}

// SaveExpenses replaces the stored list
func (r *TrackerRepository) SaveExpenses(ctx context.Context, expenses []models.Expense) error {
	if expenses == nil {
		expenses = []models.Expense{}
	}

	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}

	if err := r.store.Set(ctx, models.KeyExpenses, string(data)); err != nil {
		return fmt.Errorf("%w: failed to save expenses: %w", ErrStorage, err)
	}

	return nil
}

// LoadBudgets returns the saved budget map, or the defaults when none was saved
func (r *TrackerRepository) LoadBudgets(ctx context.Context) (models.Budgets, error) {
	raw, found, err := r.store.Get(ctx, models.KeyBudgets)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load budgets: %w", ErrStorage, err)
	}
	if !found || strings.TrimSpace(raw) == "" {
		return models.DefaultBudgets(), nil
	}

	budgets := models.Budgets{}
	if err := json.Unmarshal([]byte(raw), &budgets); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptValue, models.KeyBudgets, err)
	}
	for code, amount := range budgets {
		if err := models.CheckAmountRange(amount); err != nil {
			return nil, fmt.Errorf("%w: %s: %s: %v", ErrCorruptValue, models.KeyBudgets, code, err)
		}
	}

	return budgets, nil
}

// SaveBudgets replaces the whole budget map
func (r *TrackerRepository) SaveBudgets(ctx context.Context, budgets models.Budgets) error {
	if budgets == nil {
		budgets = models.Budgets{}
	}

	data, err := json.Marshal(budgets)
	if err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}

	if err := r.store.Set(ctx, models.KeyBudgets, string(data)); err != nil {
		return fmt.Errorf("%w: failed to save budgets: %w", ErrStorage, err)
	}

	return nil
}

// LoadIncome returns the monthly income. Missing, unparsable or out of range values read as zero.
func (r *TrackerRepository) LoadIncome(ctx context.Context) (decimal.Decimal, error) {
	raw, found, err := r.store.Get(ctx, models.KeyMonthlyIncome)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to load income: %w", ErrStorage, err)
	}
	if !found {
		return decimal.Zero, nil
	}

	income, err := models.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, nil
	}

	return income, nil
}

// SaveIncome replaces the monthly income
func (r *TrackerRepository) SaveIncome(ctx context.Context, income decimal.Decimal) error {
	if err := r.store.Set(ctx, models.KeyMonthlyIncome, income.String()); err != nil {
		return fmt.Errorf("%w: failed to save income: %w", ErrStorage, err)
	}
	return nil
}

// LoadDarkMode returns the theme flag, false when absent
func (r *TrackerRepository) LoadDarkMode(ctx context.Context) (bool, error) {
	raw, found, err := r.store.Get(ctx, models.KeyDarkMode)
	if err != nil {
		return false, fmt.Errorf("%w: failed to load theme: %w", ErrStorage, err)
	}

	return found && raw == "true", nil
}

// SaveDarkMode persists the theme flag
func (r *TrackerRepository) SaveDarkMode(ctx context.Context, enabled bool) error {
	if err := r.store.Set(ctx, models.KeyDarkMode, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("%w: failed to save theme: %w", ErrStorage, err)
	}
	return nil
}
