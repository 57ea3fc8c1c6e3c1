package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrConfirmationRequired = errors.New("deletion must be confirmed")
	ErrInvalidBudget        = errors.New("budget must be a non-negative amount")
	ErrUnknownBudgetCode    = errors.New("budget refers to an unknown category")
	ErrInvalidIncome        = errors.New("income must be a non-negative amount")
)

// ExpenseService serializes every tracker mutation. Each logical record is
// read and replaced as a whole, so concurrent callers see last-writer-wins.
type ExpenseService struct {
	mu       sync.Mutex
	repo     repositories.TrackerRepositoryInterface
	metrics  MetricsRecorderInterface
	activity ActivityLoggerInterface
	logger   *slog.Logger
	now      func() time.Time
}

// NewExpenseService creates a new ExpenseServiceInterface instance
func NewExpenseService(
	repo repositories.TrackerRepositoryInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return newExpenseService(repo, metrics, activity, logger, time.Now)
}

func newExpenseService(
	repo repositories.TrackerRepositoryInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
	logger *slog.Logger,
	now func() time.Time,
) *ExpenseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseService{
		repo:     repo,
		metrics:  metrics,
		activity: activity,
		logger:   logger,
		now:      now,
	}
}

// AddExpense validates input and stores it at the head of the list
func (s *ExpenseService) AddExpense(ctx context.Context, input models.NewExpense) (*models.Expense, error) {
	if err := input.Validate(); err != nil {
		s.metrics.IncrementCounter("expense.validation.failed", map[string]string{"reason": validationReason(err)})
		s.activity.LogExpenseRejected(ctx, err.Error())
		return nil, fmt.Errorf("invalid expense: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, err
	}

	expense := models.Expense{
		ID:          s.nextID(expenses),
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        input.Date,
	}

	updated := make([]models.Expense, 0, len(expenses)+1)
	updated = append(updated, expense)
	updated = append(updated, expenses...)

	if err := s.repo.SaveExpenses(ctx, updated); err != nil {
		s.logger.ErrorContext(ctx, "failed to store new expense", "error", err, "count", len(expenses))
		return nil, err
	}

	s.metrics.IncrementCounter("expense.created", map[string]string{"category": string(expense.Category)})
	s.activity.LogExpenseCreated(ctx, &expense)

	return &expense, nil
}

// nextID returns the current Unix millisecond time, bumped past every existing id
func (s *ExpenseService) nextID(expenses []models.Expense) int64 {
	id := s.now().UnixMilli()
	for _, e := range expenses {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	return id
}

// DeleteExpense removes one expense. An unknown id leaves the list untouched.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if len(kept) == len(expenses) {
		return fmt.Errorf("expense %d: %w", id, ErrExpenseNotFound)
	}

	if err := s.repo.SaveExpenses(ctx, kept); err != nil {
		s.logger.ErrorContext(ctx, "failed to store expense list after delete", "error", err, "expense_id", id)
		return err
	}

	s.metrics.IncrementCounter("expense.deleted", nil)
	s.activity.LogExpenseDeleted(ctx, id)

	return nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, filter models.ExpenseFilter) ([]models.Expense, error) {
	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return FilterExpenses(expenses, filter), nil
}

func (s *ExpenseService) Summary(ctx context.Context, filter models.ExpenseFilter) (*models.Summary, error) {
	snapshot, err := s.Snapshot(ctx, filter)
	if err != nil {
		return nil, err
	}
	return snapshot.Summary, nil
}

func (s *ExpenseService) Snapshot(ctx context.Context, filter models.ExpenseFilter) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.repo.LoadBudgets(ctx)
	if err != nil {
		return nil, err
	}
	income, err := s.repo.LoadIncome(ctx)
	if err != nil {
		return nil, err
	}
	darkMode, err := s.repo.LoadDarkMode(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterExpenses(expenses, filter)

	return &models.Snapshot{
		Filter:   filter,
		Expenses: filtered,
		Summary:  Summarize(filtered, budgets, income),
		DarkMode: darkMode,
	}, nil
}

func (s *ExpenseService) GetBudgets(ctx context.Context) (models.Budgets, error) {
	return s.repo.LoadBudgets(ctx)
}

// SaveBudgets replaces the whole budget map. Known categories left out are stored as zero.
func (s *ExpenseService) SaveBudgets(ctx context.Context, budgets models.Budgets) (models.Budgets, error) {
	for code, amount := range budgets {
		if !models.IsValidCategory(code) {
			return nil, fmt.Errorf("%q: %w", code, ErrUnknownBudgetCode)
		}
		if models.CheckAmountRange(amount) != nil || amount.IsNegative() {
			return nil, fmt.Errorf("%s: %w", code, ErrInvalidBudget)
		}
	}

	complete := make(models.Budgets, len(models.AllCategoryCodes()))
	for _, code := range models.AllCategoryCodes() {
		complete[code] = budgets.For(code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveBudgets(ctx, complete); err != nil {
		return nil, err
	}

	s.activity.LogBudgetsSaved(ctx, complete)

	return complete, nil
}

func (s *ExpenseService) GetIncome(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.LoadIncome(ctx)
}

func (s *ExpenseService) SaveIncome(ctx context.Context, income decimal.Decimal) error {
	if models.CheckAmountRange(income) != nil || income.IsNegative() {
		return ErrInvalidIncome
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveIncome(ctx, income); err != nil {
		return err
	}

	s.activity.LogIncomeSaved(ctx, income)
	return nil
}

func (s *ExpenseService) DarkMode(ctx context.Context) (bool, error) {
	return s.repo.LoadDarkMode(ctx)
}

func (s *ExpenseService) SetDarkMode(ctx context.Context, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveDarkMode(ctx, enabled); err != nil {
		return err
	}

	s.activity.LogThemeChanged(ctx, enabled)
	return nil
}

// ToggleTheme flips the theme flag and returns the new value
func (s *ExpenseService) ToggleTheme(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.LoadDarkMode(ctx)
	if err != nil {
		return false, err
	}

	if err := s.repo.SaveDarkMode(ctx, !current); err != nil {
		return false, err
	}

	s.activity.LogThemeChanged(ctx, !current)
	return !current, nil
}

func validationReason(err error) string {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return "amount"
	case errors.Is(err, models.ErrInvalidCategory):
		return "category"
	case errors.Is(err, models.ErrInvalidDate):
		return "date"
	default:
		return "other"
	}
}
