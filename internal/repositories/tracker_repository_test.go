package repositories

import (
	"context"
	"errors"
	"testing"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestTrackerRepository(t *testing.T) {
	suite.Run(t, new(TrackerRepositorySuite))
}

type TrackerRepositorySuite struct {
	suite.Suite
	store *MemoryKeyValueStore
	repo  TrackerRepositoryInterface
	ctx   context.Context
}

func (s *TrackerRepositorySuite) SetupTest() {
	s.store = NewMemoryKeyValueStore()
	s.repo = NewTrackerRepository(s.store)
	s.ctx = context.Background()
}

func (s *TrackerRepositorySuite) TestLoadExpenses_EmptyWhenAbsent() {
	expenses, err := s.repo.LoadExpenses(s.ctx)
	s.NoError(err)
	s.NotNil(expenses)
	s.Empty(expenses)
}

func (s *TrackerRepositorySuite) TestExpenses_RoundTripKeepsOrder() {
	expenses := []models.Expense{
		{ID: 3, Amount: decimal.RequireFromString("12.50"), Category: models.CategoryFood, Description: gofakeit.Word(), Date: "2024-03-05"},
		{ID: 2, Amount: decimal.NewFromInt(40), Category: models.CategoryTransport, Description: gofakeit.Word(), Date: "2024-03-02"},
		{ID: 1, Amount: decimal.RequireFromString("0.99"), Category: models.CategoryOther, Description: models.DefaultDescription, Date: "2024-02-28"},
	}

	s.NoError(s.repo.SaveExpenses(s.ctx, expenses))

	loaded, err := s.repo.LoadExpenses(s.ctx)
	s.NoError(err)
	s.Require().Len(loaded, 3)
	for i := range expenses {
		s.Equal(expenses[i].ID, loaded[i].ID)
		s.True(expenses[i].Amount.Equal(loaded[i].Amount))
		s.Equal(expenses[i].Category, loaded[i].Category)
		s.Equal(expenses[i].Description, loaded[i].Description)
		s.Equal(expenses[i].Date, loaded[i].Date)
	}
}

func (s *TrackerRepositorySuite) TestLoadExpenses_AcceptsNumericAmounts() {
	s.NoError(s.store.Set(s.ctx, models.KeyExpenses,
		`[{"id":1700000000000,"amount":250,"category":"food","description":"Groceries","date":"2024-03-01"}]`))

	loaded, err := s.repo.LoadExpenses(s.ctx)
	s.NoError(err)
	s.Require().Len(loaded, 1)
	s.True(decimal.NewFromInt(250).Equal(loaded[0].Amount))
}

func (s *TrackerRepositorySuite) TestLoadExpenses_Corrupt() {
	s.NoError(s.store.Set(s.ctx, models.KeyExpenses, "[{not json"))

	_, err := s.repo.LoadExpenses(s.ctx)
	s.Error(err)
	s.True(errors.Is(err, ErrCorruptValue))
}

func (s *TrackerRepositorySuite) TestLoadExpenses_OutOfRangeAmountIsCorrupt() {
	s.NoError(s.store.Set(s.ctx, models.KeyExpenses,
		`[{"id":1,"amount":"1e20000000","category":"food","description":"x","date":"2024-03-01"}]`))

	_, err := s.repo.LoadExpenses(s.ctx)
	s.ErrorIs(err, ErrCorruptValue)
}

func (s *TrackerRepositorySuite) TestLoadBudgets_DefaultsWhenAbsent() {
	budgets, err := s.repo.LoadBudgets(s.ctx)
	s.NoError(err)
	s.Len(budgets, len(models.AllCategoryCodes()))
	s.True(decimal.NewFromInt(20000).Equal(budgets.For(models.CategoryFood)))
	s.True(decimal.NewFromInt(5000).Equal(budgets.For(models.CategoryOther)))
}

func (s *TrackerRepositorySuite) TestSaveBudgets_ReplacesWholeMap() {
	s.NoError(s.repo.SaveBudgets(s.ctx, models.Budgets{
		models.CategoryFood: decimal.NewFromInt(200),
	}))

	budgets, err := s.repo.LoadBudgets(s.ctx)
	s.NoError(err)
	s.Len(budgets, 1)
	s.True(decimal.NewFromInt(200).Equal(budgets.For(models.CategoryFood)))
	s.True(budgets.For(models.CategoryHousing).IsZero())
}

func (s *TrackerRepositorySuite) TestLoadBudgets_Corrupt() {
	s.NoError(s.store.Set(s.ctx, models.KeyBudgets, "nope"))

	_, err := s.repo.LoadBudgets(s.ctx)
	s.ErrorIs(err, ErrCorruptValue)
}

func (s *TrackerRepositorySuite) TestLoadBudgets_OutOfRangeAmountIsCorrupt() {
	s.NoError(s.store.Set(s.ctx, models.KeyBudgets, `{"food":"1e-20000000"}`))

	_, err := s.repo.LoadBudgets(s.ctx)
	s.ErrorIs(err, ErrCorruptValue)
}

func (s *TrackerRepositorySuite) TestIncome() {
	income, err := s.repo.LoadIncome(s.ctx)
	s.NoError(err)
	s.True(income.IsZero())

	s.NoError(s.repo.SaveIncome(s.ctx, decimal.RequireFromString("1500.75")))
	income, err = s.repo.LoadIncome(s.ctx)
	s.NoError(err)
	s.Equal("1500.75", income.String())
}

func (s *TrackerRepositorySuite) TestLoadIncome_UnparsableReadsAsZero() {
	for _, raw := range []string{"a lot", "1e20000000"} {
		s.NoError(s.store.Set(s.ctx, models.KeyMonthlyIncome, raw))

		income, err := s.repo.LoadIncome(s.ctx)
		s.NoError(err)
		s.True(income.IsZero(), raw)
	}
}

func (s *TrackerRepositorySuite) TestDarkMode() {
	enabled, err := s.repo.LoadDarkMode(s.ctx)
	s.NoError(err)
	s.False(enabled)

	s.NoError(s.repo.SaveDarkMode(s.ctx, true))
	enabled, err = s.repo.LoadDarkMode(s.ctx)
	s.NoError(err)
	s.True(enabled)

	raw, _, _ := s.store.Get(s.ctx, models.KeyDarkMode)
	s.Equal("true", raw)

	s.NoError(s.store.Set(s.ctx, models.KeyDarkMode, "yes"))
	enabled, err = s.repo.LoadDarkMode(s.ctx)
	s.NoError(err)
	s.False(enabled)
}

func TestTrackerRepository_StoreErrorsAreWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("disk full")
	store := repository_mocks.NewMockKeyValueStoreInterface(ctrl)
	repo := NewTrackerRepository(store)
	ctx := context.Background()

	store.EXPECT().Get(gomock.Any(), models.KeyExpenses).Return("", false, storeErr)
	_, err := repo.LoadExpenses(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "failed to load expenses")

	store.EXPECT().Set(gomock.Any(), models.KeyBudgets, gomock.Any()).Return(storeErr)
	err = repo.SaveBudgets(ctx, models.DefaultBudgets())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	store.EXPECT().Set(gomock.Any(), models.KeyMonthlyIncome, "1000").Return(nil)
	assert.NoError(t, repo.SaveIncome(ctx, decimal.NewFromInt(1000)))
}

func TestMemoryKeyValueStore(t *testing.T) {
	store := NewMemoryKeyValueStore()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	require.NoError(t, store.Set(ctx, "k", "v2"))

	v, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", v)
}
