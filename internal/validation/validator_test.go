package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filterInput struct {
	Date     string `query:"date" validate:"omitempty,iso_date"`
	Month    string `query:"month" validate:"omitempty,year_month"`
	Category string `query:"category" validate:"omitempty,category_code"`
}

type budgetInput struct {
	Budgets map[string]string `json:"budgets" validate:"required,dive,keys,category_code,endkeys,non_negative_decimal"`
}

func TestValidator_FilterRules(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(filterInput{}))
	assert.NoError(t, v.Struct(filterInput{Date: "2024-02-29", Month: "2024-02", Category: "food"}))

	err := v.Struct(filterInput{Date: "2023-02-29"})
	require.Error(t, err)
	assert.Equal(t, []string{"date: failed iso_date"}, FieldErrors(err))

	assert.Error(t, v.Struct(filterInput{Month: "2024-13"}))
	assert.Error(t, v.Struct(filterInput{Category: "pets"}))
}

func TestValidator_BudgetRules(t *testing.T) {
	v := GetValidator().GetValidate()

	assert.NoError(t, v.Struct(budgetInput{Budgets: map[string]string{"food": "250", "health": "", "other": "0"}}))
	assert.Error(t, v.Struct(budgetInput{Budgets: map[string]string{"food": "-1"}}))
	assert.Error(t, v.Struct(budgetInput{Budgets: map[string]string{"pets": "10"}}))
	assert.Error(t, v.Struct(budgetInput{Budgets: map[string]string{"food": "lots"}}))
}

func TestValidator_BudgetRejectsOutOfRangeAmounts(t *testing.T) {
	v := GetValidator().GetValidate()

	for _, amount := range []string{"1e20000000", "1e-20000000", "123456789012345678901234567890"} {
		err := v.Struct(budgetInput{Budgets: map[string]string{"food": amount}})
		require.Error(t, err, amount)
		msgs := FieldErrors(err)
		require.Len(t, msgs, 1, amount)
		assert.Contains(t, msgs[0], "failed non_negative_decimal", amount)
	}

	assert.NoError(t, v.Struct(budgetInput{Budgets: map[string]string{"food": "999999999999.99"}}))
}

func TestGetValidator_IsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
