package handlers

import (
	"net/http"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense list requests
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpenses returns the expense list, newest first, narrowed by the
// optional date, month and category query parameters
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	query, err := bindFilter(c)
	if err != nil {
		return sendValidationError(c, err)
	}

	filter := query.ToModel()
	expenses, err := h.expenseService.ListExpenses(c.Request().Context(), filter)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ToListExpensesResponse(expenses, filter), "")
}

// CreateExpense adds an expense at the head of the list
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	expense, err := h.expenseService.AddExpense(c.Request().Context(), req.ToModel())
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, dto.ToExpenseResponse(*expense), "Expense added")
}

// DeleteExpense removes an expense. The confirm=true query parameter is required.
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := getInt64Param(c, "id")
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	if err := h.expenseService.DeleteExpense(c.Request().Context(), id, getBoolQuery(c, "confirm")); err != nil {
		return sendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSummary returns totals and per-category usage for the filtered list
func (h *ExpenseHandler) GetSummary(c echo.Context) error {
	query, err := bindFilter(c)
	if err != nil {
		return sendValidationError(c, err)
	}

	summary, err := h.expenseService.Summary(c.Request().Context(), query.ToModel())
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, summary, "")
}

// ListCategories returns the category table in display order
func (h *ExpenseHandler) ListCategories(c echo.Context) error {
	return SendSuccess(c, http.StatusOK, models.Categories(), "")
}
