package handlers

import (
	stderrors "errors"
	"net/http"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SettingsHandler handles budgets, income and theme
type SettingsHandler struct {
	expenseService services.ExpenseServiceInterface
}

func NewSettingsHandler(expenseService services.ExpenseServiceInterface) *SettingsHandler {
	return &SettingsHandler{expenseService: expenseService}
}

func (h *SettingsHandler) GetBudgets(c echo.Context) error {
	budgets, err := h.expenseService.GetBudgets(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return SendSuccess(c, http.StatusOK, dto.ToBudgetsResponse(budgets), "")
}

// UpdateBudgets replaces the whole budget map
func (h *SettingsHandler) UpdateBudgets(c echo.Context) error {
	var req dto.UpdateBudgetsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	saved, err := h.expenseService.SaveBudgets(c.Request().Context(), req.ToModel())
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ToBudgetsResponse(saved), "Budgets saved")
}

func (h *SettingsHandler) GetIncome(c echo.Context) error {
	income, err := h.expenseService.GetIncome(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return SendSuccess(c, http.StatusOK, dto.ToIncomeResponse(income), "")
}

// UpdateIncome stores the monthly income. Input that is not a number saves as
// zero; numbers outside the supported range are rejected.
func (h *SettingsHandler) UpdateIncome(c echo.Context) error {
	var req dto.UpdateIncomeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	income, err := req.Income.Decimal()
	if stderrors.Is(err, models.ErrAmountOutOfRange) {
		return SendError(c, errors.IncomeInvalidAmount)
	}
	if err != nil {
		income = decimal.Zero
	}

	if err := h.expenseService.SaveIncome(c.Request().Context(), income); err != nil {
		return sendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ToIncomeResponse(income), "Income saved")
}

func (h *SettingsHandler) GetTheme(c echo.Context) error {
	darkMode, err := h.expenseService.DarkMode(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return SendSuccess(c, http.StatusOK, dto.ToThemeResponse(darkMode), "")
}

func (h *SettingsHandler) SetTheme(c echo.Context) error {
	var req dto.ThemeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	if err := h.expenseService.SetDarkMode(c.Request().Context(), *req.DarkMode); err != nil {
		return sendServiceError(c, err)
	}

	return SendSuccess(c, http.StatusOK, dto.ToThemeResponse(*req.DarkMode), "")
}

// ToggleTheme flips the theme and returns the new state
func (h *SettingsHandler) ToggleTheme(c echo.Context) error {
	darkMode, err := h.expenseService.ToggleTheme(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return SendSuccess(c, http.StatusOK, dto.ToThemeResponse(darkMode), "")
}
