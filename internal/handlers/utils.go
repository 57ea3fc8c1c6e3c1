package handlers

import (
	stderrors "errors"
	"strconv"
	"strings"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"
	"expense-tracker/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// errInvalidParam is returned for malformed path or query parameters
var errInvalidParam = stderrors.New("invalid parameter")

func getInt64Param(c echo.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errInvalidParam
	}
	return value, nil
}

func getBoolQuery(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && value
}

// bindFilter reads and validates the list filter query parameters
func bindFilter(c echo.Context) (dto.ExpenseFilterQuery, error) {
	query := dto.ExpenseFilterQuery{
		Date:     strings.TrimSpace(c.QueryParam("date")),
		Month:    strings.TrimSpace(c.QueryParam("month")),
		Category: strings.TrimSpace(c.QueryParam("category")),
	}
	if err := c.Validate(&query); err != nil {
		return query, err
	}
	return query, nil
}

// sendValidationError reports a failed struct validation. Date, month and
// budget amount failures get their own codes.
func sendValidationError(c echo.Context, err error) error {
	code := errors.ValidationGeneral

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Tag() {
			case "iso_date":
				code = errors.ValidationInvalidDate
			case "year_month":
				code = errors.ValidationInvalidMonth
			case "non_negative_decimal":
				code = errors.BudgetInvalidAmount
			default:
				continue
			}
			break
		}
	}

	return SendError(c, code, errors.WithDetails(validation.FieldErrors(err)...))
}

// sendServiceError maps service and domain errors to API error codes
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.ExpenseInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidCategory):
		return SendError(c, errors.ExpenseInvalidCategory)
	case stderrors.Is(err, models.ErrInvalidDate):
		return SendError(c, errors.ValidationInvalidDate)
	case stderrors.Is(err, services.ErrExpenseNotFound):
		return SendError(c, errors.ExpenseNotFound)
	case stderrors.Is(err, services.ErrConfirmationRequired):
		return SendError(c, errors.ExpenseConfirmationRequired)
	case stderrors.Is(err, services.ErrInvalidBudget):
		return SendError(c, errors.BudgetInvalidAmount, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrUnknownBudgetCode):
		return SendError(c, errors.BudgetUnknownCode, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidIncome):
		return SendError(c, errors.IncomeInvalidAmount)
	case stderrors.Is(err, repositories.ErrCorruptValue), stderrors.Is(err, repositories.ErrStorage):
		return SendDatabaseError(c, err)
	default:
		return SendSystemError(c, err)
	}
}
