package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expense-tracker/internal/models"
	"expense-tracker/internal/services"
	"expense-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	echo               *echo.Echo
	mockExpenseService *service_mocks.MockExpenseServiceInterface
	handler            *SettingsHandler
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockExpenseService = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.handler = NewSettingsHandler(s.mockExpenseService)
}

func (s *SettingsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SettingsHandlerTestSuite) jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *SettingsHandlerTestSuite) TestGetBudgets_InTableOrder() {
	c, rec := s.jsonContext(http.MethodGet, "/api/v1/budgets", "")

	s.mockExpenseService.EXPECT().GetBudgets(gomock.Any()).Return(models.DefaultBudgets(), nil)

	s.NoError(s.handler.GetBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			Budgets []struct {
				Code   string `json:"code"`
				Amount string `json:"amount"`
			} `json:"budgets"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Data.Budgets, 8)
	s.Equal("food", response.Data.Budgets[0].Code)
	s.Equal("20000.00", response.Data.Budgets[0].Amount)
}

func (s *SettingsHandlerTestSuite) TestUpdateBudgets_BlankSavesAsZero() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/budgets", `{"budgets":{"food":"300","health":"","other":25}}`)

	s.mockExpenseService.EXPECT().
		SaveBudgets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, budgets models.Budgets) (models.Budgets, error) {
			s.True(budgets[models.CategoryFood].Equal(decimal.NewFromInt(300)))
			s.True(budgets[models.CategoryHealth].IsZero())
			s.True(budgets[models.CategoryOther].Equal(decimal.NewFromInt(25)))
			return budgets, nil
		})

	s.NoError(s.handler.UpdateBudgets(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Budgets saved")
}

func (s *SettingsHandlerTestSuite) TestUpdateBudgets_NegativeRejected() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/budgets", `{"budgets":{"food":"-5"}}`)

	s.NoError(s.handler.UpdateBudgets(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "BUDGET_001")
}

func (s *SettingsHandlerTestSuite) TestUpdateBudgets_HugeExponentRejected() {
	for _, body := range []string{
		`{"budgets":{"food":"1e20000000"}}`,
		`{"budgets":{"food":1e20000000}}`,
		`{"budgets":{"health":"1e-20000000"}}`,
	} {
		c, rec := s.jsonContext(http.MethodPut, "/api/v1/budgets", body)

		s.NoError(s.handler.UpdateBudgets(c))
		s.Equal(http.StatusBadRequest, rec.Code, body)
		s.Contains(rec.Body.String(), "BUDGET_001", body)
	}
}

func (s *SettingsHandlerTestSuite) TestUpdateBudgets_UnknownCategoryRejected() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/budgets", `{"budgets":{"pets":"5"}}`)

	s.NoError(s.handler.UpdateBudgets(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *SettingsHandlerTestSuite) TestUpdateBudgets_ServiceRejection() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/budgets", `{"budgets":{"food":"5"}}`)

	s.mockExpenseService.EXPECT().
		SaveBudgets(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("food: %w", services.ErrInvalidBudget))

	s.NoError(s.handler.UpdateBudgets(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "BUDGET_001")
}

func (s *SettingsHandlerTestSuite) TestUpdateIncome() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/income", `{"income":1500.5}`)

	s.mockExpenseService.EXPECT().
		SaveIncome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, income decimal.Decimal) error {
			s.True(income.Equal(decimal.RequireFromString("1500.5")))
			return nil
		})

	s.NoError(s.handler.UpdateIncome(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"income":"1500.50"`)
}

func (s *SettingsHandlerTestSuite) TestUpdateIncome_UnparsableSavesZero() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/income", `{"income":"lots"}`)

	s.mockExpenseService.EXPECT().
		SaveIncome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, income decimal.Decimal) error {
			s.True(income.IsZero())
			return nil
		})

	s.NoError(s.handler.UpdateIncome(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"income":"0.00"`)
}

func (s *SettingsHandlerTestSuite) TestUpdateIncome_NegativeRejected() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/income", `{"income":"-10"}`)

	s.mockExpenseService.EXPECT().
		SaveIncome(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, income decimal.Decimal) error {
			s.True(income.Equal(decimal.NewFromInt(-10)))
			return services.ErrInvalidIncome
		})

	s.NoError(s.handler.UpdateIncome(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "BUDGET_003")
}

func (s *SettingsHandlerTestSuite) TestUpdateIncome_HugeExponentRejected() {
	for _, body := range []string{
		`{"income":"1e20000000"}`,
		`{"income":1e20000000}`,
		`{"income":"` + strings.Repeat("9", 60) + `"}`,
	} {
		c, rec := s.jsonContext(http.MethodPut, "/api/v1/income", body)

		s.NoError(s.handler.UpdateIncome(c))
		s.Equal(http.StatusBadRequest, rec.Code, body)
		s.Contains(rec.Body.String(), "BUDGET_003", body)
	}
}

func (s *SettingsHandlerTestSuite) TestGetIncome() {
	c, rec := s.jsonContext(http.MethodGet, "/api/v1/income", "")

	s.mockExpenseService.EXPECT().GetIncome(gomock.Any()).Return(decimal.NewFromInt(2000), nil)

	s.NoError(s.handler.GetIncome(c))
	s.Contains(rec.Body.String(), `"income":"2000.00"`)
}

func (s *SettingsHandlerTestSuite) TestToggleTheme() {
	c, rec := s.jsonContext(http.MethodPost, "/api/v1/theme/toggle", "")

	s.mockExpenseService.EXPECT().ToggleTheme(gomock.Any()).Return(true, nil)

	s.NoError(s.handler.ToggleTheme(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"theme":"dark"`)
}

func (s *SettingsHandlerTestSuite) TestSetTheme() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/theme", `{"dark_mode":false}`)

	s.mockExpenseService.EXPECT().SetDarkMode(gomock.Any(), false).Return(nil)

	s.NoError(s.handler.SetTheme(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"theme":"light"`)
}

func (s *SettingsHandlerTestSuite) TestSetTheme_MissingFlag() {
	c, rec := s.jsonContext(http.MethodPut, "/api/v1/theme", `{}`)

	s.NoError(s.handler.SetTheme(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *SettingsHandlerTestSuite) TestGetTheme() {
	c, rec := s.jsonContext(http.MethodGet, "/api/v1/theme", "")

	s.mockExpenseService.EXPECT().DarkMode(gomock.Any()).Return(false, nil)

	s.NoError(s.handler.GetTheme(c))
	s.Contains(rec.Body.String(), `"dark_mode":false`)
}
