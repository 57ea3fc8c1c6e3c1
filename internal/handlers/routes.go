package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler of the application
type Handlers struct {
	Health    *HealthCheckHandler
	Expenses  *ExpenseHandler
	Dashboard *DashboardHandler
	Settings  *SettingsHandler
	Reports   *ReportHandler
	Offline   *OfflineHandler
	// Static serves the dashboard files for every path not matched above
	Static http.Handler
	// Metrics is mounted at /metrics when set
	Metrics http.Handler
}

// RegisterRoutes mounts the API under /api/v1 and the dashboard at the root
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)
	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}

	v1 := e.Group("/api/v1")

	v1.GET("/expenses", h.Expenses.ListExpenses)
	v1.POST("/expenses", h.Expenses.CreateExpense)
	v1.DELETE("/expenses/:id", h.Expenses.DeleteExpense)
	v1.GET("/summary", h.Expenses.GetSummary)
	v1.GET("/categories", h.Expenses.ListCategories)

	v1.GET("/dashboard", h.Dashboard.GetDashboard)
	v1.DELETE("/dashboard/filters", h.Dashboard.ClearFilters)
	v1.GET("/dashboard/chart", h.Dashboard.GetChart)

	v1.GET("/budgets", h.Settings.GetBudgets)
	v1.PUT("/budgets", h.Settings.UpdateBudgets)
	v1.GET("/income", h.Settings.GetIncome)
	v1.PUT("/income", h.Settings.UpdateIncome)
	v1.GET("/theme", h.Settings.GetTheme)
	v1.PUT("/theme", h.Settings.SetTheme)
	v1.POST("/theme/toggle", h.Settings.ToggleTheme)

	v1.GET("/reports/expenses.pdf", h.Reports.ExportPDF)

	v1.GET("/offline/status", h.Offline.GetStatus)
	v1.POST("/offline/refresh", h.Offline.Refresh)

	if h.Static != nil {
		e.GET("/*", echo.WrapHandler(h.Static))
	}
}
