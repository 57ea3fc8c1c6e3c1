package handlers

import (
	stderrors "errors"
	"net/http"

	"expense-tracker/internal/errors"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the rendered dashboard state
type DashboardHandler struct {
	expenseService      services.ExpenseServiceInterface
	presentationService services.PresentationServiceInterface
}

func NewDashboardHandler(
	expenseService services.ExpenseServiceInterface,
	presentationService services.PresentationServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		expenseService:      expenseService,
		presentationService: presentationService,
	}
}

// GetDashboard syncs the dashboard. Filter query parameters replace the
// session filter; without them the last filter stays in effect.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	query, err := bindFilter(c)
	if err != nil {
		return sendValidationError(c, err)
	}
	if query.IsSet() {
		h.presentationService.SetFilter(query.ToModel())
	}

	return h.sync(c)
}

// ClearFilters resets the session filter and returns the full dashboard
func (h *DashboardHandler) ClearFilters(c echo.Context) error {
	h.presentationService.ClearFilter()
	return h.sync(c)
}

// GetChart returns the current category chart image
func (h *DashboardHandler) GetChart(c echo.Context) error {
	content, contentType, err := h.presentationService.ChartImage(c.Request().Context())
	if err != nil {
		if stderrors.Is(err, services.ErrNoChart) {
			return SendError(c, errors.SystemNotFound, errors.WithDetails("No chart rendered yet"))
		}
		return SendSystemError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, contentType, content)
}

func (h *DashboardHandler) sync(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := h.expenseService.Snapshot(ctx, h.presentationService.Filter())
	if err != nil {
		return sendServiceError(c, err)
	}

	view, err := h.presentationService.Sync(ctx, snapshot)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, view, "")
}
