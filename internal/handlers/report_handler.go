package handlers

import (
	"fmt"
	"net/http"
	"time"

	"expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves downloadable expense reports
type ReportHandler struct {
	expenseService      services.ExpenseServiceInterface
	presentationService services.PresentationServiceInterface
	reportService       services.ReportServiceInterface
	now                 func() time.Time
}

func NewReportHandler(
	expenseService services.ExpenseServiceInterface,
	presentationService services.PresentationServiceInterface,
	reportService services.ReportServiceInterface,
) *ReportHandler {
	return &ReportHandler{
		expenseService:      expenseService,
		presentationService: presentationService,
		reportService:       reportService,
		now:                 time.Now,
	}
}

// ExportPDF renders the currently displayed list. Filter query parameters
// override the session filter for this download only.
func (h *ReportHandler) ExportPDF(c echo.Context) error {
	query, err := bindFilter(c)
	if err != nil {
		return sendValidationError(c, err)
	}

	filter := h.presentationService.Filter()
	if query.IsSet() {
		filter = query.ToModel()
	}

	ctx := c.Request().Context()
	snapshot, err := h.expenseService.Snapshot(ctx, filter)
	if err != nil {
		return sendServiceError(c, err)
	}

	report, err := h.reportService.Export(ctx, models.ReportInput{
		Expenses:    snapshot.Expenses,
		Summary:     snapshot.Summary,
		DarkMode:    snapshot.DarkMode,
		GeneratedAt: h.now(),
	})
	if err != nil {
		return SendError(c, errors.ReportGenerationFailed)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	return c.Blob(http.StatusOK, report.ContentType, report.Content)
}
