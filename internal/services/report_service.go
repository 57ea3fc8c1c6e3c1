package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/reports"

	"github.com/shopspring/decimal"
)

// Report layout, in millimetres
const (
	reportMarginX        = 14.0
	reportListTop        = 60.0
	reportLineStep       = 8.0
	reportPageBreakY     = 270.0
	reportFooterLimitY   = 280.0
	reportContinuedTop   = 20.0
	reportAmountFromEdge = 60.0
	reportDateBeforeAmt  = 40.0

	reportContentType = "application/pdf"
)

type ReportService struct {
	newDocument reports.DocumentFactory
	metrics     MetricsRecorderInterface
	activity    ActivityLoggerInterface
	now         func() time.Time
}

// NewReportService creates a new ReportServiceInterface instance
func NewReportService(factory reports.DocumentFactory, metrics MetricsRecorderInterface, activity ActivityLoggerInterface) ReportServiceInterface {
	return &ReportService{
		newDocument: factory,
		metrics:     metrics,
		activity:    activity,
		now:         time.Now,
	}
}

// Export lays out the expenses and totals of input into a new document
func (s *ReportService) Export(ctx context.Context, input models.ReportInput) (*models.Report, error) {
	start := time.Now()

	generatedAt := input.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = s.now()
	}

	summary := input.Summary
	if summary == nil {
		summary = Summarize(input.Expenses, nil, decimal.Zero)
	}

	doc := s.newDocument()
	layoutReport(doc, input.Expenses, summary, input.DarkMode, generatedAt)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		s.metrics.IncrementCounter("report.export", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	report := &models.Report{
		Filename:    ReportFilename(generatedAt),
		ContentType: reportContentType,
		Content:     buf.Bytes(),
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter("report.export", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("report.export", duration)
	s.activity.LogReportExported(ctx, report.Filename, len(input.Expenses), duration.Milliseconds())

	return report, nil
}

// ReportFilename embeds the generation date
func ReportFilename(t time.Time) string {
	return "expense-report-" + t.Format(models.DateLayout) + ".pdf"
}

func layoutReport(doc reports.Document, expenses []models.Expense, summary *models.Summary, darkMode bool, generatedAt time.Time) {
	theme := "Light"
	if darkMode {
		theme = "Dark"
	}

	doc.SetFontSize(22)
	doc.SetTextColor(40, 40, 40)
	doc.Text(reportMarginX, 20, "Expense Report")

	doc.SetFontSize(12)
	doc.SetTextColor(100, 100, 100)
	doc.Text(reportMarginX, 30, "Date: "+generatedAt.Format(models.DateLayout))
	doc.Text(reportMarginX, 36, "Theme: "+theme)

	doc.SetFontSize(16)
	doc.SetFontStyle(reports.StyleBold)
	doc.SetTextColor(220, 50, 50)
	doc.Text(reportMarginX, 50, "Total spent: "+FormatEuro(summary.Total))
	doc.SetDrawColor(200, 0, 0)
	doc.Line(reportMarginX, 54, 80, 54)

	doc.SetFontStyle(reports.StyleNormal)
	doc.SetFontSize(12)
	doc.SetTextColor(0, 0, 0)

	y := reportListTop
	if len(expenses) == 0 {
		doc.Text(reportMarginX, y, "No expenses recorded.")
	} else {
		for i, e := range expenses {
			if y > reportPageBreakY {
				doc.AddPage()
				y = reportContinuedTop
				doc.Text(reportMarginX, y, "Continued:")
				y += 10
			}

			doc.SetFontStyle(reports.StyleNormal)
			doc.Text(reportMarginX, y, strconv.Itoa(i+1)+". "+e.Description)

			amountX := doc.PageWidth() - reportAmountFromEdge
			doc.SetFontStyle(reports.StyleBold)
			doc.Text(amountX, y, FormatEuro(e.Amount))

			// the date sits left of the amount and keeps the italic style until the next row
			doc.SetFontStyle(reports.StyleItalic)
			doc.SetTextColor(100, 100, 100)
			doc.Text(amountX-reportDateBeforeAmt, y, "("+e.Date+")")

			y += reportLineStep
			doc.SetTextColor(0, 0, 0)
		}
	}

	y += 10
	if y < reportFooterLimitY {
		doc.SetFontSize(10)
		doc.SetTextColor(150, 150, 150)
		doc.Text(reportMarginX, y, "Generated with Expense Tracker")
	}

	if summary.Income.IsPositive() {
		if summary.Remaining.IsNegative() {
			doc.SetTextColor(150, 0, 0)
		} else {
			doc.SetTextColor(0, 100, 0)
		}
		doc.SetFontSize(14)
		doc.Text(reportMarginX, y+10, "Final balance: "+FormatEuro(summary.Remaining))
	}
}
