package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/reports"
	"expense-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// textOp is one Text call with the drawing state at that moment
type textOp struct {
	page  int
	x, y  float64
	text  string
	style string
	size  float64
	color [3]int
}

type recordingDocument struct {
	page      int
	style     string
	size      float64
	color     [3]int
	drawColor [3]int
	texts     []textOp
	lines     [][4]float64
	outputErr error
}

func newRecordingDocument() *recordingDocument {
	return &recordingDocument{page: 1, size: 16}
}

func (r *recordingDocument) AddPage()                              { r.page++ }
func (r *recordingDocument) SetFont(_, style string, size float64) { r.style, r.size = style, size }
func (r *recordingDocument) SetFontStyle(style string)             { r.style = style }
func (r *recordingDocument) SetFontSize(size float64)              { r.size = size }
func (r *recordingDocument) SetTextColor(red, g, b int)            { r.color = [3]int{red, g, b} }
func (r *recordingDocument) SetDrawColor(red, g, b int)            { r.drawColor = [3]int{red, g, b} }
func (r *recordingDocument) PageWidth() float64                    { return 210 }

func (r *recordingDocument) Text(x, y float64, text string) {
	r.texts = append(r.texts, textOp{page: r.page, x: x, y: y, text: text, style: r.style, size: r.size, color: r.color})
}

func (r *recordingDocument) Line(x1, y1, x2, y2 float64) {
	r.lines = append(r.lines, [4]float64{x1, y1, x2, y2})
}

func (r *recordingDocument) Output(w io.Writer) error {
	if r.outputErr != nil {
		return r.outputErr
	}
	_, err := io.WriteString(w, "%PDF-test")
	return err
}

func (r *recordingDocument) find(prefix string) (textOp, bool) {
	for _, op := range r.texts {
		if strings.HasPrefix(op.text, prefix) {
			return op, true
		}
	}
	return textOp{}, false
}

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	doc      *recordingDocument
	metrics  *service_mocks.MockMetricsRecorderInterface
	activity *service_mocks.MockActivityLoggerInterface
	service  ReportServiceInterface
	ctx      context.Context
	at       time.Time
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.doc = newRecordingDocument()
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.activity = service_mocks.NewMockActivityLoggerInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.activity.EXPECT().LogReportExported(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.service = NewReportService(func() reports.Document { return s.doc }, s.metrics, s.activity)
	s.ctx = context.Background()
	s.at = time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportServiceTestSuite) export(expenses []models.Expense, income string, dark bool) *models.Report {
	report, err := s.service.Export(s.ctx, models.ReportInput{
		Expenses:    expenses,
		Summary:     Summarize(expenses, nil, d(income)),
		DarkMode:    dark,
		GeneratedAt: s.at,
	})
	s.Require().NoError(err)
	return report
}

func (s *ReportServiceTestSuite) TestExport_FileAndHeader() {
	report := s.export(nil, "0", true)

	s.Equal("expense-report-2024-03-05.pdf", report.Filename)
	s.Equal("application/pdf", report.ContentType)
	s.True(bytes.HasPrefix(report.Content, []byte("%PDF")))

	title, ok := s.doc.find("Expense Report")
	s.Require().True(ok)
	s.Equal(22.0, title.size)
	s.Equal(20.0, title.y)

	date, _ := s.doc.find("Date: ")
	s.Equal("Date: 2024-03-05", date.text)
	s.Equal(30.0, date.y)
	s.Equal([3]int{100, 100, 100}, date.color)

	theme, _ := s.doc.find("Theme: ")
	s.Equal("Theme: Dark", theme.text)
	s.Equal(36.0, theme.y)
}

func (s *ReportServiceTestSuite) TestExport_LightTheme() {
	s.export(nil, "0", false)
	theme, _ := s.doc.find("Theme: ")
	s.Equal("Theme: Light", theme.text)
}

func (s *ReportServiceTestSuite) TestExport_TotalLineAndRule() {
	s.export([]models.Expense{
		expense(2, "10.10", models.CategoryFood, "2024-03-05"),
		expense(1, "2.40", models.CategoryOther, "2024-03-04"),
	}, "0", false)

	total, ok := s.doc.find("Total spent: ")
	s.Require().True(ok)
	s.Equal("Total spent: 12.50€", total.text)
	s.Equal(reports.StyleBold, total.style)
	s.Equal(16.0, total.size)
	s.Equal([3]int{220, 50, 50}, total.color)
	s.Equal(50.0, total.y)

	s.Equal([][4]float64{{14, 54, 80, 54}}, s.doc.lines)
	s.Equal([3]int{200, 0, 0}, s.doc.drawColor)
}

func (s *ReportServiceTestSuite) TestExport_ExpenseLines() {
	e := expense(1, "42", models.CategoryHealth, "2024-03-02")
	e.Description = "Pharmacy"
	s.export([]models.Expense{e}, "0", false)

	desc, ok := s.doc.find("1. Pharmacy")
	s.Require().True(ok)
	s.Equal(14.0, desc.x)
	s.Equal(60.0, desc.y)
	s.Equal(reports.StyleNormal, desc.style)
	s.Equal([3]int{0, 0, 0}, desc.color)

	amount, _ := s.doc.find("42.00€")
	s.Equal(150.0, amount.x)
	s.Equal(reports.StyleBold, amount.style)

	date, _ := s.doc.find("(2024-03-02)")
	s.Equal(110.0, date.x)
	s.Equal(reports.StyleItalic, date.style)
	s.Equal([3]int{100, 100, 100}, date.color)
}

func (s *ReportServiceTestSuite) TestExport_NoExpenses() {
	s.export(nil, "0", false)

	line, ok := s.doc.find("No expenses recorded.")
	s.Require().True(ok)
	s.Equal(60.0, line.y)

	footer, ok := s.doc.find("Generated with")
	s.Require().True(ok)
	s.Equal(70.0, footer.y)
	s.Equal(10.0, footer.size)
	s.Equal([3]int{150, 150, 150}, footer.color)
}

func (s *ReportServiceTestSuite) TestExport_Pagination() {
	var list []models.Expense
	for i := 0; i < 40; i++ {
		list = append(list, expense(int64(40-i), "1", models.CategoryOther, "2024-03-01"))
	}

	s.export(list, "0", false)

	// rows at 60, 68, ... 268, then 276 > 270 breaks
	s.Equal(2, s.doc.page)

	cont, ok := s.doc.find("Continued:")
	s.Require().True(ok)
	s.Equal(2, cont.page)
	s.Equal(20.0, cont.y)

	row, ok := s.doc.find("27. ")
	s.Require().True(ok)
	s.Equal(1, row.page)
	s.Equal(268.0, row.y)

	row, ok = s.doc.find("28. ")
	s.Require().True(ok)
	s.Equal(2, row.page)
	s.Equal(30.0, row.y)

	last, _ := s.doc.find("40. ")
	s.Equal(126.0, last.y)

	footer, _ := s.doc.find("Generated with")
	s.Equal(144.0, footer.y)
}

func (s *ReportServiceTestSuite) TestExport_FooterOmittedNearPageEnd() {
	var list []models.Expense
	for i := 0; i < 27; i++ {
		list = append(list, expense(int64(27-i), "1", models.CategoryOther, "2024-03-01"))
	}

	s.export(list, "0", false)

	// last row at 268, cursor 276, footer would sit at 286
	_, ok := s.doc.find("Generated with")
	s.False(ok)
}

func (s *ReportServiceTestSuite) TestExport_FinalBalance() {
	tests := []struct {
		name   string
		income string
		text   string
		color  [3]int
	}{
		{"surplus", "100", "Final balance: 75.00€", [3]int{0, 100, 0}},
		{"exactly zero", "25", "Final balance: 0.00€", [3]int{0, 100, 0}},
		{"deficit", "10", "Final balance: -15.00€", [3]int{150, 0, 0}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.doc = newRecordingDocument()
			s.export([]models.Expense{expense(1, "25", models.CategoryFood, "2024-03-05")}, tt.income, false)

			line, ok := s.doc.find("Final balance: ")
			s.Require().True(ok)
			s.Equal(tt.text, line.text)
			s.Equal(tt.color, line.color)
			s.Equal(14.0, line.size)
			s.Equal(88.0, line.y)
		})
	}
}

func (s *ReportServiceTestSuite) TestExport_NoBalanceWithoutIncome() {
	s.export([]models.Expense{expense(1, "25", models.CategoryFood, "2024-03-05")}, "0", false)

	_, ok := s.doc.find("Final balance: ")
	s.False(ok)
}

func (s *ReportServiceTestSuite) TestExport_OutputFailure() {
	s.doc.outputErr = errors.New("disk full")

	_, err := s.service.Export(s.ctx, models.ReportInput{GeneratedAt: s.at})
	s.Error(err)
	s.Contains(err.Error(), "failed to render report")
}

func (s *ReportServiceTestSuite) TestExport_NilSummaryComputesTotal() {
	_, err := s.service.Export(s.ctx, models.ReportInput{
		Expenses:    []models.Expense{expense(1, "3.30", models.CategoryFood, "2024-03-05")},
		GeneratedAt: s.at,
	})
	s.Require().NoError(err)

	total, _ := s.doc.find("Total spent: ")
	s.Equal("Total spent: 3.30€", total.text)
}

func TestReportService_WithPDFDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	activity := service_mocks.NewMockActivityLoggerInterface(ctrl)
	metrics.EXPECT().IncrementCounter("report.export", map[string]string{"status": "success"})
	metrics.EXPECT().RecordProcessingTime("report.export", gomock.Any())
	activity.EXPECT().LogReportExported(gomock.Any(), "expense-report-2024-03-05.pdf", 30, gomock.Any())

	var list []models.Expense
	for i := 0; i < 30; i++ {
		list = append(list, expense(int64(i+1), fmt.Sprintf("%d.99", i), models.CategoryFood, "2024-03-05"))
	}

	service := NewReportService(reports.NewPDFDocument, metrics, activity)
	report, err := service.Export(context.Background(), models.ReportInput{
		Expenses:    list,
		Summary:     Summarize(list, nil, decimal.NewFromInt(1000)),
		GeneratedAt: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !bytes.HasPrefix(report.Content, []byte("%PDF-")) {
		t.Fatalf("content is not a pdf")
	}
}
