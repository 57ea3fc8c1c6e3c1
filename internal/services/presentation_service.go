package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"expense-tracker/internal/chart"
	"expense-tracker/internal/models"
)

var ErrNoChart = errors.New("no chart has been rendered")

// PresentationService rebuilds the dashboard from scratch on every sync and
// keeps the session filter. At most one chart instance is alive at a time.
type PresentationService struct {
	mu       sync.Mutex
	renderer chart.Renderer
	current  chart.Chart
	version  int64
	filter   models.ExpenseFilter
	logger   *slog.Logger
}

// NewPresentationService creates a new PresentationServiceInterface instance
func NewPresentationService(renderer chart.Renderer, logger *slog.Logger) PresentationServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &PresentationService{
		renderer: renderer,
		logger:   logger,
	}
}

// Sync recomputes every visible value from snapshot and replaces the chart
func (s *PresentationService) Sync(ctx context.Context, snapshot *models.Snapshot) (*models.DashboardView, error) {
	if snapshot == nil || snapshot.Summary == nil {
		return nil, errors.New("snapshot cannot be nil")
	}
	summary := snapshot.Summary

	view := &models.DashboardView{
		TotalText:      FormatEuro(summary.Total),
		RemainingText:  "Available: " + FormatEuro(summary.Remaining),
		RemainingColor: models.RemainingColorSurplus,
		Balance:        summary.Balance,
		Progress:       make([]models.ProgressRow, 0, len(summary.Categories)),
		Expenses:       make([]models.ExpenseRow, 0, len(snapshot.Expenses)),
		Filter:         snapshot.Filter,
		DarkMode:       snapshot.DarkMode,
	}
	if summary.Balance == models.BalanceDeficit {
		view.RemainingColor = models.RemainingColorDeficit
	}

	labels := make([]string, 0, len(summary.Categories))
	data := make([]float64, 0, len(summary.Categories))
	colors := make([]string, 0, len(summary.Categories))

	for _, row := range summary.Categories {
		if !row.Known {
			continue
		}
		view.Progress = append(view.Progress, progressRow(row))
		labels = append(labels, row.Label)
		data = append(data, row.Spent.InexactFloat64())
		colors = append(colors, row.Color)
	}

	for _, e := range snapshot.Expenses {
		view.Expenses = append(view.Expenses, models.ExpenseRow{
			ID:          e.ID,
			Description: e.Description,
			Meta:        e.CategoryLabel() + " • " + e.Date,
			Amount:      FormatEuro(e.Amount),
		})
	}
	if len(view.Expenses) == 0 {
		view.EmptyMessage = models.NoExpensesMessage
		if !snapshot.Filter.IsEmpty() {
			view.EmptyMessage = models.EmptyListMessage
		}
	}

	view.Chart = models.ChartData{Labels: labels, Data: data, Colors: colors}

	version, err := s.replaceChart(chart.NewDoughnutConfig(labels, data, colors))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to render chart", "error", err)
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	view.ChartVersion = version

	return view, nil
}

// replaceChart destroys the live chart before rendering its replacement
func (s *PresentationService) replaceChart(cfg chart.Config) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.Destroy()
		s.current = nil
	}

	c, err := s.renderer.Render(cfg)
	if err != nil {
		return s.version, err
	}

	s.current = c
	s.version++
	return s.version, nil
}

// ChartImage returns the most recently rendered chart
func (s *PresentationService) ChartImage(_ context.Context) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, "", ErrNoChart
	}
	return s.current.Bytes(), s.current.ContentType(), nil
}

func (s *PresentationService) Filter() models.ExpenseFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *PresentationService) SetFilter(filter models.ExpenseFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = filter
}

func (s *PresentationService) ClearFilter() {
	s.SetFilter(models.ExpenseFilter{})
}

func progressRow(row models.CategoryBreakdown) models.ProgressRow {
	p := models.ProgressRow{
		Code:      row.Code,
		Label:     row.Label,
		Width:     "0%",
		Class:     models.ProgressClassNormal,
		Text:      "0%",
		TextColor: models.ProgressTextColor,
	}
	if !row.Budget.IsPositive() {
		return p
	}

	p.Width = row.Percent.Round(2).String() + "%"
	p.Text = formatPercent(row.Percent)

	switch row.Tier {
	case models.TierWarning:
		p.Class = models.ProgressClassWarning
	case models.TierDanger:
		p.Class = models.ProgressClassDanger
		p.TextColor = models.ProgressTextColorFull
	}

	return p
}
