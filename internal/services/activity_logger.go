package services

import (
	"context"
	"log/slog"
	"time"

	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

type contextKey string

// TraceIDKey carries the request trace id through a context
const TraceIDKey contextKey = "trace_id"

// WithTraceID returns a copy of ctx carrying traceID
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

type ActivityLogger struct {
	logger *slog.Logger
}

// NewActivityLogger writes activity events to logger, or to slog.Default when nil
func NewActivityLogger(logger *slog.Logger) ActivityLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityLogger{
		logger: logger,
	}
}

func (al *ActivityLogger) LogExpenseCreated(ctx context.Context, expense *models.Expense) {
	al.logger.InfoContext(ctx, "expense created",
		slog.String("event_type", "expense_created"),
		slog.Int64("expense_id", expense.ID),
		slog.String("category", string(expense.Category)),
		slog.String("amount", expense.Amount.StringFixed(2)),
		slog.String("date", expense.Date),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *ActivityLogger) LogExpenseDeleted(ctx context.Context, id int64) {
	al.logger.InfoContext(ctx, "expense deleted",
		slog.String("event_type", "expense_deleted"),
		slog.Int64("expense_id", id),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *ActivityLogger) LogExpenseRejected(ctx context.Context, reason string) {
	al.logger.WarnContext(ctx, "expense rejected",
		slog.String("event_type", "expense_rejected"),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *ActivityLogger) LogBudgetsSaved(ctx context.Context, budgets models.Budgets) {
	total := decimal.Zero
	for _, v := range budgets {
		total = total.Add(v)
	}

	al.logger.InfoContext(ctx, "budgets saved",
		slog.String("event_type", "budgets_saved"),
		slog.Int("categories", len(budgets)),
		slog.String("total_budget", total.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *ActivityLogger) LogIncomeSaved(ctx context.Context, income decimal.Decimal) {
	al.logger.InfoContext(ctx, "monthly income saved",
		slog.String("event_type", "income_saved"),
		slog.String("income", income.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *ActivityLogger) LogThemeChanged(ctx context.Context, darkMode bool) {
	al.logger.InfoContext(ctx, "theme changed",
		slog.String("event_type", "theme_changed"),
		slog.Bool("dark_mode", darkMode),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *ActivityLogger) LogReportExported(ctx context.Context, filename string, expenseCount int, durationMs int64) {
	al.logger.InfoContext(ctx, "report exported",
		slog.String("event_type", "report_exported"),
		slog.String("filename", filename),
		slog.Int("expense_count", expenseCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *ActivityLogger) LogCacheEvent(ctx context.Context, event, cacheName string, err error) {
	attrs := []slog.Attr{
		slog.String("event_type", "cache_"+event),
		slog.String("cache_name", cacheName),
		slog.Time("timestamp", time.Now()),
	}

	level := slog.LevelInfo
	if err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	al.logger.LogAttrs(ctx, level, "offline cache "+event, attrs...)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}

	return ""
}
