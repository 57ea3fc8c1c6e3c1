package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"expense-tracker/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var panicsRecoveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_panics_recovered_total",
		Help: "Total number of handler panics turned into 500 responses, by route",
	},
	[]string{"route", "method"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response. The panic is
// logged with the same keys as RequestLogger plus the stack, and counted both
// as a recovered panic and as an API error.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				req := c.Request()
				route := c.Path()
				if route == "" {
					route = req.URL.Path
				}

				logger.ErrorContext(req.Context(), "panic recovered",
					"trace_id", traceID,
					"method", req.Method,
					"uri", req.RequestURI,
					"remote_ip", c.RealIP(),
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
				)

				panicsRecoveredTotal.WithLabelValues(route, req.Method).Inc()
				apiErrorsTotal.WithLabelValues(
					string(errors.SystemInternalError),
					route,
					fmt.Sprintf("%d", http.StatusInternalServerError),
				).Inc()

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
