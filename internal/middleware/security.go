package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// dashboardCSP allows the third-party assets the dashboard loads
const dashboardCSP = "default-src 'self'; " +
	"script-src 'self' https://cdn.jsdelivr.net; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com https://cdnjs.cloudflare.com; " +
	"font-src 'self' https://fonts.gstatic.com https://cdnjs.cloudflare.com data:; " +
	"img-src 'self' data: blob:; " +
	"connect-src 'self'"

// SecurityHeaders adds security headers to responses
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			if strings.HasPrefix(c.Request().URL.Path, "/api/") {
				h.Set("Content-Security-Policy", "default-src 'none'")
				// API state changes with every write
				h.Set("Cache-Control", "no-store")
			} else {
				h.Set("Content-Security-Policy", dashboardCSP)
			}

			return next(c)
		}
	}
}
