package offline

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

var bypassPrefixes = []string{"/api/", "/metrics", "/health"}

// Intercept answers GET requests from the offline cache once it is active
// and passes everything else through untouched
func Intercept(manager ManagerInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet || bypass(req.URL.Path) || !manager.Status().Ready {
				return next(c)
			}

			resp, ok, err := manager.Match(req.Context(), req)
			if err != nil {
				c.Logger().Warnf("offline cache lookup failed for %s: %v", req.URL.Path, err)
				return next(c)
			}
			if !ok {
				return next(c)
			}

			h := c.Response().Header()
			for k, values := range resp.Header {
				h[k] = append([]string(nil), values...)
			}
			h.Set("X-Offline-Cache", "hit")
			c.Response().WriteHeader(resp.StatusCode)
			_, err = c.Response().Write(resp.Body)
			return err
		}
	}
}

func bypass(path string) bool {
	for _, p := range bypassPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
