package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"expense-tracker/internal/errors"
	"expense-tracker/internal/offline"

	"github.com/labstack/echo/v4"
)

// OfflineHandler reports and refreshes the offline cache
type OfflineHandler struct {
	manager offline.ManagerInterface
}

func NewOfflineHandler(manager offline.ManagerInterface) *OfflineHandler {
	return &OfflineHandler{manager: manager}
}

func (h *OfflineHandler) GetStatus(c echo.Context) error {
	return SendSuccess(c, http.StatusOK, h.manager.Status(), "")
}

// Refresh reinstalls the current cache version and activates it. The run is
// detached from the request so a client disconnect cannot leave a half-written cache.
func (h *OfflineHandler) Refresh(c echo.Context) error {
	ctx := context.WithoutCancel(c.Request().Context())
	if err := h.manager.Run(ctx); err != nil {
		if stderrors.Is(err, offline.ErrNotInstalled) {
			return SendError(c, errors.CacheNotReady)
		}
		return SendError(c, errors.CacheInstallFailed, errors.WithDetails(err.Error()))
	}
	return SendSuccess(c, http.StatusOK, h.manager.Status(), "Offline cache refreshed")
}
