package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"verdeluxe/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

type HealthHandler struct {
	db     HealthChecker
	logger *slog.Logger
}

func NewHealthHandler(db HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// HealthCheck reports 503 while the database is unreachable.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Check(ctx); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Database unavailable", "")
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
