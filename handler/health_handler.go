package handler

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness and readiness.
type HealthHandler struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *pgxpool.Pool, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// HandleHealth handles GET /health requests.
func (h *HealthHandler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// HandleReady handles GET /health/ready requests. Readiness requires a
// reachable database.
func (h *HealthHandler) HandleReady(c echo.Context) error {
	ctx := c.Request().Context()

	if h.db == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Database not configured")
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("database ping failed", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Database unreachable")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
