package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"text-summarizer/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewHTTPServer creates and configures the Echo HTTP server.
func NewHTTPServer(deps *Dependencies, cfg config.ServerConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return path == "/health" || path == "/api/v1/health"
		},
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			deps.Logger.InfoContext(ctx, "HTTP request completed",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
				"error", v.Error)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	api.POST("/summaries", deps.SummaryHandler.HandleCreate)
	api.GET("/summaries", deps.SummaryHandler.HandleList)
	api.GET("/summaries/:id", deps.SummaryHandler.HandleGet)
	api.PUT("/summaries/:id", deps.SummaryHandler.HandleUpdate)
	api.DELETE("/summaries/:id", deps.SummaryHandler.HandleDelete)
	api.GET("/health", deps.HealthHandler.HandleHealth)

	e.GET("/health", deps.HealthHandler.HandleHealth)
	e.GET("/health/ready", deps.HealthHandler.HandleReady)

	return e
}

// StartHTTPServer starts the HTTP server in a goroutine.
func StartHTTPServer(e *echo.Echo, cfg config.ServerConfig, log *slog.Logger) {
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()
}
